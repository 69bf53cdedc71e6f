package aggregator_test

import (
	"testing"

	"github.com/adrianliechti/joborder/pkg/aggregator"
	"github.com/adrianliechti/joborder/pkg/jobspec"

	"github.com/stretchr/testify/require"
)

func TestMergePrecedence(t *testing.T) {
	spec := &jobspec.Specification{DoorThickness: "43mm"}

	tests := []struct {
		name      string
		overrides map[string]string
		want      string
	}{
		{"absent", map[string]string{}, "43mm"},
		{"nil", nil, "43mm"},
		{"empty", map[string]string{"door_thickness": ""}, "43mm"},
		{"override", map[string]string{"door_thickness": "48mm"}, "48mm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := aggregator.Merge(spec, tt.overrides)
			require.Equal(t, tt.want, result.DoorThickness)
		})
	}

	require.Equal(t, "43mm", spec.DoorThickness)
}

func TestMergeFields(t *testing.T) {
	spec := &jobspec.Specification{
		InvoiceNumber: "KDI-2507-003",
		CustomerName:  "KENCANA CONSTRUCTION SDN BHD",
		DoorSize:      "915MM x 2135MM",
		ItemDesc0:     "DOOR 43MM",

		LineItems: []jobspec.LineItem{
			{Description: "DOOR 43MM", Quantity: "2"},
		},
	}

	result := aggregator.Merge(spec, map[string]string{
		"po_number":     "PO-77",
		"customer_name": "",
		"door_size":     "",
		"item_desc_0":   "",
		"item_qty_0":    "4",
		"item_desc_1":   "INNER FRAME",
		"item_type_1":   "frame",
		"item_desc_5":   "IGNORED",
		"template":      "door",
	})

	require.Equal(t, "KDI-2507-003", result.InvoiceNumber)
	require.Equal(t, "PO-77", result.PONumber)
	require.Empty(t, result.CustomerName)
	require.Equal(t, "915MM x 2135MM", result.DoorSize)
	require.Equal(t, "DOOR 43MM", result.ItemDesc0)

	require.Len(t, result.LineItems, 2)
	require.Equal(t, "4", result.LineItems[0].Quantity)
	require.Equal(t, "INNER FRAME", result.LineItems[1].Description)
	require.Equal(t, jobspec.KindFrame, result.LineItems[1].Kind)

	require.Equal(t, "2", spec.LineItems[0].Quantity)
}

func TestMergeLineItems(t *testing.T) {
	spec := &jobspec.Specification{
		LineItems: []jobspec.LineItem{{Description: "DOOR"}},
	}

	result := aggregator.Merge(spec, map[string]string{"line_items": ""})
	require.Equal(t, spec.LineItems, result.LineItems)

	result = aggregator.Merge(spec, map[string]string{"line_items": "not json"})
	require.Equal(t, spec.LineItems, result.LineItems)

	result = aggregator.Merge(spec, map[string]string{"line_items": `[{"description":"FRAME","quantity":"3"}]`})
	require.Equal(t, []jobspec.LineItem{{Description: "FRAME", Quantity: "3"}}, result.LineItems)
}
