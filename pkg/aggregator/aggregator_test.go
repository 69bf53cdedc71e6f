package aggregator_test

import (
	"testing"

	"github.com/adrianliechti/joborder/pkg/aggregator"
	"github.com/adrianliechti/joborder/pkg/jobspec"

	"github.com/stretchr/testify/require"
)

func testItems() []jobspec.LineItem {
	return []jobspec.LineItem{
		{
			Description: "DELIVERY CHARGES",
			Amount:      "50.00",
		},
		{
			Description:    "6S-A057 DOOR 43MM X 3FT X 7FT HONEYCOMB",
			Size:           "915MM x 2135MM",
			Specifications: jobspec.Fragment{Thickness: "43mm", Core: "honeycomb"},
		},
		{
			Description:    "DOOR 48MM D/L SOLID TIMBER NA LIPPING",
			Specifications: jobspec.Fragment{Thickness: "48mm", Type: "D/L", Core: "solid_timber", Edging: "na_lipping"},
		},
	}
}

func TestAggregate(t *testing.T) {
	normalized := &jobspec.Specification{InvoiceNumber: "KDI-2507-003"}

	spec := aggregator.Aggregate(normalized, testItems(), "")

	require.Equal(t, "KDI-2507-003", spec.InvoiceNumber)
	require.Equal(t, "6S-A057 DOOR 43MM X 3FT X 7FT HONEYCOMB", spec.ItemDesc0)
	require.Equal(t, "915MM x 2135MM", spec.ItemSize0)
	require.Equal(t, "915MM x 2135MM", spec.DoorSize)

	require.Equal(t, "43mm", spec.DoorThickness)
	require.Equal(t, "D/L", spec.DoorType)
	require.Equal(t, "honeycomb", spec.DoorCore)
	require.Equal(t, "na_lipping", spec.DoorEdging)
	require.Empty(t, spec.DecorativeLine)
	require.Empty(t, spec.FrameType)

	require.Len(t, spec.LineItems, 3)
	require.Empty(t, normalized.DoorThickness)
}

func TestAggregateSizeFromDescription(t *testing.T) {
	items := []jobspec.LineItem{
		{Description: "Door 850mm x 2100mm"},
	}

	spec := aggregator.Aggregate(&jobspec.Specification{}, items, "")

	require.Equal(t, "850MM x 2100MM", spec.DoorSize)
	require.Equal(t, "850MM x 2100MM", spec.ItemSize0)
}

func TestAggregateSizeFromText(t *testing.T) {
	text := "Panel 2 x 4\nDoor Size: 3ft x 7ft\n"

	spec := aggregator.Aggregate(&jobspec.Specification{}, nil, text)
	require.Equal(t, "915MM x 2135MM", spec.DoorSize)
	require.Equal(t, "915MM x 2135MM", spec.ItemSize0)

	spec = aggregator.Aggregate(&jobspec.Specification{}, nil, "Panel 3ft x 8ft")
	require.Equal(t, "915MM x 2440MM", spec.DoorSize)

	spec = aggregator.Aggregate(&jobspec.Specification{}, nil, "Door size: to be measured\nPanel 3ft x 8ft")
	require.Empty(t, spec.DoorSize)
}

func TestAggregateIdempotent(t *testing.T) {
	text := "Bill To: KENCANA CONSTRUCTION SDN BHD\nDoor Size: 3ft x 7ft"

	first := aggregator.Aggregate(&jobspec.Specification{CustomerName: "KENCANA CONSTRUCTION SDN BHD"}, testItems(), text)
	second := aggregator.Aggregate(first, first.LineItems, text)

	require.Equal(t, first, second)

	third := aggregator.Aggregate(second, nil, text)
	require.Equal(t, first, third)
}
