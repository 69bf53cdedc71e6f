package overlay_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/layout"
	"github.com/adrianliechti/joborder/pkg/overlay"

	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

const doorLayout = `
name: door
page_size: [841.68, 595.20]
fields:
  job_order_no: { x: 103.1, y: 39.1 }
  po_no: { x: 103.1, y: 67.9 }
  customer_name: { x: 673.9, y: 53.8 }
  measure_by: { x: 673.9, y: 67.9 }
rows:
  - { y: 200, item_x: 25, laminate_x: 75, size_x: 255, location_y: 215 }
  - { y: 290, item_x: 25, laminate_x: 75, size_x: 255 }
checkboxes:
  door_type:
    - { label: S/L, x: 343, y: 200 }
    - { label: D/L, x: 343, y: 218 }
    - { label: Unequal D/L, x: 343, y: 236 }
  edging:
    - { label: NA Lipping, x: 495, y: 200 }
    - { label: ABS Edging, x: 495, y: 218 }
`

func testLayout(t *testing.T, data string) *layout.Layout {
	l, err := layout.Parse([]byte(data))
	require.NoError(t, err)

	return l
}

func testSpec() *jobspec.Specification {
	return &jobspec.Specification{
		InvoiceNumber: "KDI-2507-003",
		CustomerName:  "KENCANA CONSTRUCTION SDN BHD",

		DoorType:   "Unequal D/L",
		DoorEdging: "abs_edging",

		ItemDesc0: "6S-A057 DOOR 43MM X 3FT X 7FT",
		ItemSize0: "915MM x 2135MM",
	}
}

func TestRender(t *testing.T) {
	instructions, err := overlay.Render(testSpec(), testLayout(t, doorLayout))
	require.NoError(t, err)

	texts := map[string]string{}
	var marks []string

	for _, i := range instructions {
		switch i.Kind {
		case overlay.KindText:
			texts[i.Source] = i.Content
		case overlay.KindMark:
			marks = append(marks, i.Source)
		}
	}

	require.Equal(t, map[string]string{
		"job_order_no":   "KDI-2507-003",
		"customer_name":  "KENCANA CONSTRUCTION SDN BHD",
		"measure_by":     overlay.MeasureBy,
		"row/0/item":     "1",
		"row/0/laminate": "6S-A057",
		"row/0/size":     "915MM x 2135MM",
		"row/0/location": "Location: 1",
	}, texts)

	require.Equal(t, []string{"door_type/Unequal D/L", "edging/ABS Edging"}, marks)
}

func TestRenderPositions(t *testing.T) {
	instructions, err := overlay.Render(testSpec(), testLayout(t, doorLayout))
	require.NoError(t, err)

	for _, i := range instructions {
		if i.Source == "row/0/location" {
			require.Equal(t, layout.Position{X: 75, Y: 215, Size: 7}, i.Position)
		}

		if i.Source == "door_type/Unequal D/L" {
			require.Equal(t, 236.0, i.Position.Y)
		}
	}
}

func TestRenderOutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		layout *layout.Layout
		source string
	}{
		{"filled field", &layout.Layout{
			Name:     "door",
			PageSize: [2]float64{100, 100},
			Fields: map[string]layout.Position{
				"job_order_no": {X: 10, Y: 10},
				"po_no":        {X: 150, Y: 10},
			},
		}, "po_no"},
		{"empty field", &layout.Layout{
			Name:     "door",
			PageSize: [2]float64{100, 100},
			Fields: map[string]layout.Position{
				"delivery_date": {X: 10, Y: 150},
			},
		}, "delivery_date"},
		{"unselected option", &layout.Layout{
			Name:     "door",
			PageSize: [2]float64{100, 100},
			Checkboxes: map[string][]layout.Option{
				"door_type": {
					{Label: "S/L", Position: layout.Position{X: 10, Y: 10}},
					{Label: "D/L", Position: layout.Position{X: 10, Y: 120}},
				},
			},
		}, "door_type/D/L"},
		{"row", &layout.Layout{
			Name:     "door",
			PageSize: [2]float64{100, 100},
			Rows: []layout.Row{
				{Y: 10, ItemX: 5, LaminateX: 20, SizeX: 40},
				{Y: 90, ItemX: 5, LaminateX: 20, SizeX: 40},
			},
		}, "row/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &jobspec.Specification{InvoiceNumber: "1", PONumber: "2", DoorType: "S/L"}

			instructions, err := overlay.Render(spec, tt.layout)

			var renderErr *overlay.RenderError
			require.ErrorAs(t, err, &renderErr)
			require.Equal(t, tt.source, renderErr.Source)
			require.Nil(t, instructions)
		})
	}
}

func TestRenderDoorThickness(t *testing.T) {
	dir, err := filepath.Abs("../../templates")
	require.NoError(t, err)

	for _, name := range []string{"door", "combined"} {
		l, err := layout.Load(context.Background(), afs.New(), "file://localhost"+filepath.ToSlash(filepath.Join(dir, name+".yaml")))
		require.NoError(t, err, name)

		for _, thickness := range []string{"37mm", "43mm", "46mm", "48mm"} {
			instructions, err := overlay.Render(&jobspec.Specification{DoorThickness: thickness}, l)
			require.NoError(t, err)

			var marks []string

			for _, i := range instructions {
				if i.Kind == overlay.KindMark {
					marks = append(marks, i.Source)
				}
			}

			require.Equal(t, []string{"door_thickness/" + thickness}, marks, name)
		}
	}
}

func TestRendererUnknownVariant(t *testing.T) {
	registry, err := layout.NewRegistry(testLayout(t, doorLayout))
	require.NoError(t, err)

	r := overlay.New(registry)

	l, instructions, err := r.Render(testSpec(), "window")
	require.ErrorIs(t, err, layout.ErrLayoutNotFound)
	require.Nil(t, l)
	require.Nil(t, instructions)

	l, instructions, err = r.Render(testSpec(), layout.VariantAuto)
	require.NoError(t, err)
	require.Equal(t, "door", l.Name)
	require.NotEmpty(t, instructions)
}

func TestLaminateCode(t *testing.T) {
	require.Equal(t, "6S-A057", overlay.LaminateCode("6S-A057 DOOR 43MM"))
	require.Equal(t, "", overlay.LaminateCode("PLAIN DOOR"))
}
