package checkbox_test

import (
	"testing"

	"github.com/adrianliechti/joborder/pkg/checkbox"

	"github.com/stretchr/testify/require"
)

var (
	thickness  = []string{"37mm", "43mm", "46mm", "48mm", "Others"}
	doorType   = []string{"S/L", "D/L", "Unequal D/L", "Others"}
	core       = []string{"Honeycomb", "Solid Tubular Core", "Solid Timber", "Metal Skeleton"}
	edging     = []string{"NA Lipping", "ABS Edging", "No Edging"}
	decorative = []string{"T-bar", "Groove Line"}
	frame      = []string{"INNER", "OUTER"}
)

func TestSelect(t *testing.T) {
	tests := []struct {
		options []string
		value   string
		want    []string
	}{
		{doorType, "Unequal D/L", []string{"Unequal D/L"}},
		{doorType, "unequal d/l", []string{"Unequal D/L"}},
		{doorType, "D/L", []string{"D/L"}},
		{doorType, "S/L", []string{"S/L"}},
		{doorType, "", nil},

		{thickness, "43mm", []string{"43mm"}},
		{thickness, "43", []string{"43mm"}},
		{thickness, "46mm", []string{"46mm"}},
		{thickness, "50mm", nil},
		{thickness, "4", []string{"43mm"}},
		{thickness, "mm", []string{"37mm"}},

		{core, "honeycomb", []string{"Honeycomb"}},
		{core, "solid_tubular", []string{"Solid Tubular Core"}},
		{core, "solid_timber", []string{"Solid Timber"}},
		{core, "metal_skeleton", []string{"Metal Skeleton"}},

		{edging, "na_lipping", []string{"NA Lipping"}},
		{edging, "abs_edging", []string{"ABS Edging"}},
		{edging, "no_edging", []string{"No Edging"}},

		{decorative, "t_bar", []string{"T-bar"}},
		{decorative, "groove_line", []string{"Groove Line"}},

		{frame, "inner", []string{"INNER"}},
		{frame, "outer frame", []string{"OUTER"}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			require.Equal(t, tt.want, checkbox.Select(tt.options, tt.value))
		})
	}
}

func TestSelected(t *testing.T) {
	require.True(t, checkbox.Selected(doorType, "Unequal D/L", "Unequal D/L"))
	require.False(t, checkbox.Selected(doorType, "D/L", "Unequal D/L"))
}
