package layout

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrLayoutNotFound = errors.New("layout not found")

// Position is a point measured in points from the top-left page corner.
type Position struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`

	Size float64 `yaml:"size,omitempty" json:"size,omitempty"`
}

type Row struct {
	Y float64 `yaml:"y" json:"y"`

	ItemX     float64 `yaml:"item_x" json:"item_x"`
	LaminateX float64 `yaml:"laminate_x" json:"laminate_x"`
	SizeX     float64 `yaml:"size_x" json:"size_x"`

	LocationY float64 `yaml:"location_y,omitempty" json:"location_y,omitempty"`
}

// Positions returns the item, laminate, size and location positions of the row.
func (r Row) Positions() []Position {
	locationY := r.LocationY

	if locationY == 0 {
		locationY = r.Y + 15
	}

	return []Position{
		{X: r.ItemX, Y: r.Y, Size: 9},
		{X: r.LaminateX, Y: r.Y, Size: 8},
		{X: r.SizeX, Y: r.Y, Size: 8},
		{X: r.LaminateX, Y: locationY, Size: 7},
	}
}

type Option struct {
	Label string `yaml:"label" json:"label"`

	Position `yaml:",inline"`
}

// Layout describes where a template variant expects its values.
type Layout struct {
	Name string `yaml:"name" json:"name"`

	PageSize [2]float64 `yaml:"page_size" json:"page_size"`
	FontSize float64    `yaml:"font_size,omitempty" json:"font_size,omitempty"`

	Fields     map[string]Position `yaml:"fields" json:"fields"`
	Rows       []Row               `yaml:"rows" json:"rows"`
	Checkboxes map[string][]Option `yaml:"checkboxes" json:"checkboxes"`

	Background string `yaml:"-" json:"-"`
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := *l

	c.Fields = maps.Clone(l.Fields)
	c.Rows = slices.Clone(l.Rows)

	if l.Checkboxes != nil {
		c.Checkboxes = make(map[string][]Option, len(l.Checkboxes))

		for group, options := range l.Checkboxes {
			c.Checkboxes[group] = slices.Clone(options)
		}
	}

	return &c
}

func (l *Layout) Width() float64 {
	return l.PageSize[0]
}

func (l *Layout) Height() float64 {
	return l.PageSize[1]
}

// Contains reports whether p lies on the page.
func (l *Layout) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= l.Width() && p.Y <= l.Height()
}

// Labels returns the option labels of a checkbox group in template order.
func (l *Layout) Labels(group string) []string {
	var labels []string

	for _, o := range l.Checkboxes[group] {
		labels = append(labels, o.Label)
	}

	return labels
}

func (l *Layout) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("missing layout name")
	}

	if l.Width() <= 0 || l.Height() <= 0 {
		return fmt.Errorf("layout %s: invalid page size", l.Name)
	}

	for name, p := range l.Fields {
		if !l.Contains(p) {
			return fmt.Errorf("layout %s: field %s is outside the page", l.Name, name)
		}
	}

	for i, row := range l.Rows {
		for _, p := range row.Positions() {
			if !l.Contains(p) {
				return fmt.Errorf("layout %s: row %d is outside the page", l.Name, i)
			}
		}
	}

	for group, options := range l.Checkboxes {
		seen := make(map[string]bool)

		for _, o := range options {
			if o.Label == "" {
				return fmt.Errorf("layout %s: empty label in group %s", l.Name, group)
			}

			if !l.Contains(o.Position) {
				return fmt.Errorf("layout %s: option %s/%s is outside the page", l.Name, group, o.Label)
			}

			if seen[o.Label] {
				return fmt.Errorf("layout %s: duplicate label %q in group %s", l.Name, o.Label, group)
			}

			seen[o.Label] = true
		}
	}

	return nil
}
