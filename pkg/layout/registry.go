package layout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/adrianliechti/joborder/pkg/jobspec"
)

const (
	VariantAuto     = "auto"
	VariantDoor     = "door"
	VariantFrame    = "frame"
	VariantCombined = "combined"
)

// Registry holds the layouts of all template variants. It is filled once
// and safe for concurrent reads. Callers receive copies, so changes to a
// returned layout never reach the registry.
type Registry struct {
	layouts map[string]*Layout
}

func NewRegistry(layouts ...*Layout) (*Registry, error) {
	r := &Registry{
		layouts: make(map[string]*Layout),
	}

	for _, l := range layouts {
		if err := l.Validate(); err != nil {
			return nil, err
		}

		name := strings.ToLower(l.Name)

		if _, ok := r.layouts[name]; ok {
			return nil, fmt.Errorf("duplicate layout %s", l.Name)
		}

		r.layouts[name] = l.Clone()
	}

	return r, nil
}

func (r *Registry) Layout(name string) (*Layout, error) {
	l, ok := r.layouts[strings.ToLower(name)]

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}

	return l.Clone(), nil
}

func (r *Registry) Names() []string {
	var names []string

	for name := range r.layouts {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Detect picks the template variant for a specification: combined when door
// and frame specifications are both present, frame when only frame
// specifications are present or frame items outnumber door items.
func Detect(spec *jobspec.Specification) string {
	var doors, frames int

	for _, item := range spec.LineItems {
		kind := strings.ToLower(item.Kind)
		desc := strings.ToLower(item.Description)

		switch {
		case strings.Contains(kind, jobspec.KindDoor) || strings.Contains(desc, jobspec.KindDoor):
			doors++
		case strings.Contains(kind, jobspec.KindFrame) || strings.Contains(desc, jobspec.KindFrame):
			frames++
		}
	}

	hasDoor := spec.DoorThickness != "" || spec.DoorType != "" || spec.DoorCore != ""
	hasFrame := spec.FrameType != ""

	switch {
	case hasDoor && hasFrame:
		return VariantCombined
	case hasFrame || frames > doors:
		return VariantFrame
	}

	return VariantDoor
}
