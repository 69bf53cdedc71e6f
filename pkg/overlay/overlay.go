package overlay

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/adrianliechti/joborder/pkg/checkbox"
	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/layout"
)

type Kind string

const (
	KindText Kind = "text"
	KindMark Kind = "mark"
)

type Instruction struct {
	Kind Kind `json:"kind"`

	Position layout.Position `json:"position"`
	Content  string          `json:"content,omitempty"`

	Source string `json:"source,omitempty"`
}

type RenderError struct {
	Layout string
	Source string

	Position layout.Position
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("layout %s: %s at (%.1f, %.1f) is outside the page", e.Layout, e.Source, e.Position.X, e.Position.Y)
}

const MeasureBy = "Auto Generated"

// headerFields maps template header names onto canonical fields.
var headerFields = map[string]string{
	"job_order_no":   jobspec.FieldInvoiceNumber,
	"job_order_date": jobspec.FieldDocumentDate,
	"po_no":          jobspec.FieldPONumber,
	"delivery_date":  jobspec.FieldDeliveryDate,
	"customer_name":  jobspec.FieldCustomerName,
}

// groupFields maps checkbox groups whose name differs from the canonical field.
var groupFields = map[string]string{
	"edging": jobspec.FieldDoorEdging,
}

var laminatePattern = regexp.MustCompile(`[0-9]+[A-Z]-[A-Z0-9]+`)

// LaminateCode returns the laminate code of an item description, e.g. 6S-A057.
func LaminateCode(description string) string {
	return laminatePattern.FindString(description)
}

// Render projects a specification onto a layout. Nothing is returned when
// any position of the layout falls outside the page, filled or not.
func Render(spec *jobspec.Specification, l *layout.Layout) ([]Instruction, error) {
	r := &renderer{layout: l}

	for _, name := range sortedKeys(l.Fields) {
		r.text(l.Fields[name], fieldValue(spec, name), name)
	}

	for i, row := range l.Rows {
		r.row(spec, i, row)
	}

	for _, group := range sortedKeys(l.Checkboxes) {
		value, _ := spec.Field(groupField(group))

		selected := checkbox.Select(l.Labels(group), value)

		for _, o := range l.Checkboxes[group] {
			source := group + "/" + o.Label

			if !r.check(o.Position, source) {
				break
			}

			if slices.Contains(selected, o.Label) {
				r.mark(o.Position, source)
			}
		}
	}

	if r.err != nil {
		return nil, r.err
	}

	return r.instructions, nil
}

type renderer struct {
	layout *layout.Layout

	instructions []Instruction
	err          error
}

func (r *renderer) check(p layout.Position, source string) bool {
	if r.err != nil {
		return false
	}

	if !r.layout.Contains(p) {
		r.err = &RenderError{Layout: r.layout.Name, Source: source, Position: p}
		return false
	}

	return true
}

// text checks p even when there is nothing to write.
func (r *renderer) text(p layout.Position, content, source string) {
	if !r.check(p, source) || content == "" {
		return
	}

	r.instructions = append(r.instructions, Instruction{
		Kind: KindText,

		Position: p,
		Content:  content,

		Source: source,
	})
}

func (r *renderer) mark(p layout.Position, source string) {
	if !r.check(p, source) {
		return
	}

	r.instructions = append(r.instructions, Instruction{
		Kind: KindMark,

		Position: p,

		Source: source,
	})
}

// row fills the representative item into the first row only. Later rows are
// checked against the page but stay empty.
func (r *renderer) row(spec *jobspec.Specification, index int, row layout.Row) {
	source := "row/" + strconv.Itoa(index)

	positions := row.Positions()

	for _, p := range positions {
		if !r.check(p, source) {
			return
		}
	}

	if index != 0 || spec.ItemDesc0 == "" {
		return
	}

	size := spec.ItemSize0

	if size == "" {
		size = spec.DoorSize
	}

	r.text(positions[0], strconv.Itoa(index+1), source+"/item")
	r.text(positions[1], LaminateCode(spec.ItemDesc0), source+"/laminate")
	r.text(positions[2], size, source+"/size")
	r.text(positions[3], "Location: "+strconv.Itoa(index+1), source+"/location")
}

func fieldValue(spec *jobspec.Specification, name string) string {
	if v, ok := spec.Field(name); ok {
		return v
	}

	if field, ok := headerFields[name]; ok {
		v, _ := spec.Field(field)
		return v
	}

	if name == "measure_by" {
		return MeasureBy
	}

	return ""
}

func groupField(group string) string {
	if field, ok := groupFields[group]; ok {
		return field
	}

	return group
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
