package aggregator

import (
	"log/slog"
	"strings"

	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/units"
)

// Aggregate folds line item fragments and the full text into one
// specification. Fields already set on the normalized record are kept, so
// aggregating an aggregate yields the same record.
func Aggregate(normalized *jobspec.Specification, items []jobspec.LineItem, text string) *jobspec.Specification {
	spec := normalized.Clone()

	if len(items) > 0 {
		spec.LineItems = append([]jobspec.LineItem(nil), items...)
	}

	if item, ok := representative(spec.LineItems); ok {
		spec.SetFieldIfEmpty(jobspec.FieldItemDesc0, item.Description)

		size := item.Size

		if size == "" {
			size = convert(units.Convert, item.Description)
		}

		spec.SetFieldIfEmpty(jobspec.FieldItemSize0, size)
		spec.SetFieldIfEmpty(jobspec.FieldDoorSize, size)
	}

	for _, item := range spec.LineItems {
		for _, f := range jobspec.FragmentFields {
			spec.SetFieldIfEmpty(f.Field, item.Specifications.Get(f.Key))
		}
	}

	if spec.DoorSize == "" {
		size := convert(units.ConvertLabeled, text)

		if size == "" && !units.HasLabel(text) {
			size = convert(units.Convert, text)
		}

		spec.SetFieldIfEmpty(jobspec.FieldDoorSize, size)
		spec.SetFieldIfEmpty(jobspec.FieldItemSize0, size)
	}

	return spec
}

// representative returns the first door item, or the first item carrying a
// thickness or leaf type.
func representative(items []jobspec.LineItem) (jobspec.LineItem, bool) {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Description), "door") {
			return item, true
		}

		if item.Specifications.Thickness != "" || item.Specifications.Type != "" {
			return item, true
		}
	}

	return jobspec.LineItem{}, false
}

func convert(fn func(string) (*units.Size, error), text string) string {
	size, err := fn(text)

	if err != nil {
		slog.Warn("unable to convert size", "error", err)
		return ""
	}

	if size == nil {
		return ""
	}

	return size.String()
}
