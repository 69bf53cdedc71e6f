package aggregator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/adrianliechti/joborder/pkg/jobspec"
)

// Preserved fields keep their machine value unless an override carries a
// non-empty replacement.
var Preserved = []string{
	jobspec.FieldDoorThickness,
	jobspec.FieldDoorType,
	jobspec.FieldDoorCore,
	jobspec.FieldDoorEdging,
	jobspec.FieldDecorativeLine,
	jobspec.FieldFrameType,
	jobspec.FieldLineItems,
	jobspec.FieldDoorSize,
	jobspec.FieldItemSize0,
	jobspec.FieldItemDesc0,
}

var itemKey = regexp.MustCompile(`^item_(desc|size|qty|type)_(\d+)$`)

// Merge applies human-validated overrides. A non-empty override always wins.
// For preserved fields an absent or empty override restores the machine
// value; any other canonical field submitted empty is cleared.
func Merge(spec *jobspec.Specification, overrides map[string]string) *jobspec.Specification {
	result := spec.Clone()

	for key, value := range overrides {
		if value == "" && slices.Contains(Preserved, key) {
			continue
		}

		if jobspec.IsField(key) {
			result.SetField(key, value)
			continue
		}

		if key == jobspec.FieldLineItems {
			var items []jobspec.LineItem

			if err := json.Unmarshal([]byte(value), &items); err != nil {
				slog.Warn("ignoring invalid line item override", "error", err)
				continue
			}

			result.LineItems = items
		}
	}

	var keys []itemOverride

	for key, value := range overrides {
		m := itemKey.FindStringSubmatch(key)

		if m == nil || value == "" {
			continue
		}

		index, err := strconv.Atoi(m[2])

		if err != nil {
			continue
		}

		keys = append(keys, itemOverride{index, m[1], value})
	}

	slices.SortFunc(keys, func(a, b itemOverride) int {
		if a.index != b.index {
			return a.index - b.index
		}

		return strings.Compare(a.field, b.field)
	})

	for _, o := range keys {
		if err := setItem(result, o); err != nil {
			slog.Warn("ignoring line item override", "index", o.index, "field", o.field, "error", err)
		}
	}

	return result
}

type itemOverride struct {
	index int
	field string
	value string
}

func setItem(spec *jobspec.Specification, o itemOverride) error {
	if o.index > len(spec.LineItems) {
		return fmt.Errorf("line item %d out of range", o.index)
	}

	if o.index == len(spec.LineItems) {
		spec.LineItems = append(spec.LineItems, jobspec.LineItem{})
	}

	item := &spec.LineItems[o.index]

	switch o.field {
	case "desc":
		item.Description = o.value
	case "size":
		item.Size = o.value
	case "qty":
		item.Quantity = o.value
	case "type":
		item.Kind = o.value
	}

	return nil
}
