package normalizer

import (
	"log/slog"
	"maps"
	"strings"

	"github.com/adrianliechti/joborder/pkg/extractor"
	"github.com/adrianliechti/joborder/pkg/jobspec"
	"github.com/adrianliechti/joborder/pkg/units"
)

type Normalizer struct {
	labels     map[string]string
	itemLabels map[string]string

	rules []Rule
}

type Option func(*Normalizer)

// WithLabels adds or replaces entity type mappings.
func WithLabels(labels map[string]string) Option {
	return func(n *Normalizer) {
		for k, v := range labels {
			n.labels[strings.ToLower(k)] = v
		}
	}
}

func WithItemLabels(labels map[string]string) Option {
	return func(n *Normalizer) {
		for k, v := range labels {
			n.itemLabels[strings.ToLower(k)] = v
		}
	}
}

func WithRules(rules ...Rule) Option {
	return func(n *Normalizer) {
		n.rules = rules
	}
}

func New(options ...Option) *Normalizer {
	n := &Normalizer{
		labels:     maps.Clone(DefaultLabels),
		itemLabels: maps.Clone(DefaultItemLabels),

		rules: DefaultRules,
	}

	for _, option := range options {
		option(n)
	}

	return n
}

// Normalize copies recognized entities into canonical fields in service order.
// The first entity for a field wins; line items keep their order.
func (n *Normalizer) Normalize(entities []extractor.Entity) (*jobspec.Specification, []jobspec.LineItem) {
	spec := &jobspec.Specification{}

	var items []jobspec.LineItem

	for _, e := range entities {
		t := strings.ToLower(strings.TrimSpace(e.Type))

		if t == lineItemType {
			if item, ok := n.lineItem(e); ok {
				items = append(items, item)
			}

			continue
		}

		field, ok := n.labels[t]

		if !ok {
			continue
		}

		spec.SetFieldIfEmpty(field, strings.TrimSpace(e.Text))
	}

	return spec, items
}

func (n *Normalizer) lineItem(e extractor.Entity) (jobspec.LineItem, bool) {
	var item jobspec.LineItem

	fields := map[string]*string{
		itemDescription: &item.Description,
		itemQuantity:    &item.Quantity,
		itemUnitPrice:   &item.UnitPrice,
		itemAmount:      &item.Amount,
		itemUnit:        &item.Unit,
		itemSize:        &item.Size,
	}

	for _, p := range e.Properties {
		t := strings.ToLower(strings.TrimSpace(p.Type))
		t = strings.TrimPrefix(t, lineItemType+"/")

		name, ok := n.itemLabels[t]

		if !ok {
			continue
		}

		if target := fields[name]; *target == "" {
			*target = strings.TrimSpace(p.Text)
		}
	}

	if item.Description == "" {
		item.Description = strings.TrimSpace(e.Text)
	}

	if item.Description == "" {
		return item, false
	}

	if item.Size == "" {
		size, err := units.Convert(item.Description)

		if err != nil {
			slog.Warn("unable to convert item size", "description", item.Description, "error", err)
		}

		if size != nil {
			item.Size = size.String()
		}
	}

	item.Kind = detectKind(item.Description)
	item.Specifications = detectFragment(n.rules, item.Description)

	return item, true
}

func detectKind(description string) string {
	s := strings.ToLower(description)

	switch {
	case strings.Contains(s, jobspec.KindDoor):
		return jobspec.KindDoor
	case strings.Contains(s, jobspec.KindFrame):
		return jobspec.KindFrame
	}

	return ""
}
