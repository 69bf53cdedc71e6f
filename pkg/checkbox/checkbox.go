package checkbox

import (
	"cmp"
	"slices"
	"strings"
)

var replacer = strings.NewReplacer(" ", "", "_", "", "-", "")

func normalize(s string) string {
	return replacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Select returns the option of the group matched by value, at most one.
//
// An exact match wins. Otherwise the longest label contained in the value is
// chosen, which keeps "D/L" from shadowing "Unequal D/L". As a last resort the
// shortest label containing the value is chosen.
func Select(options []string, value string) []string {
	v := normalize(value)

	if v == "" {
		return nil
	}

	type candidate struct {
		label string
		key   string
	}

	var candidates []candidate

	for _, o := range options {
		if k := normalize(o); k != "" {
			candidates = append(candidates, candidate{o, k})
		}
	}

	for _, c := range candidates {
		if c.key == v {
			return []string{c.label}
		}
	}

	// equal lengths keep template order
	longest := slices.Clone(candidates)

	slices.SortStableFunc(longest, func(a, b candidate) int {
		return cmp.Compare(len(b.key), len(a.key))
	})

	for _, c := range longest {
		if strings.Contains(v, c.key) {
			return []string{c.label}
		}
	}

	var shortest *candidate

	for i, c := range candidates {
		if !strings.Contains(c.key, v) {
			continue
		}

		if shortest == nil || len(c.key) < len(shortest.key) {
			shortest = &candidates[i]
		}
	}

	if shortest != nil {
		return []string{shortest.label}
	}

	return nil
}

// Selected reports whether label is the option chosen for value.
func Selected(options []string, label, value string) bool {
	return slices.Contains(Select(options, value), label)
}
