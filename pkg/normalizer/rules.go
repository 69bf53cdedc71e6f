package normalizer

import (
	"regexp"
	"slices"
	"strings"

	"github.com/adrianliechti/joborder/pkg/jobspec"
)

// Rule detects one fragment value in a line item description. Value turns
// the match into the canonical value; an empty result rejects the match.
type Rule struct {
	Key     string
	Pattern *regexp.Regexp

	Value func(match []string, text string) string
}

var allowedThickness = []string{"37", "43", "46", "48"}

func thickness(match []string, text string) string {
	if slices.Contains(allowedThickness, match[1]) {
		return match[1] + "mm"
	}

	return ""
}

func literal(value string) func([]string, string) string {
	return func([]string, string) string {
		return value
	}
}

// DefaultRules are evaluated in order per key; the first accepted value wins.
var DefaultRules = []Rule{
	{jobspec.FragmentThickness, regexp.MustCompile(`(?i)(\d+)\s*mm\s*thick`), thickness},
	{jobspec.FragmentThickness, regexp.MustCompile(`(?i)thickness[:\s]*(\d+)\s*mm`), thickness},
	{jobspec.FragmentThickness, regexp.MustCompile(`(?i)(\d+)\s*mm\s*door`), thickness},
	{jobspec.FragmentThickness, regexp.MustCompile(`(?i)door\s*(\d+)\s*mm`), thickness},
	{jobspec.FragmentThickness, regexp.MustCompile(`(?i)(\d+)\s*mm(?:\s|$)`), thickness},

	{jobspec.FragmentType, regexp.MustCompile(`(?i)\bs/l\b|single\s+leaf|single\s+door`), literal("S/L")},
	{jobspec.FragmentType, regexp.MustCompile(`(?i)unequal`), literal("Unequal D/L")},
	{jobspec.FragmentType, regexp.MustCompile(`(?i)\bd/l\b|double\s+leaf|double\s+door`), literal("D/L")},

	{jobspec.FragmentCore, regexp.MustCompile(`(?i)honey\s?comb`), literal("honeycomb")},
	{jobspec.FragmentCore, regexp.MustCompile(`(?i)solid\s+tubular|tubular\s+core|tubular`), literal("solid_tubular")},
	{jobspec.FragmentCore, regexp.MustCompile(`(?i)solid\s+timber|timber\s+core|solid\s+wood`), literal("solid_timber")},
	{jobspec.FragmentCore, regexp.MustCompile(`(?i)metal\s+skeleton|metal\s+frame`), literal("metal_skeleton")},

	{jobspec.FragmentEdging, regexp.MustCompile(`(?i)\bna\s+lipping|natural\s+lipping`), literal("na_lipping")},
	{jobspec.FragmentEdging, regexp.MustCompile(`(?i)abs\s+edg(?:ing|e)`), literal("abs_edging")},
	{jobspec.FragmentEdging, regexp.MustCompile(`(?i)no\s+edging|without\s+edge`), literal("no_edging")},

	{jobspec.FragmentDecorative, regexp.MustCompile(`(?i)t-bar|t\s+bar|tbar`), literal("t_bar")},
	{jobspec.FragmentDecorative, regexp.MustCompile(`(?i)groove(?:\s+line)?`), literal("groove_line")},

	{jobspec.FragmentFrameType, regexp.MustCompile(`(?i)\binner\b`), literal("inner")},
	{jobspec.FragmentFrameType, regexp.MustCompile(`(?i)\bouter\b`), literal("outer")},
}

// DetectFragment applies the default rules to a description.
func DetectFragment(text string) jobspec.Fragment {
	return detectFragment(DefaultRules, text)
}

func detectFragment(rules []Rule, text string) jobspec.Fragment {
	var f jobspec.Fragment

	if strings.TrimSpace(text) == "" {
		return f
	}

	for _, r := range rules {
		if f.Get(r.Key) != "" {
			continue
		}

		for _, m := range r.Pattern.FindAllStringSubmatch(text, -1) {
			if v := r.Value(m, text); v != "" {
				f.SetIfEmpty(r.Key, v)
				break
			}
		}
	}

	return f
}
