package units

import (
	"fmt"
	"regexp"
	"strconv"
)

// MillimetersPerFoot is the rounded factor used on the production floor.
const MillimetersPerFoot = 305

type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dMM x %dMM", s.Width, s.Height)
}

type ConversionError struct {
	Text  string
	Value string

	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q in %q: %v", e.Value, e.Text, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

type rule struct {
	name    string
	pattern *regexp.Regexp

	// factor applied to the first and second capture
	width  int
	height int
}

// rules are evaluated in order and the first match wins. Specific forms come
// first since the looser patterns also match their substrings.
var rules = []rule{
	{"mm-ft-ft", regexp.MustCompile(`(?i)\d+\s*mm\s*x\s*(\d+)\s*ft\s*x\s*(\d+)\s*ft`), MillimetersPerFoot, MillimetersPerFoot},
	{"mm-mm", regexp.MustCompile(`(?i)(\d+)\s*mm\s*x\s*(\d+)\s*mm`), 1, 1},
	{"x-mm", regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d+)\s*mm`), 1, 1},
	{"x", regexp.MustCompile(`(?i)(\d+)\s*x\s*(\d+)`), 1, 1},
	{"mm-ft", regexp.MustCompile(`(?i)(\d+)\s*mm\s*x\s*(\d+)\s*ft`), 1, MillimetersPerFoot},
	{"ft-ft", regexp.MustCompile(`(?i)(\d+)\s*ft\s*x\s*(\d+)\s*ft`), MillimetersPerFoot, MillimetersPerFoot},
}

var labelPattern = regexp.MustCompile(`(?i)door\s+size[:\s]*([^\n]+)`)

// Convert finds the first dimension token in text and returns it in
// millimeters. A nil size without error means nothing matched.
func Convert(text string) (*Size, error) {
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)

		if m == nil {
			continue
		}

		w, err := parse(text, m[1])

		if err != nil {
			return nil, err
		}

		h, err := parse(text, m[2])

		if err != nil {
			return nil, err
		}

		return &Size{
			Width:  w * r.width,
			Height: h * r.height,
		}, nil
	}

	return nil, nil
}

// HasLabel reports whether text carries a "door size:" label.
func HasLabel(text string) bool {
	return labelPattern.MatchString(text)
}

// ConvertLabeled restricts the search to the text following a "door size:"
// label. It reports no match when the label is absent.
func ConvertLabeled(text string) (*Size, error) {
	m := labelPattern.FindStringSubmatch(text)

	if m == nil {
		return nil, nil
	}

	return Convert(m[1])
}

func parse(text, value string) (int, error) {
	n, err := strconv.Atoi(value)

	if err != nil {
		return 0, &ConversionError{Text: text, Value: value, Err: err}
	}

	return n, nil
}
