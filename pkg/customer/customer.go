package customer

import (
	"errors"
	"regexp"
	"strings"
)

var ErrAmbiguousCustomer = errors.New("no customer name distinct from vendor")

var DefaultBrand = "sendora"

var DefaultPhrases = []string{
	"sendora",
	"sendoraa",
	"trusted",
	"reliable",
	"door brand",
	"group sdn bhd",
	"kota damansara",
	"manufacturer",
	"marketing",
	"branding",
}

var (
	labeledPattern = regexp.MustCompile(`(?i)(?:bill to|customer|sold to|buyer)\s*[:\n]\s*(.+sdn bhd|.+bhd|.+enterprise|.+trading)`)
	companyPattern = regexp.MustCompile(`(?i)[A-Za-z0-9 \t&]+\s+(?:sdn bhd|bhd|enterprise|trading)`)
)

// Resolver tells the manufacturer's own brand text apart from the customer.
type Resolver struct {
	brand   string
	phrases []string
}

type Option func(*Resolver)

func WithBrand(brand string) Option {
	return func(r *Resolver) {
		r.brand = strings.ToLower(strings.TrimSpace(brand))
	}
}

// WithPhrases adds vendor marketing phrases to the exclusion list.
func WithPhrases(phrases ...string) Option {
	return func(r *Resolver) {
		for _, p := range phrases {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				r.phrases = append(r.phrases, p)
			}
		}
	}
}

func New(options ...Option) *Resolver {
	r := &Resolver{
		brand:   DefaultBrand,
		phrases: append([]string(nil), DefaultPhrases...),
	}

	for _, option := range options {
		option(r)
	}

	return r
}

// IsVendorText reports whether s belongs to the vendor rather than a customer.
func (r *Resolver) IsVendorText(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))

	if s == "" {
		return false
	}

	if r.brand != "" && strings.HasPrefix(s, r.brand) {
		return true
	}

	for _, p := range r.phrases {
		if strings.Contains(s, p) {
			return true
		}
	}

	return false
}

// Resolve accepts the candidate unless it is vendor text, then searches the
// labeled party sections and finally any company span of the full text.
// It never falls back to vendor text.
func (r *Resolver) Resolve(candidate, text string) (string, error) {
	if candidate = strings.TrimSpace(candidate); candidate != "" && !r.IsVendorText(candidate) {
		return candidate, nil
	}

	for _, m := range labeledPattern.FindAllStringSubmatch(text, -1) {
		name := strings.ToUpper(strings.TrimSpace(m[1]))

		if !r.IsVendorText(name) {
			return name, nil
		}
	}

	for _, m := range companyPattern.FindAllString(text, -1) {
		name := strings.ToUpper(strings.TrimSpace(m))

		if !r.IsVendorText(name) {
			return name, nil
		}
	}

	return "", ErrAmbiguousCustomer
}
