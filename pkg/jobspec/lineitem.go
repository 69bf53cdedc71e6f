package jobspec

const (
	FragmentThickness  = "thickness"
	FragmentType       = "type"
	FragmentCore       = "core"
	FragmentEdging     = "edging"
	FragmentDecorative = "decorative"
	FragmentFrameType  = "frame_type"
)

// FragmentFields pairs each fragment key with the canonical field it feeds.
var FragmentFields = []struct {
	Key   string
	Field string
}{
	{FragmentThickness, FieldDoorThickness},
	{FragmentType, FieldDoorType},
	{FragmentCore, FieldDoorCore},
	{FragmentEdging, FieldDoorEdging},
	{FragmentDecorative, FieldDecorativeLine},
	{FragmentFrameType, FieldFrameType},
}

const (
	KindDoor  = "door"
	KindFrame = "frame"
)

type LineItem struct {
	Description string `json:"description,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	UnitPrice   string `json:"unit_price,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Unit        string `json:"unit,omitempty"`

	Size string `json:"size,omitempty"`
	Kind string `json:"kind,omitempty"`

	Specifications Fragment `json:"specifications,omitzero"`
}

// Fragment holds the specifications detected on a single line item.
type Fragment struct {
	Thickness  string `json:"thickness,omitempty"`
	Type       string `json:"type,omitempty"`
	Core       string `json:"core,omitempty"`
	Edging     string `json:"edging,omitempty"`
	Decorative string `json:"decorative,omitempty"`
	FrameType  string `json:"frame_type,omitempty"`
}

func (f *Fragment) field(key string) *string {
	switch key {
	case FragmentThickness:
		return &f.Thickness
	case FragmentType:
		return &f.Type
	case FragmentCore:
		return &f.Core
	case FragmentEdging:
		return &f.Edging
	case FragmentDecorative:
		return &f.Decorative
	case FragmentFrameType:
		return &f.FrameType
	}

	return nil
}

func (f Fragment) Get(key string) string {
	if p := f.field(key); p != nil {
		return *p
	}

	return ""
}

// SetIfEmpty keeps the first detected value for a key.
func (f *Fragment) SetIfEmpty(key, value string) {
	if p := f.field(key); p != nil && *p == "" {
		*p = value
	}
}

func (f Fragment) IsEmpty() bool {
	return f == Fragment{}
}
