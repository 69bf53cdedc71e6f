package jobspec

import (
	"slices"
)

const (
	FieldInvoiceNumber = "invoice_number"
	FieldPONumber      = "po_number"
	FieldDocumentDate  = "document_date"
	FieldDeliveryDate  = "delivery_date"

	FieldVendorName   = "vendor_name"
	FieldCustomerName = "customer_name"

	FieldDoorThickness  = "door_thickness"
	FieldDoorType       = "door_type"
	FieldDoorCore       = "door_core"
	FieldDoorEdging     = "door_edging"
	FieldDecorativeLine = "decorative_line"
	FieldFrameType      = "frame_type"
	FieldDoorSize       = "door_size"

	FieldItemDesc0 = "item_desc_0"
	FieldItemSize0 = "item_size_0"

	FieldLineItems = "line_items"
)

// Fields lists the scalar canonical fields in a fixed order.
var Fields = []string{
	FieldInvoiceNumber,
	FieldPONumber,
	FieldDocumentDate,
	FieldDeliveryDate,

	FieldVendorName,
	FieldCustomerName,

	FieldDoorThickness,
	FieldDoorType,
	FieldDoorCore,
	FieldDoorEdging,
	FieldDecorativeLine,
	FieldFrameType,
	FieldDoorSize,

	FieldItemDesc0,
	FieldItemSize0,
}

// Specification is the canonical record of one document. Every scalar field
// holds at most one value.
type Specification struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	PONumber      string `json:"po_number,omitempty"`
	DocumentDate  string `json:"document_date,omitempty"`
	DeliveryDate  string `json:"delivery_date,omitempty"`

	VendorName   string `json:"vendor_name,omitempty"`
	CustomerName string `json:"customer_name,omitempty"`

	DoorThickness  string `json:"door_thickness,omitempty"`
	DoorType       string `json:"door_type,omitempty"`
	DoorCore       string `json:"door_core,omitempty"`
	DoorEdging     string `json:"door_edging,omitempty"`
	DecorativeLine string `json:"decorative_line,omitempty"`
	FrameType      string `json:"frame_type,omitempty"`
	DoorSize       string `json:"door_size,omitempty"`

	ItemDesc0 string `json:"item_desc_0,omitempty"`
	ItemSize0 string `json:"item_size_0,omitempty"`

	LineItems []LineItem `json:"line_items,omitempty"`
}

func (s *Specification) field(name string) *string {
	switch name {
	case FieldInvoiceNumber:
		return &s.InvoiceNumber
	case FieldPONumber:
		return &s.PONumber
	case FieldDocumentDate:
		return &s.DocumentDate
	case FieldDeliveryDate:
		return &s.DeliveryDate
	case FieldVendorName:
		return &s.VendorName
	case FieldCustomerName:
		return &s.CustomerName
	case FieldDoorThickness:
		return &s.DoorThickness
	case FieldDoorType:
		return &s.DoorType
	case FieldDoorCore:
		return &s.DoorCore
	case FieldDoorEdging:
		return &s.DoorEdging
	case FieldDecorativeLine:
		return &s.DecorativeLine
	case FieldFrameType:
		return &s.FrameType
	case FieldDoorSize:
		return &s.DoorSize
	case FieldItemDesc0:
		return &s.ItemDesc0
	case FieldItemSize0:
		return &s.ItemSize0
	}

	return nil
}

// Field returns the value of a scalar canonical field and whether the name is
// part of the vocabulary.
func (s *Specification) Field(name string) (string, bool) {
	p := s.field(name)

	if p == nil {
		return "", false
	}

	return *p, true
}

// SetField replaces the value of a scalar canonical field.
func (s *Specification) SetField(name, value string) bool {
	p := s.field(name)

	if p == nil {
		return false
	}

	*p = value
	return true
}

// SetFieldIfEmpty populates a field only when it holds no value yet.
func (s *Specification) SetFieldIfEmpty(name, value string) bool {
	p := s.field(name)

	if p == nil || *p != "" || value == "" {
		return false
	}

	*p = value
	return true
}

// Values returns all non-empty scalar fields keyed by canonical name.
func (s *Specification) Values() map[string]string {
	result := make(map[string]string)

	for _, name := range Fields {
		if v, _ := s.Field(name); v != "" {
			result[name] = v
		}
	}

	return result
}

func (s *Specification) Clone() *Specification {
	if s == nil {
		return &Specification{}
	}

	c := *s
	c.LineItems = slices.Clone(s.LineItems)

	return &c
}

func IsField(name string) bool {
	return slices.Contains(Fields, name)
}
