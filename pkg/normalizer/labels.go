package normalizer

import (
	"github.com/adrianliechti/joborder/pkg/jobspec"
)

// DefaultLabels maps entity types reported by extraction services onto
// canonical fields.
var DefaultLabels = map[string]string{
	"invoice_id":     jobspec.FieldInvoiceNumber,
	"invoice_number": jobspec.FieldInvoiceNumber,
	"invoice#":       jobspec.FieldInvoiceNumber,

	"purchase_order": jobspec.FieldPONumber,
	"po_number":      jobspec.FieldPONumber,
	"po#":            jobspec.FieldPONumber,

	"invoice_date": jobspec.FieldDocumentDate,
	"date":         jobspec.FieldDocumentDate,

	"due_date":      jobspec.FieldDeliveryDate,
	"delivery_date": jobspec.FieldDeliveryDate,

	"supplier_name": jobspec.FieldVendorName,
	"vendor_name":   jobspec.FieldVendorName,
	"seller":        jobspec.FieldVendorName,

	"receiver_name": jobspec.FieldCustomerName,
	"customer_name": jobspec.FieldCustomerName,
	"buyer":         jobspec.FieldCustomerName,
	"bill_to":       jobspec.FieldCustomerName,
}

const (
	itemDescription = "description"
	itemQuantity    = "quantity"
	itemUnitPrice   = "unit_price"
	itemAmount      = "amount"
	itemUnit        = "unit"
	itemSize        = "size"
)

// DefaultItemLabels maps line item property types onto line item fields. A
// "line_item/" prefix is stripped before lookup.
var DefaultItemLabels = map[string]string{
	"description": itemDescription,
	"item":        itemDescription,

	"quantity": itemQuantity,
	"qty":      itemQuantity,

	"unit_price": itemUnitPrice,
	"rate":       itemUnitPrice,

	"amount": itemAmount,
	"total":  itemAmount,

	"unit": itemUnit,
	"uom":  itemUnit,

	"size": itemSize,
}

const lineItemType = "line_item"
