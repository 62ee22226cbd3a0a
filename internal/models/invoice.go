package models

import (
	"fmt"
	"strconv"
	"time"
)

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// Invoice represents a billing document derived from a shipment. Monetary
// amounts are decimal strings with two fraction digits.
type Invoice struct {
	ID            int           `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CustomerID    int           `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	ShipmentID    int           `json:"shipment_id"`
	Subtotal      string        `json:"subtotal"`
	Discount      string        `json:"discount"`
	TaxRate       float64       `json:"tax_rate"`
	TaxAmount     string        `json:"tax_amount"`
	Total         string        `json:"total"`
	Status        InvoiceStatus `json:"status"`
	IssuedDate    time.Time     `json:"issued_date"`
	DueDate       time.Time     `json:"due_date"`
	CreatedAt     time.Time     `json:"created_at"`
}

// InvoiceUpdate carries the merge payload for PUT/PATCH. The invoice
// number is derived at creation and not updatable.
type InvoiceUpdate struct {
	CustomerID *int           `json:"customer_id"`
	ShipmentID *int           `json:"shipment_id"`
	Discount   *string        `json:"discount"`
	TaxRate    *float64       `json:"tax_rate"`
	Status     *InvoiceStatus `json:"status"`
	DueDate    *time.Time     `json:"due_date"`
}

func (i *Invoice) Apply(u InvoiceUpdate) {
	if u.CustomerID != nil {
		i.CustomerID = *u.CustomerID
	}
	if u.ShipmentID != nil {
		i.ShipmentID = *u.ShipmentID
	}
	if u.Discount != nil {
		i.Discount = *u.Discount
	}
	if u.TaxRate != nil {
		i.TaxRate = *u.TaxRate
	}
	if u.Status != nil && u.Status.IsValid() {
		i.Status = *u.Status
	}
	if u.DueDate != nil {
		i.DueDate = *u.DueDate
	}
}

// Recalculate refreshes the computed monetary fields from the current
// subtotal, discount and tax rate.
func (i *Invoice) Recalculate() {
	subtotal := ParseAmount(i.Subtotal)
	discount := ParseAmount(i.Discount)
	tax := (subtotal - discount) * i.TaxRate / 100
	i.TaxAmount = FormatAmount(tax)
	i.Total = FormatAmount(subtotal - discount + tax)
}

// InvoiceNumber builds the generated document number for an invoice id,
// e.g. FTR-2026-0042.
func InvoiceNumberFor(id int, issued time.Time) string {
	return fmt.Sprintf("FTR-%d-%04d", issued.Year(), id)
}

// ParseAmount reads a decimal money string, coercing malformed or missing
// values to zero rather than erroring.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatAmount renders a money value as a decimal string with two
// fraction digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
