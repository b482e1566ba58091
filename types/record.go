package types

import "github.com/shopspring/decimal"

// Kind distinguishes the two submission variants.
type Kind string

const (
	KindContact Kind = "contact"
	KindOrder   Kind = "order"
)

// StatusNew is the status every record starts with.
const StatusNew = "new"

// Record is the canonical, sanitized form of an accepted submission.
type Record interface {
	RecordID() string
	RecordKind() Kind
	CreatedAt() string
	SubmitterEmail() string
}

// ContactRecord is the stored shape of a contact inquiry. Field names match
// the items already present in the contacts table.
type ContactRecord struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

func (r ContactRecord) RecordID() string       { return r.ContactID }
func (r ContactRecord) RecordKind() Kind       { return KindContact }
func (r ContactRecord) CreatedAt() string      { return r.Timestamp }
func (r ContactRecord) SubmitterEmail() string { return r.Email }

// OrderRecord is the stored shape of a checkout order.
type OrderRecord struct {
	OrderID      string          `json:"orderId"`
	OrderDate    string          `json:"orderDate"`
	CustomerInfo Customer        `json:"customerInfo"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Shipping     decimal.Decimal `json:"shipping"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
}

func (r OrderRecord) RecordID() string       { return r.OrderID }
func (r OrderRecord) RecordKind() Kind       { return KindOrder }
func (r OrderRecord) CreatedAt() string      { return r.OrderDate }
func (r OrderRecord) SubmitterEmail() string { return r.CustomerInfo.Email }

type Customer struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone,omitempty"`
	ShippingAddress Address `json:"shippingAddress"`
}

type Address struct {
	Street    string `json:"street"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

type LineItem struct {
	ProductType  string          `json:"productType"`
	Size         string          `json:"size"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	ArtworkURL   string          `json:"artworkUrl"`
	Instructions string          `json:"instructions,omitempty"`
}
