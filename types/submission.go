package types

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Text is a lenient string field. JSON strings pass through, numbers and
// booleans keep their literal text, and null or nested values decode to "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		*t = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[', 'n':
		*t = ""
	default:
		*t = Text(trimmed)
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Trimmed returns the value without surrounding whitespace.
func (t Text) Trimmed() string {
	return strings.TrimSpace(string(t))
}

// Blank reports whether the value is empty after trimming.
func (t Text) Blank() bool {
	return t.Trimmed() == ""
}

// Amount is a lenient decimal field. Numbers and numeric strings parse; an
// absent or null value is zero; anything else is flagged Invalid so the
// validator can report it instead of failing the whole body.
type Amount struct {
	Value   decimal.Decimal
	Invalid bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}

	raw := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			a.Invalid = true
			return nil
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		a.Invalid = true
		return nil
	}
	a.Value = d
	return nil
}

// ContactForm is the raw contact submission as posted by the site.
type ContactForm struct {
	Name    Text `json:"name"`
	Email   Text `json:"email"`
	Subject Text `json:"subject"`
	Message Text `json:"message"`
}

// OrderForm is the raw order submission as posted by the checkout page.
type OrderForm struct {
	CustomerInfo CustomerForm   `json:"customerInfo"`
	Items        []LineItemForm `json:"items"`
	Subtotal     Amount         `json:"subtotal"`
	Shipping     Amount         `json:"shipping"`
	Total        Amount         `json:"total"`
}

type CustomerForm struct {
	Name            Text        `json:"name"`
	Email           Text        `json:"email"`
	Phone           Text        `json:"phone"`
	ShippingAddress AddressForm `json:"shippingAddress"`
}

type AddressForm struct {
	Street    Text `json:"street"`
	Apartment Text `json:"apartment"`
	City      Text `json:"city"`
	State     Text `json:"state"`
	Zip       Text `json:"zip"`
	Country   Text `json:"country"`
}

type LineItemForm struct {
	ProductType  Text   `json:"productType"`
	Size         Text   `json:"size"`
	Quantity     Amount `json:"quantity"`
	UnitPrice    Amount `json:"unitPrice"`
	TotalPrice   Amount `json:"totalPrice"`
	ArtworkURL   Text   `json:"artworkUrl"`
	ArtworkS3URL Text   `json:"artworkS3Url"`
	ArtworkKey   Text   `json:"artworkKey"`
	Instructions Text   `json:"instructions"`
}

// ArtworkReference returns the first artwork pointer the client supplied:
// a direct URL, an s3:// URL, or a bare object key.
func (i LineItemForm) ArtworkReference() string {
	for _, ref := range []Text{i.ArtworkURL, i.ArtworkS3URL, i.ArtworkKey} {
		if !ref.Blank() {
			return ref.Trimmed()
		}
	}
	return ""
}
