// Package records turns validated submissions into canonical records.
package records

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rrinconline/sticker-lab-backend/sanitize"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/rrinconline/sticker-lab-backend/validation"
)

const (
	ContactIDPrefix = "CONTACT"
	OrderIDPrefix   = "ORDER"

	// DefaultSubject is used when a contact inquiry arrives without a subject.
	DefaultSubject = "General Inquiry"
	// DefaultCountry is assumed for shipping addresses without a country.
	DefaultCountry = "USA"

	// TimestampLayout renders UTC instants with microseconds and a trailing Z.
	TimestampLayout = "2006-01-02T15:04:05.000000Z"
)

// Caps for order fields that have no explicit validation ceiling.
const (
	maxPhoneLength      = 50
	maxAddressLength    = 200
	maxProductLength    = 100
	maxEmailFieldLength = 320
)

// Clock supplies the creation instant.
type Clock func() time.Time

// IDSource supplies a random unique identifier; only its first eight
// characters are used.
type IDSource func() string

// Builder assembles records. It holds no mutable state, so one Builder can be
// shared by concurrent requests.
type Builder struct {
	now   Clock
	newID IDSource
}

// NewBuilder returns a Builder using the wall clock and random UUIDs.
func NewBuilder() *Builder {
	return NewBuilderWith(time.Now, uuid.NewString)
}

// NewBuilderWith returns a Builder with injected clock and id source.
func NewBuilderWith(now Clock, newID IDSource) *Builder {
	return &Builder{now: now, newID: newID}
}

// Contact builds the record for a validated contact inquiry.
func (b *Builder) Contact(form types.ContactForm) types.ContactRecord {
	subject := form.Subject.Trimmed()
	if subject == "" {
		subject = DefaultSubject
	}

	return types.ContactRecord{
		ContactID: b.id(ContactIDPrefix),
		Name:      sanitize.Text(form.Name.Trimmed(), validation.MaxNameLength),
		Email:     normalizeEmail(form.Email),
		Subject:   sanitize.Text(subject, validation.MaxSubjectLength),
		Message:   sanitize.Text(form.Message.Trimmed(), validation.MaxMessageLength),
		Timestamp: b.timestamp(),
		Status:    types.StatusNew,
	}
}

// Order builds the record for a validated order. Artwork references are
// expected to be resolved already and are stored as links, unescaped.
func (b *Builder) Order(form types.OrderForm) types.OrderRecord {
	customer := form.CustomerInfo
	addr := customer.ShippingAddress

	country := addr.Country.Trimmed()
	if country == "" {
		country = DefaultCountry
	}

	items := make([]types.LineItem, 0, len(form.Items))
	for _, item := range form.Items {
		items = append(items, types.LineItem{
			ProductType:  sanitize.Text(item.ProductType.Trimmed(), maxProductLength),
			Size:         sanitize.Text(item.Size.Trimmed(), maxProductLength),
			Quantity:     item.Quantity.Value.IntPart(),
			UnitPrice:    item.UnitPrice.Value,
			TotalPrice:   item.TotalPrice.Value,
			ArtworkURL:   item.ArtworkReference(),
			Instructions: sanitize.Text(item.Instructions.Trimmed(), validation.MaxInstructionsLength),
		})
	}

	return types.OrderRecord{
		OrderID:   b.id(OrderIDPrefix),
		OrderDate: b.timestamp(),
		CustomerInfo: types.Customer{
			Name:  sanitize.Text(customer.Name.Trimmed(), validation.MaxNameLength),
			Email: normalizeEmail(customer.Email),
			Phone: sanitize.Text(customer.Phone.Trimmed(), maxPhoneLength),
			ShippingAddress: types.Address{
				Street:    sanitize.Text(addr.Street.Trimmed(), maxAddressLength),
				Apartment: sanitize.Text(addr.Apartment.Trimmed(), maxAddressLength),
				City:      sanitize.Text(addr.City.Trimmed(), maxAddressLength),
				State:     sanitize.Text(addr.State.Trimmed(), maxAddressLength),
				Zip:       sanitize.Text(addr.Zip.Trimmed(), maxAddressLength),
				Country:   sanitize.Text(country, maxAddressLength),
			},
		},
		Items:    items,
		Subtotal: form.Subtotal.Value,
		Shipping: form.Shipping.Value,
		Total:    form.Total.Value,
		Status:   types.StatusNew,
	}
}

func (b *Builder) id(prefix string) string {
	raw := strings.ReplaceAll(b.newID(), "-", "")
	if len(raw) > 8 {
		raw = raw[:8]
	}
	return prefix + "-" + strings.ToLower(raw)
}

func (b *Builder) timestamp() string {
	return b.now().UTC().Format(TimestampLayout)
}

// normalizeEmail lowercases and trims. The address passed the validator's
// pattern, which admits no HTML-significant characters.
func normalizeEmail(email types.Text) string {
	return sanitize.Truncate(strings.ToLower(email.Trimmed()), maxEmailFieldLength)
}
