// Package validation checks raw submissions before any record is built.
//
// Every rule is evaluated and every violation reported; an empty slice means
// the submission is acceptable. Length ceilings apply to the raw input, before
// trimming or escaping.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/shopspring/decimal"
)

// Field length ceilings, in characters.
const (
	MaxNameLength         = 200
	MaxSubjectLength      = 500
	MaxMessageLength      = 10000
	MaxInstructionsLength = 1000
	MaxArtworkRefLength   = 2048
)

// MaxQuantity is the largest quantity a single line item may order.
const MaxQuantity = 100000

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether email has the local@domain.tld shape accepted
// for submitters.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateContact checks a contact inquiry.
func ValidateContact(form types.ContactForm) []string {
	var errs []string

	if form.Name.Blank() {
		errs = append(errs, "Name is required")
	}
	errs = appendEmailErrors(errs, form.Email, "Email is required")
	if form.Message.Blank() {
		errs = append(errs, "Message is required")
	}

	if tooLong(form.Name, MaxNameLength) {
		errs = append(errs, "Name must be less than 200 characters")
	}
	if tooLong(form.Subject, MaxSubjectLength) {
		errs = append(errs, "Subject must be less than 500 characters")
	}
	if tooLong(form.Message, MaxMessageLength) {
		errs = append(errs, "Message must be less than 10,000 characters")
	}

	return errs
}

// ValidateOrder checks a checkout order: customer, shipping address, line
// items and totals.
func ValidateOrder(form types.OrderForm) []string {
	var errs []string
	customer := form.CustomerInfo
	address := customer.ShippingAddress

	if customer.Name.Blank() {
		errs = append(errs, "Customer name is required")
	}
	if tooLong(customer.Name, MaxNameLength) {
		errs = append(errs, "Customer name must be less than 200 characters")
	}
	errs = appendEmailErrors(errs, customer.Email, "Customer email is required")

	if address.Street.Blank() {
		errs = append(errs, "Shipping street is required")
	}
	if address.City.Blank() {
		errs = append(errs, "Shipping city is required")
	}
	if address.State.Blank() {
		errs = append(errs, "Shipping state is required")
	}
	if address.Zip.Blank() {
		errs = append(errs, "Shipping ZIP code is required")
	}

	if len(form.Items) == 0 {
		errs = append(errs, "At least one item is required")
	}
	for i, item := range form.Items {
		errs = append(errs, validateLineItem(i+1, item)...)
	}

	errs = appendAmountErrors(errs, "Subtotal", form.Subtotal)
	errs = appendAmountErrors(errs, "Shipping", form.Shipping)
	errs = appendAmountErrors(errs, "Total", form.Total)

	return errs
}

func validateLineItem(n int, item types.LineItemForm) []string {
	var errs []string
	prefix := fmt.Sprintf("Item %d: ", n)

	if item.ProductType.Blank() {
		errs = append(errs, prefix+"product type is required")
	}
	qty := item.Quantity
	if qty.Invalid || !qty.Value.Equal(qty.Value.Truncate(0)) ||
		qty.Value.LessThan(decimal.NewFromInt(1)) || qty.Value.GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		errs = append(errs, prefix+"quantity must be a whole number between 1 and 100,000")
	}
	for _, price := range []types.Amount{item.UnitPrice, item.TotalPrice} {
		if price.Invalid {
			errs = append(errs, prefix+"price is not a valid amount")
			break
		}
		if price.Value.IsNegative() {
			errs = append(errs, prefix+"price must not be negative")
			break
		}
	}
	switch ref := item.ArtworkReference(); {
	case ref == "":
		errs = append(errs, prefix+"artwork is required")
	case utf8.RuneCountInString(ref) > MaxArtworkRefLength:
		errs = append(errs, prefix+"artwork reference must be less than 2,048 characters")
	case !IsAllowedArtworkRef(ref):
		errs = append(errs, prefix+"artwork must be an http(s) or s3 link or an upload key")
	}
	if tooLong(item.Instructions, MaxInstructionsLength) {
		errs = append(errs, prefix+"instructions must be less than 1,000 characters")
	}

	return errs
}

// IsAllowedArtworkRef reports whether ref is an http(s) URL, an s3:// URL or
// a bare storage key.
func IsAllowedArtworkRef(ref string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "":
		return !strings.HasPrefix(ref, "//")
	case "http", "https", "s3":
		return u.Host != ""
	default:
		return false
	}
}

func appendEmailErrors(errs []string, email types.Text, requiredMsg string) []string {
	if email.Blank() {
		return append(errs, requiredMsg)
	}
	if !IsValidEmail(email.Trimmed()) {
		return append(errs, "Invalid email format")
	}
	return errs
}

func appendAmountErrors(errs []string, label string, amount types.Amount) []string {
	if amount.Invalid {
		return append(errs, label+" is not a valid amount")
	}
	if amount.Value.IsNegative() {
		return append(errs, label+" must not be negative")
	}
	return errs
}

func tooLong(t types.Text, limit int) bool {
	return utf8.RuneCountInString(string(t)) > limit
}
