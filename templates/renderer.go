// Package templates renders the branded notification emails for contact
// inquiries and orders.
//
// Record values arrive already HTML-escaped, so documents are built with
// text/template and interpolated verbatim. Artwork links are the exception
// and go through attr.
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/rrinconline/sticker-lab-backend/sanitize"
	"github.com/rrinconline/sticker-lab-backend/types"
	"github.com/shopspring/decimal"
)

// Brand colours shared by every document.
const (
	BrandPrimary   = "#667eea"
	BrandSecondary = "#764ba2"
	BrandSuccess   = "#28a745"
	BrandWarning   = "#ffc107"
	BrandDanger    = "#dc3545"
	BrandInfo      = "#17a2b8"
)

const (
	ContactReplySubject  = "Thank you for contacting Sticker & Magnet Lab"
	contactSubjectPrefix = "Contact Form: "
	contactSubjectRunes  = 50
)

var funcs = template.FuncMap{
	"currency": FormatCurrency,
	"product":  ProductLabel,
	"attr":     sanitize.Escape,
	"shipping": func(d decimal.Decimal) string {
		if d.IsPositive() {
			return FormatCurrency(d)
		}
		return "FREE"
	},
	"inc": func(i int) int { return i + 1 },
}

var documents = template.Must(
	template.New("documents").Funcs(funcs).Parse(sharedPartials + contactDocuments + orderDocuments),
)

type brand struct {
	Primary, Secondary, Success, Warning, Danger, Info string
}

var brandColours = brand{
	Primary:   BrandPrimary,
	Secondary: BrandSecondary,
	Success:   BrandSuccess,
	Warning:   BrandWarning,
	Danger:    BrandDanger,
	Info:      BrandInfo,
}

type contactView struct {
	Brand brand
	types.ContactRecord
}

type orderView struct {
	Brand       brand
	DateShort   string
	Phone       string
	AddressHTML string
	types.OrderRecord
}

// Renderer produces RenderedNotifications. It is safe for concurrent use.
type Renderer struct {
	staff []string
}

// NewRenderer returns a Renderer addressing staff notifications to staff.
func NewRenderer(staff []string) *Renderer {
	return &Renderer{staff: append([]string(nil), staff...)}
}

// Render builds the document for rec aimed at audience. It has no side
// effects, so a failure here happens before anything is stored or sent.
func (r *Renderer) Render(rec types.Record, audience types.Audience) (types.RenderedNotification, error) {
	switch v := rec.(type) {
	case types.ContactRecord:
		return r.renderContact(v, audience)
	case *types.ContactRecord:
		return r.renderContact(*v, audience)
	case types.OrderRecord:
		return r.renderOrder(v, audience)
	case *types.OrderRecord:
		return r.renderOrder(*v, audience)
	default:
		return types.RenderedNotification{}, fmt.Errorf("no template for record type %T", rec)
	}
}

func (r *Renderer) renderContact(rec types.ContactRecord, audience types.Audience) (types.RenderedNotification, error) {
	view := contactView{Brand: brandColours, ContactRecord: rec}

	switch audience {
	case types.AudienceStaff:
		subject := contactSubjectPrefix + truncateRunes(rec.Subject, contactSubjectRunes)
		return r.execute("contact_staff", view, audience, r.staffRecipients(), subject)
	case types.AudienceSubmitter:
		return r.execute("contact_reply", view, audience, []string{rec.Email}, ContactReplySubject)
	default:
		return types.RenderedNotification{}, fmt.Errorf("unknown audience %q", audience)
	}
}

func (r *Renderer) renderOrder(rec types.OrderRecord, audience types.Audience) (types.RenderedNotification, error) {
	view := orderView{
		Brand:       brandColours,
		DateShort:   truncateRunes(rec.OrderDate, 10),
		Phone:       rec.CustomerInfo.Phone,
		AddressHTML: addressHTML(rec.CustomerInfo.ShippingAddress),
		OrderRecord: rec,
	}
	if view.Phone == "" {
		view.Phone = "Not provided"
	}

	switch audience {
	case types.AudienceStaff:
		subject := fmt.Sprintf("New Order %s - %s", rec.OrderID, FormatCurrency(rec.Total))
		return r.execute("order_staff", view, audience, r.staffRecipients(), subject)
	case types.AudienceSubmitter:
		subject := "Order Confirmation - " + rec.OrderID
		return r.execute("order_confirmation", view, audience, []string{rec.CustomerInfo.Email}, subject)
	default:
		return types.RenderedNotification{}, fmt.Errorf("unknown audience %q", audience)
	}
}

func (r *Renderer) execute(name string, view any, audience types.Audience, to []string, subject string) (types.RenderedNotification, error) {
	var buf bytes.Buffer
	if err := documents.ExecuteTemplate(&buf, name, view); err != nil {
		return types.RenderedNotification{}, fmt.Errorf("render %s: %w", name, err)
	}
	html := buf.String()

	return types.RenderedNotification{
		Audience:   audience,
		Recipients: to,
		Subject:    subject,
		HTML:       html,
		Text:       PlainText(html),
	}, nil
}

func (r *Renderer) staffRecipients() []string {
	return append([]string(nil), r.staff...)
}

func addressHTML(a types.Address) string {
	lines := []string{a.Street}
	if a.Apartment != "" {
		lines = append(lines, a.Apartment)
	}
	lines = append(lines, fmt.Sprintf("%s, %s %s", a.City, a.State, a.Zip), a.Country)

	kept := lines[:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "<br>")
}
