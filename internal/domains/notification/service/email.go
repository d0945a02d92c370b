package service

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"strings"
)

// approvedEmailTemplate is the quote-approved email. Both links carry the same
// single-use token so the recipient can pick signup or signin.
const approvedEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <h2>Your trip quote is ready</h2>
  <p>Hi {{.ContactName}},</p>
  <p>Great news! Your quote for <strong>{{.Destination}}</strong> has been approved.</p>
  <table cellpadding="6">
    <tr><td>Destination</td><td><strong>{{.Destination}}</strong></td></tr>
    {{if .StartDate}}<tr><td>Start date</td><td>{{.StartDate}}</td></tr>{{end}}
    <tr><td>Duration</td><td>{{.DurationDays}} days</td></tr>
    <tr><td>Travelers</td><td>{{.Participants}}</td></tr>
    <tr><td>Price</td><td><strong>{{.Price}}</strong></td></tr>
  </table>
  {{if .AdminNotes}}<p><em>{{.AdminNotes}}</em></p>{{end}}
  <p>
    <a href="{{.SignupLink}}">Create an account</a> to manage your trip, or
    <a href="{{.SigninLink}}">sign in</a> if you already have one.
  </p>
  <p>Safe travels,<br>The Meridian Travel team</p>
</body>
</html>`

var approvedEmail = template.Must(template.New("quote_approved").Parse(approvedEmailTemplate))

type approvedEmailData struct {
	ContactName  string
	Destination  string
	StartDate    string
	DurationDays int
	Participants int
	Price        string
	AdminNotes   string
	SignupLink   string
	SigninLink   string
}

func renderApprovedEmail(data approvedEmailData) (string, error) {
	var buf bytes.Buffer

	if err := approvedEmail.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render approved-quote email: %w", err)
	}

	return buf.String(), nil
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// formatPrice renders an amount for email display: "$4,200" for whole USD
// amounts, "$4,200.50" with cents, and "CAD 4,200" for currencies without a
// known symbol.
func formatPrice(amount float64, currency string) string {
	whole := int64(amount)
	frac := math.Round((amount - float64(whole)) * 100)

	grouped := groupThousands(whole)

	var rendered string
	if frac > 0 {
		rendered = fmt.Sprintf("%s.%02d", grouped, int64(frac))
	} else {
		rendered = grouped
	}

	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + rendered
	}

	return currency + " " + rendered
}

func groupThousands(value int64) string {
	digits := fmt.Sprintf("%d", value)

	if len(digits) <= 3 {
		return digits
	}

	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}

	parts = append([]string{digits}, parts...)

	return strings.Join(parts, ",")
}
