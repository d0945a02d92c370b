package dto

import (
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
)

// IssueTokenResult is the outcome of minting a linking token. Persisted is
// false when the row could not be stored; the token still works for the email
// round-trip, it just cannot be redeemed later.
type IssueTokenResult struct {
	Token     string
	ExpiresAt string
	Persisted bool
}

// QuoteSummary is the public-safe slice of a quote shown on the signup
// pre-fill screen. Admin notes and audit fields stay out.
type QuoteSummary struct {
	ID             string   `json:"id"`
	Destination    string   `json:"destination"`
	StartDate      *string  `json:"start_date,omitempty"`
	DurationDays   int      `json:"duration_days"`
	Participants   int      `json:"participants"`
	Status         string   `json:"status"`
	QuotedPrice    *float64 `json:"quoted_price,omitempty"`
	QuotedCurrency *string  `json:"quoted_currency,omitempty"`
}

func (r *QuoteSummary) FromModel(mod quoteModel.Quote) {
	r.ID = mod.ID
	r.Destination = mod.Destination

	if mod.StartDate != nil {
		formatted := mod.StartDate.Format("2006-01-02")
		r.StartDate = &formatted
	}

	r.DurationDays = mod.DurationDays
	r.Participants = mod.Participants
	r.Status = mod.Status
	r.QuotedPrice = mod.QuotedPrice
	r.QuotedCurrency = mod.QuotedCurrency
}

type ValidateTokenResponse struct {
	Email string       `json:"email"`
	Quote QuoteSummary `json:"quote"`
}
