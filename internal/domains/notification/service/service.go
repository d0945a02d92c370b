package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/mailer"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/notification/model/dto"
	quoteModel "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	quoteRepo "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/repository"
	tokenService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/permissions"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/failure"
)

type Notification interface {
	NotifyApproved(ctx context.Context, quoteID string) (dto.NotifyApprovedResponse, error)
}

type serviceImpl struct {
	quoteRepo quoteRepo.Quote
	tokens    tokenService.QuoteToken
	mail      mailer.Client
	cfg       *config.Config
	otel      otel.Otel
}

func New(quoteRepo quoteRepo.Quote, tokens tokenService.QuoteToken, mail mailer.Client, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		quoteRepo: quoteRepo,
		tokens:    tokens,
		mail:      mail,
		cfg:       cfg,
		otel:      otel,
	}
}

// NotifyApproved emails the quote contact that their quote is approved, with
// signup and signin links both carrying a fresh single-use linking token. The
// quote must already be approved and priced; notification never mutates quote
// state, so a delivery failure leaves nothing to roll back.
func (s *serviceImpl) NotifyApproved(ctx context.Context, quoteID string) (res dto.NotifyApprovedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NotifyApproved")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if !permissions.IsOperator(role, email, s.cfg.App.OperatorEmails) {
		return res, failure.Unauthorized("not allowed to send quote notifications")
	}

	quote, err := s.quoteRepo.Get(ctx, shared.FilterByID(quoteID, quoteModel.FieldID, quoteModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get quote")

		return res, fmt.Errorf("failed to get quote: %w", err)
	}

	if quote.ID == constant.Empty {
		return res, failure.NotFound("quote not found") // nolint:wrapcheck
	}

	if quote.Status != constant.QuoteStatusApproved || quote.QuotedPrice == nil {
		return res, failure.InvalidState("quote must be approved with a price before notifying") // nolint:wrapcheck
	}

	token, err := s.tokens.Issue(ctx, quote.ID, quote.ContactEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue linking token")

		return res, fmt.Errorf("failed to issue linking token: %w", err)
	}

	signupLink := s.tokenLink("/signup", token.Token)
	signinLink := s.tokenLink("/login", token.Token)

	currency := constant.DefaultCurrency
	if quote.QuotedCurrency != nil {
		currency = *quote.QuotedCurrency
	}

	data := approvedEmailData{
		ContactName:  quote.ContactName,
		Destination:  quote.Destination,
		DurationDays: quote.DurationDays,
		Participants: quote.Participants,
		Price:        formatPrice(*quote.QuotedPrice, currency),
		SignupLink:   signupLink,
		SigninLink:   signinLink,
	}

	if quote.StartDate != nil {
		data.StartDate = quote.StartDate.Format("2006-01-02")
	}

	if quote.AdminNotes != nil {
		data.AdminNotes = *quote.AdminNotes
	}

	body, err := renderApprovedEmail(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to render notification email")

		return res, err
	}

	msg := mailer.Message{
		From:    s.cfg.Mailer.Sender,
		To:      quote.ContactEmail,
		Subject: fmt.Sprintf("Your quote for %s is ready", quote.Destination),
		HTML:    body,
	}

	if _, err = s.mail.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("quote_id", quote.ID).Msg("failed to deliver quote notification")

		var deliveryErr *mailer.DeliveryError
		if errors.As(err, &deliveryErr) {
			return res, failure.BadGateway(fmt.Sprintf("quote updated, notification failed: provider status %d", deliveryErr.StatusCode)) // nolint:wrapcheck
		}

		return res, failure.BadGateway("quote updated, notification failed") // nolint:wrapcheck
	}

	res.Success = true
	res.SignupLink = signupLink

	return res, nil
}

func (s *serviceImpl) tokenLink(path, token string) string {
	return fmt.Sprintf("%s%s?%s=%s", s.cfg.App.BaseURL, path, constant.RequestParamQuoteToken, url.QueryEscape(token))
}
