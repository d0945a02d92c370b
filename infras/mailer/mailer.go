package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/config"
	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
)

// Message is a single transactional email handed to the provider.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// SendResult carries the provider-assigned message id.
type SendResult struct {
	ID string `json:"id"`
}

// DeliveryError is returned when the provider rejects or fails a send. It keeps
// the provider's status and raw payload so the caller can surface them.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email provider returned status %d: %s", e.StatusCode, e.Body)
}

// Client is the outbound email-provider API, synchronous from the caller's
// perspective. Retry and backoff are an operational concern, not built in.
type Client interface {
	Send(ctx context.Context, msg Message) (SendResult, error)
}

type clientImpl struct {
	cfg        *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := time.Duration(cfg.Mailer.TimeoutSeconds) * time.Second

	return &clientImpl{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		otel: ot,
	}
}

func (c *clientImpl) Send(ctx context.Context, msg Message) (res SendResult, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"mail.to":      msg.To,
		"mail.subject": msg.Subject,
	})

	payload, err := json.Marshal(msg)
	if err != nil {
		return res, fmt.Errorf("failed to marshal email payload: %w", err)
	}

	url := c.cfg.Mailer.BaseURL + "/emails"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return res, fmt.Errorf("failed to create email request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+c.cfg.Mailer.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return res, fmt.Errorf("failed to call email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		log.Error().
			Int("status", resp.StatusCode).
			Str("to", msg.To).
			Msg("email provider rejected the send")

		return res, &DeliveryError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return res, fmt.Errorf("failed to decode email provider response: %w", err)
	}

	return res, nil
}
