package quotetoken

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quotetoken/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/response"
)

type Handler struct {
	service service.QuoteToken
	otel    otel.Otel
}

func New(service service.QuoteToken, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quote-tokens", func(routerGroup chi.Router) {
		routerGroup.Get("/{token}", handler.ValidateToken)
	})
}

// ValidateToken checks a signup token and returns the quote it belongs to.
// @Summary Validate a quote token
// @Description Validate a single-use signup token and return the associated quote summary. No authentication required.
// @Tags QuoteToken
// @Accept json
// @Produce json
// @Param token path string true "Quote token"
// @Success 200 {object} response.Data[dto.ValidateTokenResponse] "Token is valid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quote-tokens/{token} [get]
func (handler *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateToken")
	defer scope.End()

	token := chi.URLParam(r, constant.RequestParamToken)

	res, err := handler.service.Validate(ctx, token)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate quote token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote token validated")

	response.WithJSON(w, http.StatusOK, res)
}
