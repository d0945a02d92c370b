package quote

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	notificationService "github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/notification/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/quote/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/validator"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/response"
)

type Handler struct {
	service       service.Quote
	notifications notificationService.Notification
	otel          otel.Otel
}

func New(service service.Quote, notifications notificationService.Notification, otel otel.Otel) Handler {
	return Handler{
		service:       service,
		notifications: notifications,
		otel:          otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateQuote)
		routerGroup.Get("/", handler.GetQuotes)
		routerGroup.Get("/myquotes", handler.GetMyQuotes)
		routerGroup.Get("/{id}", handler.GetQuoteByID)
		routerGroup.Patch("/{id}/status", handler.UpdateQuoteStatus)
		routerGroup.Post("/{id}/notify", handler.NotifyQuoteApproved)
	})
}

// CreateQuote handles a public quote request submission.
// @Summary Submit a quote request
// @Description Submit a new trip-quote request. No authentication required.
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.CreateQuoteRequest true "Create Quote Request"
// @Success 201 {object} response.Data[dto.CreateQuoteResponse] "Quote created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes [post]
func (handler *Handler) CreateQuote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateQuote")
	defer scope.End()

	req := dto.CreateQuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create quote")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Quote request created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetQuotes retrieves all quotes for operators.
// @Summary Get all quotes
// @Description Retrieve all quote requests with optional filtering and pagination. Operator only.
// @Tags Quote
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, reviewing, quoted, approved, rejected)"
// @Param destination query string false "Filter by destination (substring match)"
// @Success 200 {object} response.Data[dto.GetQuotesResponse] "List of quotes"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes [get]
// @Security BearerAuth
func (handler *Handler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuotes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	destination := r.URL.Query().Get(model.FieldDestination)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if destination != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Operator: gDto.FilterOperatorLike,
			Value:    destination,
			Table:    model.TableName,
		})
	}

	quotes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quotes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quotes retrieved successfully")

	response.WithJSON(w, http.StatusOK, quotes)
}

// GetMyQuotes retrieves the quotes linked to the authenticated account.
// @Summary Get my quotes
// @Description Retrieve quotes linked to the currently authenticated user.
// @Tags Quote
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetQuotesResponse] "List of user's quotes"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/myquotes [get]
// @Security BearerAuth
func (handler *Handler) GetMyQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyQuotes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	quotes, err := handler.service.MyQuotes(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user quotes")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User quotes retrieved successfully")

	response.WithJSON(w, http.StatusOK, quotes)
}

// GetQuoteByID retrieves a quote by its ID for operators.
// @Summary Get a quote by ID
// @Description Retrieve a quote request by its unique identifier. Operator only.
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Quote details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetQuoteByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuoteByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	quote, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get quote by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote retrieved successfully")

	response.WithJSON(w, http.StatusOK, quote)
}

// UpdateQuoteStatus moves a quote through its lifecycle.
// @Summary Update quote status
// @Description Update a quote's status, optionally setting price, currency and admin notes. Operator only.
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.QuoteResponse] "Updated quote"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/quotes/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateQuoteStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update quote status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	scope.AddEvent("Quote status updated by " + user)

	response.WithJSON(w, http.StatusOK, quote)
}

// NotifyQuoteApproved emails the requester about their approved quote.
// @Summary Notify quote requester
// @Description Send the approval email for a quote, including a single-use signup token. Operator only.
// @Tags Quote
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.Data[dto.NotifyApprovedResponse] "Notification sent"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/quotes/{id}/notify [post]
// @Security BearerAuth
func (handler *Handler) NotifyQuoteApproved(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NotifyQuoteApproved")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.notifications.NotifyApproved(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to notify quote requester")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Quote approval notification sent for " + id)

	response.WithJSON(w, http.StatusOK, res)
}
