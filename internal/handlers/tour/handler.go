package tour

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/tour/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/validator"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/response"
)

type Handler struct {
	service service.Tour
	otel    otel.Otel
}

func New(service service.Tour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tours", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTour)
		routerGroup.Get("/", handler.GetTours)
		routerGroup.Get("/{id}", handler.GetTourByID)
		routerGroup.Patch("/{id}", handler.UpdateTour)
		routerGroup.Delete("/{id}", handler.DeleteTour)
	})
}

// CreateTour handles the creation of a new tour package.
// @Summary Create a new tour
// @Description Create a new tour package with the provided details. Admin only.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.CreateTourRequest true "Create Tour Request"
// @Success 201 {object} response.Message "Tour created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours [post]
// @Security BearerAuth
func (handler *Handler) CreateTour(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTour")
	defer scope.End()

	req := dto.CreateTourRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Tour created successfully")
}

// GetTours retrieves all tour packages based on query parameters.
// @Summary Get all tours
// @Description Retrieve all tour packages with optional filtering and pagination.
// @Tags Tour
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param destination_id query string false "Filter by destination"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetToursResponse] "List of tours"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours [get]
func (handler *Handler) GetTours(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTours")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	destinationID := r.URL.Query().Get(model.FieldDestinationID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if destinationID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDestinationID,
			Operator: gDto.FilterOperatorEq,
			Value:    destinationID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	tours, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tours")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tours retrieved successfully")

	response.WithJSON(w, http.StatusOK, tours)
}

// GetTourByID retrieves a tour by its ID.
// @Summary Get a tour by ID
// @Description Retrieve a tour package by its unique identifier.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Data[dto.TourResponse] "Tour details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [get]
func (handler *Handler) GetTourByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	tour, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tour retrieved successfully")

	response.WithJSON(w, http.StatusOK, tour)
}

// UpdateTour updates an existing tour by its ID.
// @Summary Update a tour by ID
// @Description Update the details of an existing tour package. Admin only.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body dto.UpdateTourRequest true "Update Tour Request"
// @Success 200 {object} response.Message "Tour updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTour")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTourRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour updated successfully")
}

// DeleteTour deletes a tour by its ID.
// @Summary Delete a tour by ID
// @Description Delete a tour package using its unique identifier. Admin only.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} response.Message "Tour deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tours/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTour")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour deleted successfully")
}
