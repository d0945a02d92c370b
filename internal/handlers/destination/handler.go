package destination

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/destination/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	gDto "github.com/Reece-Nunez/meridian-travel-sub000/shared/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/validator"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/response"
)

type Handler struct {
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Get("/{id}", handler.GetDestinationByID)
		routerGroup.Patch("/{id}", handler.UpdateDestination)
		routerGroup.Delete("/{id}", handler.DeleteDestination)
		routerGroup.Post("/{id}/image", handler.UploadHeroImage)
	})
}

// CreateDestination handles the creation of a new destination.
// @Summary Create a new destination
// @Description Create a new destination with the provided details. Admin only.
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Create Destination Request"
// @Success 201 {object} response.Message "Destination created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.CreateDestinationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Destination created successfully")
}

// GetDestinations retrieves all destinations based on query parameters.
// @Summary Get all destinations
// @Description Retrieve all destinations with optional filtering and pagination.
// @Tags Destination
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param country query string false "Filter by country"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetDestinationsResponse] "List of destinations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [get]
func (handler *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	country := r.URL.Query().Get(model.FieldCountry)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCountry,
				Operator: gDto.FilterOperatorLike,
				Value:    country,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	destinations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Destinations retrieved successfully")

	response.WithJSON(w, http.StatusOK, destinations)
}

// GetDestinationByID retrieves a destination by its ID.
// @Summary Get a destination by ID
// @Description Retrieve a destination by its unique identifier.
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Data[dto.DestinationResponse] "Destination details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [get]
func (handler *Handler) GetDestinationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	destination, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destination by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Destination retrieved successfully")

	response.WithJSON(w, http.StatusOK, destination)
}

// UpdateDestination updates an existing destination by its ID.
// @Summary Update a destination by ID
// @Description Update the details of an existing destination. Admin only.
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.UpdateDestinationRequest true "Update Destination Request"
// @Success 200 {object} response.Message "Destination updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDestinationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update destination")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Destination updated successfully")
}

// DeleteDestination deletes a destination by its ID.
// @Summary Delete a destination by ID
// @Description Delete a destination using its unique identifier. Admin only.
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Message "Destination deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDestination")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete destination")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Destination deleted successfully")
}

// UploadHeroImage replaces the hero image of a destination.
// @Summary Upload destination hero image
// @Description Upload and set the hero image for a destination. Admin only.
// @Tags Destination
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Destination ID"
// @Param image formData file true "Hero image"
// @Success 200 {object} response.Data[dto.UploadHeroImageResponse] "Hero image uploaded"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadHeroImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadHeroImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadHeroImageRequest{}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadHeroImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload hero image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hero image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}
