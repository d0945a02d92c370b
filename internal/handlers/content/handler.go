package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Reece-Nunez/meridian-travel-sub000/infras/otel"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/model/dto"
	"github.com/Reece-Nunez/meridian-travel-sub000/internal/domains/content/service"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/constant"
	"github.com/Reece-Nunez/meridian-travel-sub000/shared/validator"
	"github.com/Reece-Nunez/meridian-travel-sub000/transport/http/response"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contents", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetContents)
		routerGroup.Get("/{key}", handler.GetContentByKey)
		routerGroup.Put("/{key}", handler.UpsertContent)
		routerGroup.Delete("/{key}", handler.DeleteContent)
	})
}

// GetContents retrieves all site content blocks.
// @Summary Get all contents
// @Description Retrieve all site content blocks, sorted by key.
// @Tags Content
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetContentsResponse] "List of contents"
// @Failure 500 {object} response.Error
// @Router /v1/contents [get]
func (handler *Handler) GetContents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContents")
	defer scope.End()

	contents, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contents retrieved successfully")

	response.WithJSON(w, http.StatusOK, contents)
}

// GetContentByKey retrieves a content block by its key.
// @Summary Get content by key
// @Description Retrieve a single site content block by its key.
// @Tags Content
// @Accept json
// @Produce json
// @Param key path string true "Content key"
// @Success 200 {object} response.Data[dto.ContentResponse] "Content details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/{key} [get]
func (handler *Handler) GetContentByKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContentByKey")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	content, err := handler.service.Get(ctx, key)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get content by key")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Content retrieved successfully")

	response.WithJSON(w, http.StatusOK, content)
}

// UpsertContent creates or replaces a content block under a key.
// @Summary Upsert content
// @Description Create or replace the site content block stored under a key. Admin only.
// @Tags Content
// @Accept json
// @Produce json
// @Param key path string true "Content key"
// @Param request body dto.UpsertContentRequest true "Upsert Content Request"
// @Success 200 {object} response.Message "Content saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/{key} [put]
// @Security BearerAuth
func (handler *Handler) UpsertContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertContent")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	req := dto.UpsertContentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Upsert(ctx, req, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content saved successfully")
}

// DeleteContent deletes a content block by its key.
// @Summary Delete content
// @Description Delete the site content block stored under a key. Admin only.
// @Tags Content
// @Accept json
// @Produce json
// @Param key path string true "Content key"
// @Success 200 {object} response.Message "Content deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contents/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContent")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	if err := handler.service.Delete(ctx, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete content")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Content deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Content deleted successfully")
}
