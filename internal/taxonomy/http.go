// Copyright (c) 2026 Maqala. All rights reserved.

package taxonomy

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/maqalahq/maqala/internal/platform/request"
	"github.com/maqalahq/maqala/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CategoryRoutes returns the router mounted at /categories.
func (handler *Handler) CategoryRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listCategories)
	router.Get("/{slug}", handler.getCategoryBySlug)
	router.Post("/", handler.createCategory)
	router.Patch("/{id}", handler.updateCategory)
	router.Delete("/{id}", handler.deleteCategory)
	return router
}

// SeriesRoutes returns the router mounted at /series.
func (handler *Handler) SeriesRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listSeries)
	router.Get("/{slug}", handler.getSeriesBySlug)
	router.Post("/", handler.createSeries)
	router.Patch("/{id}", handler.updateSeries)
	router.Delete("/{id}", handler.deleteSeries)
	return router
}

// # Category Endpoints

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategoryBySlug(writer http.ResponseWriter, request *http.Request) {
	categorySlug := requestutil.Param(request, "slug")

	category, err := handler.service.GetCategoryBySlug(request.Context(), categorySlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

// taxonomyRequest is the shared inbound shape for categories and series.
type taxonomyRequest struct {
	Name        string `json:"name"`
	NameAr      string `json:"name_ar"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input taxonomyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category := &Category{
		Name:        input.Name,
		NameAr:      input.NameAr,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.CreateCategory(request.Context(), category); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, category)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	var input taxonomyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category := &Category{
		ID:          requestutil.ID(request, "id"),
		Name:        input.Name,
		NameAr:      input.NameAr,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.UpdateCategory(request.Context(), category); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCategory(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Series Endpoints

func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	collection, err := handler.service.ListSeries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, collection)
}

func (handler *Handler) getSeriesBySlug(writer http.ResponseWriter, request *http.Request) {
	seriesSlug := requestutil.Param(request, "slug")

	series, err := handler.service.GetSeriesBySlug(request.Context(), seriesSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, series)
}

func (handler *Handler) createSeries(writer http.ResponseWriter, request *http.Request) {
	var input taxonomyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	series := &Series{
		Name:        input.Name,
		NameAr:      input.NameAr,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.CreateSeries(request.Context(), series); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, series)
}

func (handler *Handler) updateSeries(writer http.ResponseWriter, request *http.Request) {
	var input taxonomyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	series := &Series{
		ID:          requestutil.ID(request, "id"),
		Name:        input.Name,
		NameAr:      input.NameAr,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := handler.service.UpdateSeries(request.Context(), series); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, series)
}

func (handler *Handler) deleteSeries(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteSeries(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
