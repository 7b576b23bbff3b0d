// Copyright (c) 2026 Maqala. All rights reserved.

/*
HTTP interface for the article domain.

It exposes the public reading endpoints (list, slug resolution with
dual-language fallback, engagement counters) and the editorial endpoints
(create, update, dual-language management, machine translation).

The handler translates between the web/JSON layer and the internal domain
[Service].
*/
package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/maqalahq/maqala/internal/platform/request"
	"github.com/maqalahq/maqala/internal/platform/respond"
	"github.com/maqalahq/maqala/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for article publishing and reading.
type Handler struct {
	service *Service
}

// NewHandler constructs a new article [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the article domain's
// endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Reading Endpoints
	router.Get("/", handler.listArticles)
	router.Get("/slug/{slug}", handler.getArticleBySlug)
	router.Get("/{id}", handler.getArticle)
	router.Post("/{id}/views", handler.recordView)
	router.Post("/{id}/shares", handler.recordShare)

	// ## Editorial Endpoints
	router.Post("/", handler.createArticle)
	router.Post("/dual", handler.createDualLanguageArticle)
	router.Patch("/{id}", handler.updateArticle)
	router.Patch("/{id}/dual", handler.updateDualLanguageArticle)
	router.Delete("/{id}", handler.deleteArticle)

	// ## Dual-Language Management
	router.Put("/{id}/languages/{lang}", handler.addSecondaryLanguageContent)
	router.Patch("/{id}/language-fields", handler.addSecondaryLanguageFields)

	// ## Machine Translation
	router.Post("/{id}/translate/{lang}", handler.translateArticle)
	router.Get("/{id}/translate/{lang}/preview", handler.previewTranslation)

	return router
}

// # Reading Endpoints

/*
GET /api/v1/articles.

Description: Retrieves a paginated list of articles. Supports filtering by
language, status, category, series, author, and the editorial flags.

Request:
  - language: string (en, ar, id, tr)
  - status: []string (draft, published, archived)
  - category: string
  - series: string (Series UUID)
  - author: string
  - featured: bool
  - latest: bool
  - sort: string (latest, popular, shares)
  - dir: string (asc, desc)
  - limit: int
  - page: int

Response:
  - 200: []Article: Paginated list of articles
*/
func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Language: Language(queryParams.Get("language")),
		Status:   parseStatusSlice(queryParams["status"]),
		Category: queryParams.Get("category"),
		SeriesID: queryParams.Get("series"),
		Author:   queryParams.Get("author"),
		Sort:     queryParams.Get("sort"),
		SortDir:  queryParams.Get("dir"),
	}
	if value := queryParams.Get("featured"); value != "" {
		featured := value == "true"
		filter.IsFeatured = &featured
	}
	if value := queryParams.Get("latest"); value != "" {
		latest := value == "true"
		filter.IsLatest = &latest
	}

	articles, total, err := handler.service.ListArticles(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/articles/slug/{slug}.

Description: Resolves a public slug read in a requested language. An exact
(slug, language) record wins; otherwise a record carrying the language as a
dual-language overlay is returned. Served through the Redis read cache.

Request:
  - slug: string
  - lang: string (Query parameter; defaults to en)

Response:
  - 200: Article: Success
  - 404: 404: ErrNotFound: No record in the requested language
*/
func (handler *Handler) getArticleBySlug(writer http.ResponseWriter, request *http.Request) {
	slugParam := requestutil.Param(request, "slug")
	language := Language(request.URL.Query().Get("lang"))

	target, err := handler.service.GetArticleBySlug(request.Context(), slugParam, language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, target)
}

/*
GET /api/v1/articles/{id}.

Description: Retrieves the full article aggregate by UUID, including all
dual-language overlays and translation provenance.

Request:
  - id: string (UUID)

Response:
  - 200: Article: Success
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	target, err := handler.service.GetArticle(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, target)
}

/*
POST /api/v1/articles/{id}/views.

Description: Atomically increments the article's view counter.

Response:
  - 200: counterResponse: The counter value after the increment
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	views, err := handler.service.RecordView(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, counterResponse{Count: views})
}

/*
POST /api/v1/articles/{id}/shares.

Description: Atomically increments the article's share counter.

Response:
  - 200: counterResponse: The counter value after the increment
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) recordShare(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	shares, err := handler.service.RecordShare(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, counterResponse{Count: shares})
}

// # Request Payloads

// contentPayload is the inbound JSON shape for a content block. Word counts
// are derived server-side and not accepted from clients.
type contentPayload struct {
	HTML      string `json:"html"`
	PlainText string `json:"plain_text"`
}

// languageBlockPayload is the inbound JSON shape for a full overlay block.
type languageBlockPayload struct {
	Title         string         `json:"title"`
	Subtitle      string         `json:"subtitle"`
	Excerpt       string         `json:"excerpt"`
	Content       contentPayload `json:"content"`
	FeaturedImage *FeaturedImage `json:"featured_image"`
	Meta          *Meta          `json:"meta"`
	Status        Status         `json:"status"`
}

// createArticleRequest defines the inbound JSON schema for article creation.
type createArticleRequest struct {
	Slug          string        `json:"slug"`
	Language      Language      `json:"language"`
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle"`
	Excerpt       string        `json:"excerpt"`
	Author        string        `json:"author"`
	Content       contentPayload `json:"content"`
	FeaturedImage FeaturedImage `json:"featured_image"`
	Categories    []string      `json:"categories"`
	Series        *SeriesRef    `json:"series"`
	Meta          Meta          `json:"meta"`
	Status        Status        `json:"status"`
	IsFeatured    bool          `json:"is_featured"`
	IsLatest      bool          `json:"is_latest"`

	DualLanguage         map[Language]*languageBlockPayload `json:"dual_language"`
	DualLanguageAuthor   map[Language]string                `json:"dual_language_author"`
	DualLanguageTitle    map[Language]string                `json:"dual_language_title"`
	DualLanguageSubtitle map[Language]string                `json:"dual_language_subtitle"`
}

// toEntity maps the request payload into the domain aggregate.
func (input *createArticleRequest) toEntity() *Article {
	target := &Article{
		Slug:          input.Slug,
		Language:      input.Language,
		Title:         input.Title,
		Subtitle:      input.Subtitle,
		Excerpt:       input.Excerpt,
		Author:        input.Author,
		Content:       Content{HTML: input.Content.HTML, PlainText: input.Content.PlainText},
		FeaturedImage: input.FeaturedImage,
		Categories:    input.Categories,
		Series:        input.Series,
		Meta:          input.Meta,
		Status:        input.Status,
		IsFeatured:    input.IsFeatured,
		IsLatest:      input.IsLatest,

		DualLanguageAuthor:   input.DualLanguageAuthor,
		DualLanguageTitle:    input.DualLanguageTitle,
		DualLanguageSubtitle: input.DualLanguageSubtitle,
	}

	for language, block := range input.DualLanguage {
		if block == nil {
			continue
		}
		if target.DualLanguage == nil {
			target.DualLanguage = make(map[Language]*LanguageContent)
		}
		target.DualLanguage[language] = &LanguageContent{
			Title:         block.Title,
			Subtitle:      block.Subtitle,
			Excerpt:       block.Excerpt,
			Content:       Content{HTML: block.Content.HTML, PlainText: block.Content.PlainText},
			FeaturedImage: block.FeaturedImage,
			Meta:          block.Meta,
			Status:        block.Status,
		}
	}

	return target
}

// counterResponse carries an engagement counter value back to the client.
type counterResponse struct {
	Count int64 `json:"count"`
}

// # Editorial Endpoints

/*
POST /api/v1/articles.

Description: Creates a new primary-language article. Slugs are
auto-generated from the title if not provided; word count and reading time
are always derived server-side.

Request (Body):
  - createArticleRequest: JSON object

Response:
  - 201: Article: Created article object
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 409: 409: ErrConflict: Duplicate (slug, language) pair
  - 413: 413: ErrContentTooLarge: A content block exceeds the size cap
*/
func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input createArticleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target := input.toEntity()
	if err := handler.service.CreateArticle(request.Context(), target); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, target)
}

/*
POST /api/v1/articles/dual.

Description: Creates a new bilingual article from overlay blocks. At least
one of the English or Arabic blocks must be non-empty.

Request (Body):
  - createArticleRequest: JSON object (content carried in dual_language)

Response:
  - 201: Article: Created article object
  - 400: 400: ErrDualLanguageRequired: Neither language block populated
  - 413: 413: ErrContentTooLarge: A content block exceeds the size cap
*/
func (handler *Handler) createDualLanguageArticle(writer http.ResponseWriter, request *http.Request) {
	var input createArticleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target := input.toEntity()
	if err := handler.service.CreateDualLanguageArticle(request.Context(), target); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, target)
}

/*
PATCH /api/v1/articles/{id}.

Description: Applies a partial update. Omitted fields are preserved;
dual-language sub-patches are merged field-by-field into existing blocks.

Request:
  - id: string (UUID)
  - body: Patch (Partial JSON)

Response:
  - 200: Article: Updated article object
  - 404: 404: ErrNotFound: Article not found
  - 413: 413: ErrContentTooLarge: A content block exceeds the size cap
*/
func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target, err := handler.service.UpdateArticle(request.Context(), id, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, target)
}

/*
PATCH /api/v1/articles/{id}/dual.

Description: Applies a partial update that must carry dual-language content.

Request:
  - id: string (UUID)
  - body: Patch (Partial JSON with dual_language content)

Response:
  - 200: Article: Updated article object
  - 400: 400: ErrDualLanguageRequired: Patch carries no dual-language content
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) updateDualLanguageArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target, err := handler.service.UpdateDualLanguageArticle(request.Context(), id, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, target)
}

/*
DELETE /api/v1/articles/{id}.

Description: Permanently removes the article record.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Success
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	if err := handler.service.DeleteArticle(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Dual-Language Endpoints

/*
PUT /api/v1/articles/{id}/languages/{lang}.

Description: Merges a partial content block onto the article's overlay for
one language. Supplied fields replace; omitted fields survive from the
existing block.

Request:
  - id: string (UUID)
  - lang: string (en, ar, id, tr)
  - body: LanguageContentPatch (Partial JSON)

Response:
  - 200: Article: Updated article object
  - 404: 404: ErrNotFound: Article not found
  - 413: 413: ErrContentTooLarge: A content block exceeds the size cap
*/
func (handler *Handler) addSecondaryLanguageContent(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	language := Language(requestutil.Param(request, "lang"))

	var patch LanguageContentPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target, err := handler.service.AddSecondaryLanguageContent(request.Context(), id, language, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, target)
}

/*
PATCH /api/v1/articles/{id}/language-fields.

Description: Merges narrow per-field overlay values (author, title,
subtitle) keyed by language. Additive-only: empty inputs never erase
existing overlay values.

Request:
  - id: string (UUID)
  - body: OverlayFieldsPatch (Per-language values)

Response:
  - 200: Article: Updated article object
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) addSecondaryLanguageFields(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")

	var patch OverlayFieldsPatch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target, err := handler.service.AddSecondaryLanguageFields(request.Context(), id, &patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, target)
}

// # Translation Endpoints

/*
POST /api/v1/articles/{id}/translate/{lang}.

Description: Machine-translates the article's HTML body and upserts the
draft sibling record keyed by (slug, lang). Provider failures degrade to
copying the source body unchanged.

Request:
  - id: string (UUID)
  - lang: string (en, ar, id, tr)

Response:
  - 200: Article: The persisted sibling (or the source on the no-op path)
  - 404: 404: ErrNotFound: Article not found
*/
func (handler *Handler) translateArticle(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	language := Language(requestutil.Param(request, "lang"))

	sibling, err := handler.service.TranslateArticle(request.Context(), id, language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sibling)
}

/*
GET /api/v1/articles/{id}/translate/{lang}/preview.

Description: Returns an ephemeral machine translation of the headline
fields and body for editorial review. Persists nothing; provider failures
surface as 502 TRANSLATION_PROVIDER_ERROR.

Request:
  - id: string (UUID)
  - lang: string (en, ar, id, tr)

Response:
  - 200: TranslationPreview: The translated fields
  - 404: 404: ErrNotFound: Article not found
  - 502: 502: ErrTranslationProvider: Upstream provider failure
*/
func (handler *Handler) previewTranslation(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "id")
	language := Language(requestutil.Param(request, "lang"))

	preview, err := handler.service.PreviewTranslation(request.Context(), id, language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, preview)
}

// # Helpers

/*
parseStatusSlice converts query values into a slice of [Status], dropping
unknown values.

Parameters:
  - values: A slice of raw query strings.

Returns:
  - A slice of valid Status values.
*/
func parseStatusSlice(values []string) []Status {
	var result []Status
	for _, value := range values {
		status := Status(value)
		if status.IsValid() {
			result = append(result, status)
		}
	}
	return result
}
