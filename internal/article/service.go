// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"context"
	"log/slog"

	"github.com/maqalahq/maqala/internal/platform/apperr"
	"github.com/maqalahq/maqala/internal/platform/validate"
	"github.com/maqalahq/maqala/internal/translate"
	"github.com/maqalahq/maqala/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for the article domain: content
// validation, derived-field consistency, dual-language merging, and the
// machine translation flows.
type Service struct {
	repo       Repository
	cache      *Cache
	translator translate.Translator
	logger     *slog.Logger
}

// NewService constructs a new [Service].
//
// The translator is injected rather than read from package state so tests
// can substitute a fake collaborator; pass [translate.Passthrough] when no
// provider is configured.
func NewService(repo Repository, cache *Cache, translator translate.Translator, logger *slog.Logger) *Service {
	if translator == nil {
		translator = translate.Passthrough{}
	}
	return &Service{
		repo:       repo,
		cache:      cache,
		translator: translator,
		logger:     logger,
	}
}

// # Article Lookups

/*
ListArticles retrieves a paginated and filtered collection of articles.

Parameters:
  - context: context.Context
  - filter: Filter (Language, status, category, series, author, flags, sort)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Article: Slice of matching article records
  - int: Total count of records matching the filter (for pagination metadata)
  - error: System or repository level errors
*/
func (service *Service) ListArticles(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	if filter.Language != "" && !filter.Language.IsValid() {
		return nil, 0, apperr.ValidationError("Unsupported language")
	}
	return service.repo.List(context, filter, limit, offset)
}

/*
GetArticle fetches a single article by its UUID.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *Article: The hydrated domain entity
  - error: NOT_FOUND if no match is found
*/
func (service *Service) GetArticle(context context.Context, id string) (*Article, error) {
	return service.repo.FindByID(context, id)
}

/*
GetArticleBySlug resolves a public slug read with dual-language fallback.

Description: Readers ask for a slug in a language. The exact (slug, language)
record wins; when no record has that language as its primary, a record
carrying the language as a dual-language overlay satisfies the read instead.
Results are served through the Redis read-through cache; cache failures
degrade silently to a database read.

Parameters:
  - context: context.Context
  - slug: string
  - language: Language (defaults to English when empty)

Returns:
  - *Article: The hydrated domain entity
  - error: NOT_FOUND when neither a primary nor an overlay match exists
*/
func (service *Service) GetArticleBySlug(context context.Context, slug string, language Language) (*Article, error) {
	if language == "" {
		language = LanguageEnglish
	}
	if !language.IsValid() {
		return nil, apperr.ValidationError("Unsupported language")
	}

	// Cache lookup
	if cached := service.cache.Get(context, slug, language); cached != nil {
		return cached, nil
	}

	// Exact (slug, language) match wins
	target, err := service.repo.FindBySlugLanguage(context, slug, language)
	if err != nil {
		if !apperr.IsCode(err, "NOT_FOUND") {
			return nil, err
		}

		// Dual-language fallback: a record carrying the language as an overlay
		target, err = service.repo.FindBySlugWithOverlay(context, slug, language)
		if err != nil {
			return nil, err
		}
	}

	service.cache.Set(context, slug, language, target)
	return target, nil
}

// # Article Management

/*
CreateArticle persists a new primary-language article.

Description: Generates a UUIDv7 identity, validates the editorial fields,
enforces the content size caps before anything touches storage, then
normalises derived fields (word count, reading time, slug, status default)
and persists.

Parameters:
  - context: context.Context
  - target: *Article (The entity to be persisted)

Returns:
  - error: Validation, size cap, or persistence errors
*/
func (service *Service) CreateArticle(context context.Context, target *Article) error {

	// Identity generation
	if target.ID == "" {
		target.ID = uuid.New()
	}
	if target.Language == "" {
		target.Language = LanguageEnglish
	}

	// English narrow overlays may stand in for empty primary fields
	fillPrimaryFromEnglishOverlay(target)

	if err := service.validateArticle(target); err != nil {
		return err
	}

	// Size caps are checked before any write; one oversized block rejects
	// the whole article
	if err := GuardContent(target); err != nil {
		return err
	}

	Normalize(target)

	if err := service.repo.Create(context, target); err != nil {
		return err
	}

	service.cache.Invalidate(context, target.Slug)

	service.logger.Info("article_created",
		slog.String("article_id", target.ID),
		slog.String("slug", target.Slug),
		slog.String("language", string(target.Language)),
	)

	return nil
}

/*
UpdateArticle applies a partial update to an existing article.

Description: Loads the current record, merges the patch (overlay sub-patches
go through the merge engine so existing blocks are never clobbered), re-runs
the content guard and the consistency pass, then persists.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - patch: *Patch (Partial update; nil fields are preserved)

Returns:
  - error: NOT_FOUND, validation, size cap, or persistence errors
*/
func (service *Service) UpdateArticle(context context.Context, id string, patch *Patch) (*Article, error) {
	target, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	priorSlug := target.Slug

	ApplyPatch(target, patch)
	fillPrimaryFromEnglishOverlay(target)

	if err := service.validateArticle(target); err != nil {
		return nil, err
	}
	if err := GuardContent(target); err != nil {
		return nil, err
	}

	Normalize(target)

	if err := service.repo.Update(context, target); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, priorSlug)
	if target.Slug != priorSlug {
		service.cache.Invalidate(context, target.Slug)
	}

	service.logger.Info("article_updated", slog.String("article_id", target.ID))

	return target, nil
}

/*
DeleteArticle removes an article permanently.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: NOT_FOUND or persistence errors
*/
func (service *Service) DeleteArticle(context context.Context, id string) error {
	target, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.cache.Invalidate(context, target.Slug)

	service.logger.Warn("article_deleted",
		slog.String("article_id", id),
		slog.String("slug", target.Slug),
	)

	return nil
}

// # Engagement Counters

/*
RecordView atomically increments an article's view counter.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - int64: The counter value after the increment
  - error: NOT_FOUND or persistence errors
*/
func (service *Service) RecordView(context context.Context, id string) (int64, error) {
	return service.repo.IncrementViews(context, id)
}

/*
RecordShare atomically increments an article's share counter.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - int64: The counter value after the increment
  - error: NOT_FOUND or persistence errors
*/
func (service *Service) RecordShare(context context.Context, id string) (int64, error) {
	return service.repo.IncrementShares(context, id)
}

// # Shared Validation

// validateArticle enforces the editorial field rules shared by the create
// and update paths. Derived fields are not validated here; they are
// recomputed unconditionally by [Normalize].
func (service *Service) validateArticle(target *Article) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, target.Title).MaxLen(FieldTitle, target.Title, 500)
	validator.Required(FieldAuthor, target.Author).MaxLen(FieldAuthor, target.Author, 200)

	validator.OneOf(FieldLanguage, string(target.Language),
		string(LanguageEnglish),
		string(LanguageArabic),
		string(LanguageIndonesian),
		string(LanguageTurkish),
	)

	if target.Status != "" {
		validator.OneOf(FieldStatus, string(target.Status),
			string(StatusDraft),
			string(StatusPublished),
			string(StatusArchived),
		)
	}

	// Slug format is not validated here: [Normalize] canonicalises whatever
	// the editor supplied through the slug generator.

	// The hero image is mandatory for every article
	validator.Required(FieldFeaturedImage, target.FeaturedImage.URL)
	if target.FeaturedImage.URL != "" {
		validator.URL(FieldFeaturedImage, target.FeaturedImage.URL)
	}

	if target.Series != nil {
		validator.Required(FieldSeries, target.Series.ID)
		validator.Custom(FieldSeries, target.Series.Order < 0, "Must not be negative")
	}

	return validator.Err()
}
