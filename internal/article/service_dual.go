// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"context"
	"log/slog"

	"github.com/maqalahq/maqala/internal/platform/apperr"
)

// # Dual-Language Operations

/*
CreateDualLanguageArticle persists a new bilingual article.

Description: The caller supplies the overlay blocks keyed by language; at
least one of the English or Arabic blocks must be non-empty or the create is
rejected with DUAL_LANGUAGE_REQUIRED. When the primary fields are left empty
the English block (falling back to Arabic) is adopted as the record's primary
content, so a bilingual record is always readable through the primary shape
as well.

Parameters:
  - context: context.Context
  - target: *Article (Primary fields optional; overlay blocks carry the content)

Returns:
  - error: DUAL_LANGUAGE_REQUIRED, validation, size cap, or persistence errors
*/
func (service *Service) CreateDualLanguageArticle(context context.Context, target *Article) error {
	english := target.LanguageBlock(LanguageEnglish)
	arabic := target.LanguageBlock(LanguageArabic)

	if english.IsEmpty() && arabic.IsEmpty() {
		return apperr.DualLanguageRequired()
	}

	// Adopt a language block as primary content when none was supplied
	if target.Title == "" && target.Content.HTML == "" {
		source, language := english, LanguageEnglish
		if source.IsEmpty() {
			source, language = arabic, LanguageArabic
		}
		adoptBlockAsPrimary(target, source)
		if target.Language == "" {
			target.Language = language
		}
	}

	if err := service.CreateArticle(context, target); err != nil {
		return err
	}

	service.logger.Info("dual_language_article_created",
		slog.String("article_id", target.ID),
		slog.String("slug", target.Slug),
		slog.Bool("has_english", !english.IsEmpty()),
		slog.Bool("has_arabic", !arabic.IsEmpty()),
	)

	return nil
}

/*
UpdateDualLanguageArticle applies a partial update to a bilingual article.

Description: Shares the merge and persistence path with [Service.UpdateArticle];
the additional constraint is that the patch must actually carry dual-language
content (a full block or a narrow overlay value), otherwise the caller used
the wrong operation and gets DUAL_LANGUAGE_REQUIRED.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - patch: *Patch (Partial update carrying overlay content)

Returns:
  - *Article: The updated record
  - error: DUAL_LANGUAGE_REQUIRED, NOT_FOUND, validation, or persistence errors
*/
func (service *Service) UpdateDualLanguageArticle(context context.Context, id string, patch *Patch) (*Article, error) {
	if patch == nil || !carriesDualContent(patch) {
		return nil, apperr.DualLanguageRequired()
	}
	return service.UpdateArticle(context, id, patch)
}

/*
AddSecondaryLanguageContent merges a partial content block onto an article's
overlay for one language.

Description: The merge is shallow per-field: supplied fields replace, omitted
fields survive from the existing block, and sibling-language blocks are never
touched. The merged block defaults to draft status. The whole record then
passes back through the content guard and the consistency pass before the
write.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - language: Language (Overlay language the block belongs to)
  - patch: *LanguageContentPatch (Partial block supplied by the editor)

Returns:
  - *Article: The updated record
  - error: NOT_FOUND, validation, size cap, or persistence errors
*/
func (service *Service) AddSecondaryLanguageContent(context context.Context, id string, language Language, patch *LanguageContentPatch) (*Article, error) {
	if !language.IsValid() {
		return nil, apperr.ValidationError("Unsupported language")
	}

	target, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	MergeLanguageContent(target, language, patch)

	if err := GuardContent(target); err != nil {
		return nil, err
	}

	Normalize(target)

	if err := service.repo.Update(context, target); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, target.Slug)

	service.logger.Info("secondary_language_content_added",
		slog.String("article_id", target.ID),
		slog.String("language", string(language)),
	)

	return target, nil
}

/*
AddSecondaryLanguageFields merges narrow per-field overlay values onto an
article.

Description: Field overlays are additive-only: a key is written only when the
supplied value is non-empty, so existing overlay values in other languages —
or in the same language — are never erased by an empty input. Empty primary
author/title/subtitle are then default-filled from the English overlays.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - patch: *OverlayFieldsPatch (Per-language author/title/subtitle values)

Returns:
  - *Article: The updated record
  - error: NOT_FOUND, size cap, or persistence errors
*/
func (service *Service) AddSecondaryLanguageFields(context context.Context, id string, patch *OverlayFieldsPatch) (*Article, error) {
	target, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	MergeOverlayFields(target, patch)
	fillPrimaryFromEnglishOverlay(target)

	// Narrow overlays carry no content blocks, but every persist path runs
	// the guard before the write.
	if err := GuardContent(target); err != nil {
		return nil, err
	}

	Normalize(target)

	if err := service.repo.Update(context, target); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, target.Slug)

	service.logger.Info("secondary_language_fields_added", slog.String("article_id", target.ID))

	return target, nil
}

// adoptBlockAsPrimary copies a language block into the record's primary
// content shape.
func adoptBlockAsPrimary(target *Article, source *LanguageContent) {
	target.Title = source.Title
	target.Subtitle = source.Subtitle
	target.Excerpt = source.Excerpt
	target.Content = source.Content
	if source.FeaturedImage != nil {
		target.FeaturedImage = *source.FeaturedImage
	}
	if source.Meta != nil {
		target.Meta = *source.Meta
	}
	if source.Status != "" {
		target.Status = source.Status
	}
}

// carriesDualContent reports whether the patch supplies any overlay content.
func carriesDualContent(patch *Patch) bool {
	for _, block := range patch.DualLanguage {
		if !block.IsEmpty() {
			return true
		}
	}
	return len(patch.DualLanguageAuthor) > 0 ||
		len(patch.DualLanguageTitle) > 0 ||
		len(patch.DualLanguageSubtitle) > 0
}
