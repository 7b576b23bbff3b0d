// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maqalahq/maqala/internal/platform/apperr"
	"github.com/maqalahq/maqala/pkg/uuid"
)

// # Translation Orchestrator
//
// Two independent flows with opposite failure semantics:
//
//   - TranslateArticle persists a sibling record. Provider failures are
//     caught and degrade to copying the source HTML unchanged — content
//     availability beats translation fidelity.
//   - PreviewTranslation persists nothing. Provider failures propagate as
//     TRANSLATION_PROVIDER_ERROR so the editor sees that the preview is
//     broken rather than silently reviewing untranslated text.

/*
TranslateArticle produces and persists a sibling record in the target
language.

Description: The sibling shares the source's slug with the target language as
its primary language, so the pair forms one bilingual publication. All
non-language-specific fields are copied from the source; only the HTML body
is machine-translated. The plain text and word count are copied unchanged
from the source rather than recomputed from the translated body — the
translated sibling keeps the source's reading metrics. The sibling is always
created in draft: a machine translation is never auto-published. The write is
a single atomic upsert keyed on (slug, language), so concurrent translation
requests for the same pair converge on one record.

When the record's own language already equals the target the source is
returned unchanged and no provider call is made.

Parameters:
  - context: context.Context
  - id: string (UUID of the source record)
  - targetLanguage: Language

Returns:
  - *Article: The persisted sibling (or the source itself on the no-op path)
  - error: NOT_FOUND, size cap, or persistence errors; never a provider error
*/
func (service *Service) TranslateArticle(context context.Context, id string, targetLanguage Language) (*Article, error) {
	if !targetLanguage.IsValid() {
		return nil, apperr.ValidationError("Unsupported language")
	}

	source, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// Same-language translation is a no-op, not an error
	if source.Language == targetLanguage {
		return source, nil
	}

	translatedHTML, err := service.translator.TranslateHTML(context, source.Content.HTML, string(targetLanguage))
	if err != nil {
		// Persisted path: degrade to the untranslated body instead of
		// failing the whole flow
		service.logger.Warn("translation_degraded_to_source",
			slog.String("article_id", source.ID),
			slog.String("target_language", string(targetLanguage)),
			slog.Any("error", err),
		)
		translatedHTML = source.Content.HTML
	}

	sibling := service.buildSibling(source, targetLanguage, translatedHTML)

	if err := GuardContent(sibling); err != nil {
		return nil, err
	}

	if err := service.repo.Upsert(context, sibling); err != nil {
		return nil, err
	}

	// Record provenance on the source so staleness is trackable
	if source.Translations == nil {
		source.Translations = make(map[Language]TranslationInfo)
	}
	source.Translations[targetLanguage] = TranslationInfo{
		Status:           StatusDraft,
		LastTranslatedAt: time.Now().UTC(),
		Provider:         service.translator.Name(),
	}
	if err := service.repo.Update(context, source); err != nil {
		return nil, err
	}

	service.cache.Invalidate(context, source.Slug)

	service.logger.Info("article_translated",
		slog.String("source_id", source.ID),
		slog.String("sibling_id", sibling.ID),
		slog.String("slug", sibling.Slug),
		slog.String("target_language", string(targetLanguage)),
		slog.String("provider", service.translator.Name()),
	)

	return sibling, nil
}

/*
PreviewTranslation returns an ephemeral machine translation of an article's
headline fields and body.

Description: English is the canonical source language and is never
machine-translated into itself: an English preview returns the primary
fields verbatim without touching the provider. For any other target the
title, subtitle, excerpt, and HTML body are translated concurrently.
Nothing is persisted — the preview exists so an editor can inspect a
translation before committing it through [Service.TranslateArticle].

Parameters:
  - context: context.Context
  - id: string (UUID of the source record)
  - targetLanguage: Language

Returns:
  - *TranslationPreview: The ephemeral translated fields
  - error: NOT_FOUND, or TRANSLATION_PROVIDER_ERROR when the provider fails
*/
func (service *Service) PreviewTranslation(context context.Context, id string, targetLanguage Language) (*TranslationPreview, error) {
	if !targetLanguage.IsValid() {
		return nil, apperr.ValidationError("Unsupported language")
	}

	source, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	// English previews are the source fields verbatim
	if targetLanguage == LanguageEnglish {
		return &TranslationPreview{
			Language: LanguageEnglish,
			Title:    source.Title,
			Subtitle: source.Subtitle,
			Excerpt:  source.Excerpt,
			HTML:     source.Content.HTML,
		}, nil
	}

	preview := &TranslationPreview{Language: targetLanguage}

	group, groupContext := errgroup.WithContext(context)
	language := string(targetLanguage)

	group.Go(func() error {
		translated, err := service.translator.TranslateText(groupContext, source.Title, language)
		preview.Title = translated
		return err
	})
	if source.Subtitle != "" {
		group.Go(func() error {
			translated, err := service.translator.TranslateText(groupContext, source.Subtitle, language)
			preview.Subtitle = translated
			return err
		})
	}
	if source.Excerpt != "" {
		group.Go(func() error {
			translated, err := service.translator.TranslateText(groupContext, source.Excerpt, language)
			preview.Excerpt = translated
			return err
		})
	}
	group.Go(func() error {
		translated, err := service.translator.TranslateHTML(groupContext, source.Content.HTML, language)
		preview.HTML = translated
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, apperr.TranslationProvider(err)
	}

	return preview, nil
}

// buildSibling assembles the target-language sibling record from the source.
// Plain text, word count, and reading time are copied unchanged; only the
// HTML body differs, and status is forced to draft.
func (service *Service) buildSibling(source *Article, targetLanguage Language, translatedHTML string) *Article {
	now := time.Now().UTC()
	return &Article{
		ID:       uuid.New(),
		Slug:     source.Slug,
		Language: targetLanguage,

		Title:    source.Title,
		Subtitle: source.Subtitle,
		Excerpt:  source.Excerpt,
		Author:   source.Author,
		Content: Content{
			HTML:      translatedHTML,
			PlainText: source.Content.PlainText,
			WordCount: source.Content.WordCount,
		},
		FeaturedImage: source.FeaturedImage,
		Categories:    source.Categories,
		Series:        source.Series,
		Meta:          source.Meta,

		Status:     StatusDraft,
		IsFeatured: source.IsFeatured,
		IsLatest:   source.IsLatest,

		Views:       source.Views,
		Shares:      source.Shares,
		ReadingTime: source.ReadingTime,

		CreatedAt: now,
		UpdatedAt: now,
	}
}
