// Copyright (c) 2026 Maqala. All rights reserved.

package article

// # Dual-Language Merge Engine
//
// Two overlay mechanisms coexist on the article record with deliberately
// different merge semantics:
//
//   - Full content blocks (DualLanguage) merge with shallow per-field
//     overwrite: a supplied field replaces, an omitted field is preserved.
//   - Narrow field maps (DualLanguageAuthor/Title/Subtitle) merge
//     additive-only: a key is written only when the supplied value is
//     non-empty, so empty input can never erase an existing overlay value.
//
// The asymmetry is intentional and load-bearing. Do not unify the two.

/*
Description:

	Merges a partial secondary-language content block onto an article's
	overlay for one language. The overlay map is created on first use.
	Supplied fields replace the existing block's fields; omitted (nil)
	fields are preserved, so sibling-language data and unrelated fields of
	the same block are never clobbered. A merged block with no status
	defaults to draft.

Parameters:

	target: The article to mutate; overlays are updated in place.
	language: The overlay language the block belongs to.
	patch: The partial content block supplied by the editor.
*/
func MergeLanguageContent(target *Article, language Language, patch *LanguageContentPatch) {
	if target.DualLanguage == nil {
		target.DualLanguage = make(map[Language]*LanguageContent)
	}

	block := target.DualLanguage[language]
	if block == nil {
		block = &LanguageContent{}
		target.DualLanguage[language] = block
	}

	if patch == nil {
		patch = &LanguageContentPatch{}
	}

	if patch.Title != nil {
		block.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		block.Subtitle = *patch.Subtitle
	}
	if patch.Excerpt != nil {
		block.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		if patch.Content.HTML != nil {
			block.Content.HTML = *patch.Content.HTML
		}
		if patch.Content.PlainText != nil {
			block.Content.PlainText = *patch.Content.PlainText
		}
	}
	if patch.FeaturedImage != nil {
		image := *patch.FeaturedImage
		block.FeaturedImage = &image
	}
	if patch.Meta != nil {
		meta := *patch.Meta
		block.Meta = &meta
	}
	if patch.Status != nil {
		block.Status = *patch.Status
	}

	if block.Status == "" {
		block.Status = StatusDraft
	}
}

/*
Description:

	Merges narrow per-field overlay values (author, title, subtitle) onto an
	article. Each overlay map is created on first use. Only non-empty
	supplied values are written; empty or absent inputs leave the existing
	entry untouched. This is the critical asymmetry versus
	[MergeLanguageContent]: field overlays are additive-only.

Parameters:

	target: The article to mutate; overlay maps are updated in place.
	patch: The per-language values supplied by the editor.
*/
func MergeOverlayFields(target *Article, patch *OverlayFieldsPatch) {
	if patch == nil {
		return
	}
	target.DualLanguageAuthor = mergeAdditive(target.DualLanguageAuthor, patch.Author)
	target.DualLanguageTitle = mergeAdditive(target.DualLanguageTitle, patch.Title)
	target.DualLanguageSubtitle = mergeAdditive(target.DualLanguageSubtitle, patch.Subtitle)
}

// mergeAdditive writes non-empty supplied values into existing, allocating
// the map on first write. Empty supplied values are skipped.
func mergeAdditive(existing, supplied map[Language]string) map[Language]string {
	for language, value := range supplied {
		if value == "" {
			continue
		}
		if existing == nil {
			existing = make(map[Language]string)
		}
		existing[language] = value
	}
	return existing
}

/*
Description:

	Applies a partial primary-record update onto an existing article.
	Supplied (non-nil) fields replace; omitted fields are preserved. Overlay
	sub-patches are delegated to the merge engine so overlay blocks are
	merged field-by-field and never replaced wholesale.

Parameters:

	target: The loaded article to mutate.
	patch: The partial update supplied by the editor.
*/
func ApplyPatch(target *Article, patch *Patch) {
	if patch == nil {
		return
	}

	if patch.Title != nil {
		target.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		target.Subtitle = *patch.Subtitle
	}
	if patch.Excerpt != nil {
		target.Excerpt = *patch.Excerpt
	}
	if patch.Author != nil {
		target.Author = *patch.Author
	}
	if patch.Content != nil {
		if patch.Content.HTML != nil {
			target.Content.HTML = *patch.Content.HTML
		}
		if patch.Content.PlainText != nil {
			target.Content.PlainText = *patch.Content.PlainText
		}
	}
	if patch.FeaturedImage != nil {
		target.FeaturedImage = *patch.FeaturedImage
	}
	if patch.Categories != nil {
		target.Categories = *patch.Categories
	}
	if patch.Series != nil {
		series := *patch.Series
		target.Series = &series
	}
	if patch.Meta != nil {
		target.Meta = *patch.Meta
	}
	if patch.Status != nil {
		target.Status = *patch.Status
	}
	if patch.IsFeatured != nil {
		target.IsFeatured = *patch.IsFeatured
	}
	if patch.IsLatest != nil {
		target.IsLatest = *patch.IsLatest
	}

	for language, blockPatch := range patch.DualLanguage {
		MergeLanguageContent(target, language, blockPatch)
	}
	MergeOverlayFields(target, patch.OverlayFields())
}
