// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"time"

	"github.com/maqalahq/maqala/pkg/slug"
)

/*
Description:

	Recomputes every derived field on an article so stored records never
	drift from their source content. Runs on every save path, after merging
	and after the content guard has passed:

	  - Word counts are recounted from plain text for the primary block and
	    every overlay block. Recounting is idempotent, so it runs on every
	    save rather than tracking which block changed.
	  - Reading times are re-estimated; overlay blocks get their own
	    estimate from their own plain text.
	  - Empty primary author/title/subtitle are default-filled from the
	    English narrow overlays (one-directional, never overwrites).
	  - An unset status defaults to draft, for the record and for each
	    overlay block.
	  - The slug is normalised; an empty slug is derived from the title.
	  - UpdatedAt is stamped.

	Author-supplied values for any derived field are discarded.

Parameters:

	target: The article about to be persisted; mutated in place.
*/
func Normalize(target *Article) {
	target.Slug = slug.From(target.Slug)
	if target.Slug == "" {
		target.Slug = slug.From(target.Title)
	}

	fillPrimaryFromEnglishOverlay(target)

	if target.Status == "" {
		target.Status = StatusDraft
	}

	target.Content.WordCount = WordCount(target.Content.PlainText)
	target.ReadingTime = ReadingMinutes(target.Content.WordCount)

	for _, block := range target.DualLanguage {
		if block == nil {
			continue
		}
		block.Content.WordCount = WordCount(block.Content.PlainText)
		block.ReadTime = ReadingMinutes(block.Content.WordCount)
		if block.Status == "" {
			block.Status = StatusDraft
		}
	}

	target.UpdatedAt = time.Now().UTC()
	if target.CreatedAt.IsZero() {
		target.CreatedAt = target.UpdatedAt
	}
}

// fillPrimaryFromEnglishOverlay copies the English narrow overlay values
// into empty primary fields. The fill is one-directional: a non-empty
// primary field is never overwritten, and nothing flows back into the
// overlay maps.
func fillPrimaryFromEnglishOverlay(target *Article) {
	if target.Author == "" {
		if value, ok := target.DualLanguageAuthor[LanguageEnglish]; ok && value != "" {
			target.Author = value
		}
	}
	if target.Title == "" {
		if value, ok := target.DualLanguageTitle[LanguageEnglish]; ok && value != "" {
			target.Title = value
		}
	}
	if target.Subtitle == "" {
		if value, ok := target.DualLanguageSubtitle[LanguageEnglish]; ok && value != "" {
			target.Subtitle = value
		}
	}
}
