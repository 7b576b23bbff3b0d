// Copyright (c) 2026 Maqala. All rights reserved.

package article_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maqalahq/maqala/internal/article"
)

/*
TestNormalize_DerivedFields verifies that word count and reading time are
recomputed from plain text on every save, discarding author-supplied values.
*/
func TestNormalize_DerivedFields(t *testing.T) {
	target := &article.Article{
		Title: "Derived Fields",
		Content: article.Content{
			HTML:      "<p>body</p>",
			PlainText: strings.Repeat("word ", 450),
			WordCount: 9999, // author-supplied lie
		},
		ReadingTime: 42,
	}

	article.Normalize(target)

	assert.Equal(t, 450, target.Content.WordCount)
	assert.Equal(t, 3, target.ReadingTime) // ceil(450/200)
}

/*
TestNormalize_EmptyContentFloor verifies the one-minute floor for an empty
article.
*/
func TestNormalize_EmptyContentFloor(t *testing.T) {
	target := &article.Article{Title: "Empty Body"}

	article.Normalize(target)

	assert.Equal(t, 0, target.Content.WordCount)
	assert.Equal(t, 1, target.ReadingTime)
}

/*
TestNormalize_OverlayBlocks verifies each overlay block gets its own word
count and reading time from its own plain text, plus the draft default.
*/
func TestNormalize_OverlayBlocks(t *testing.T) {
	target := &article.Article{
		Title: "Overlay Metrics",
		DualLanguage: map[article.Language]*article.LanguageContent{
			article.LanguageArabic: {
				Title:   "مقاييس",
				Content: article.Content{PlainText: strings.Repeat("كلمة ", 250)},
			},
		},
	}

	article.Normalize(target)

	block := target.DualLanguage[article.LanguageArabic]
	require.NotNil(t, block)
	assert.Equal(t, 250, block.Content.WordCount)
	assert.Equal(t, 2, block.ReadTime)
	assert.Equal(t, article.StatusDraft, block.Status)
}

/*
TestNormalize_StatusAndSlugDefaults verifies the draft default and slug
derivation from the title.
*/
func TestNormalize_StatusAndSlugDefaults(t *testing.T) {
	target := &article.Article{Title: "Breaking News Today"}

	article.Normalize(target)

	assert.Equal(t, article.StatusDraft, target.Status)
	assert.Equal(t, "breaking-news-today", target.Slug)
	assert.False(t, target.CreatedAt.IsZero())
	assert.False(t, target.UpdatedAt.IsZero())
}

/*
TestNormalize_DefaultFill verifies the one-directional fill from the English
narrow overlays: empty primary fields are populated, non-empty primary
fields are never overwritten.
*/
func TestNormalize_DefaultFill(t *testing.T) {
	t.Run("fills_empty_primary", func(t *testing.T) {
		target := &article.Article{
			Title: "Default Fill",
			DualLanguageAuthor: map[article.Language]string{
				article.LanguageEnglish: "X",
			},
		}

		article.Normalize(target)

		assert.Equal(t, "X", target.Author)
	})

	t.Run("never_overwrites_primary", func(t *testing.T) {
		target := &article.Article{
			Title:  "Default Fill",
			Author: "Y",
			DualLanguageAuthor: map[article.Language]string{
				article.LanguageEnglish: "X",
			},
		}

		article.Normalize(target)

		assert.Equal(t, "Y", target.Author)
	})

	t.Run("non_english_overlay_never_fills", func(t *testing.T) {
		target := &article.Article{
			Title: "Default Fill",
			DualLanguageAuthor: map[article.Language]string{
				article.LanguageArabic: "كاتب",
			},
		}

		article.Normalize(target)

		assert.Empty(t, target.Author)
	})
}

/*
TestNormalize_Idempotent verifies that normalising twice changes nothing
observable beyond the update timestamp.
*/
func TestNormalize_Idempotent(t *testing.T) {
	target := &article.Article{
		Title:   "Idempotent Pass",
		Content: article.Content{PlainText: "three simple words"},
	}

	article.Normalize(target)
	firstWordCount := target.Content.WordCount
	firstReadingTime := target.ReadingTime
	firstSlug := target.Slug

	article.Normalize(target)

	assert.Equal(t, firstWordCount, target.Content.WordCount)
	assert.Equal(t, firstReadingTime, target.ReadingTime)
	assert.Equal(t, firstSlug, target.Slug)
}
