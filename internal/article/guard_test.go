// Copyright (c) 2026 Maqala. All rights reserved.

package article_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maqalahq/maqala/internal/article"
	"github.com/maqalahq/maqala/internal/platform/apperr"
)

// baseArticle returns a minimal valid article for guard checks.
func baseArticle() *article.Article {
	return &article.Article{
		ID:       "0192a1b2-0000-7000-8000-000000000001",
		Slug:     "guard-check",
		Language: article.LanguageEnglish,
		Title:    "Guard Check",
	}
}

/*
TestGuardContent_Boundary verifies the exact size boundaries: a body at the
cap passes, one character more fails.
*/
func TestGuardContent_Boundary(t *testing.T) {
	t.Run("html_at_cap_passes", func(t *testing.T) {
		target := baseArticle()
		target.Content.HTML = strings.Repeat("a", article.MaxHTMLChars)

		assert.NoError(t, article.GuardContent(target))
	})

	t.Run("html_over_cap_fails", func(t *testing.T) {
		target := baseArticle()
		target.Content.HTML = strings.Repeat("a", article.MaxHTMLChars+1)

		err := article.GuardContent(target)
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONTENT_TOO_LARGE", ae.Code)
		assert.Equal(t, "content.html", ae.Details[0].Field)
	})

	t.Run("plain_text_at_cap_passes", func(t *testing.T) {
		target := baseArticle()
		target.Content.PlainText = strings.Repeat("b", article.MaxPlainTextChars)

		assert.NoError(t, article.GuardContent(target))
	})

	t.Run("plain_text_over_cap_fails", func(t *testing.T) {
		target := baseArticle()
		target.Content.PlainText = strings.Repeat("b", article.MaxPlainTextChars+1)

		err := article.GuardContent(target)
		require.Error(t, err)
		assert.Equal(t, "content.plain_text", apperr.As(err).Details[0].Field)
	})
}

/*
TestGuardContent_OverlayBlocks verifies that the limits apply independently
to each dual-language content block, and that one oversized block rejects
the whole article.
*/
func TestGuardContent_OverlayBlocks(t *testing.T) {
	t.Run("oversized_arabic_overlay_fails", func(t *testing.T) {
		target := baseArticle()
		target.Content.HTML = "<p>fine</p>"
		target.DualLanguage = map[article.Language]*article.LanguageContent{
			article.LanguageArabic: {
				Title:   "عنوان",
				Content: article.Content{HTML: strings.Repeat("x", article.MaxHTMLChars+1)},
			},
		}

		err := article.GuardContent(target)
		require.Error(t, err)
		assert.Equal(t, "dual_language.ar.content.html", apperr.As(err).Details[0].Field)
	})

	t.Run("small_html_buys_no_plain_text_headroom", func(t *testing.T) {
		target := baseArticle()
		target.DualLanguage = map[article.Language]*article.LanguageContent{
			article.LanguageEnglish: {
				Content: article.Content{
					HTML:      "<p>tiny</p>",
					PlainText: strings.Repeat("y", article.MaxPlainTextChars+1),
				},
			},
		}

		err := article.GuardContent(target)
		require.Error(t, err)
		assert.Equal(t, "dual_language.en.content.plain_text", apperr.As(err).Details[0].Field)
	})

	t.Run("all_blocks_within_limits_pass", func(t *testing.T) {
		target := baseArticle()
		target.Content.HTML = "<p>primary</p>"
		target.DualLanguage = map[article.Language]*article.LanguageContent{
			article.LanguageEnglish: {Content: article.Content{HTML: "<p>en</p>"}},
			article.LanguageArabic:  {Content: article.Content{HTML: "<p>ar</p>"}},
		}

		assert.NoError(t, article.GuardContent(target))
	})
}

/*
TestGuardContent_MultiByte verifies the caps count characters, not bytes, so
Arabic content gets the same budget as ASCII.
*/
func TestGuardContent_MultiByte(t *testing.T) {
	target := baseArticle()

	// Each rune is two bytes in UTF-8; the rune count is what matters.
	target.Content.PlainText = strings.Repeat("م", article.MaxPlainTextChars)
	assert.NoError(t, article.GuardContent(target))

	target.Content.PlainText += "م"
	assert.Error(t, article.GuardContent(target))
}
