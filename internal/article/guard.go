// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"unicode/utf8"

	"github.com/maqalahq/maqala/internal/platform/apperr"
)

// # Content Size Limits
//
// Both limits are measured in characters (runes), not bytes, so multi-byte
// scripts get the same budget as ASCII.
const (
	// MaxHTMLChars caps a single content block's HTML body.
	MaxHTMLChars = 10_000_000

	// MaxPlainTextChars caps a single content block's plain-text rendering.
	MaxPlainTextChars = 5_000_000
)

// namedContent pairs a content block with the field path reported when it
// breaks a limit.
type namedContent struct {
	field   string
	content *Content
}

/*
Description:

	Validates every content block on an article against the size caps before
	any write. All blocks are checked in one pass and the write is
	all-or-nothing: one oversized block rejects the entire article, and the
	first offending field (primary first, then overlays in language order) is
	named in the error.

Parameters:

	target: The fully-merged article about to be persisted.

Returns:

	error: nil when every block is within limits, otherwise an
	apperr CONTENT_TOO_LARGE naming the offending field and its limit.
*/
func GuardContent(target *Article) error {
	blocks := []namedContent{{field: FieldContent, content: &target.Content}}
	for _, language := range Languages() {
		block := target.LanguageBlock(language)
		if block == nil {
			continue
		}
		blocks = append(blocks, namedContent{
			field:   "dual_language." + string(language) + ".content",
			content: &block.Content,
		})
	}

	for _, block := range blocks {
		if err := guardBlock(block.field, block.content); err != nil {
			return err
		}
	}

	return nil
}

// guardBlock checks one content block. HTML and plain text are limited
// independently: a small HTML body does not buy headroom for the plain text.
func guardBlock(field string, content *Content) error {
	if utf8.RuneCountInString(content.HTML) > MaxHTMLChars {
		return apperr.ContentTooLarge(field+".html", MaxHTMLChars)
	}
	if utf8.RuneCountInString(content.PlainText) > MaxPlainTextChars {
		return apperr.ContentTooLarge(field+".plain_text", MaxPlainTextChars)
	}
	return nil
}
