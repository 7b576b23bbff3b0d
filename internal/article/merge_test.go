// Copyright (c) 2026 Maqala. All rights reserved.

package article_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maqalahq/maqala/internal/article"
	"github.com/maqalahq/maqala/pkg/pointer"
)

/*
TestMergeLanguageContent_ShallowOverwrite verifies the full-block merge
semantics: supplied fields replace, omitted fields survive from the
existing block.
*/
func TestMergeLanguageContent_ShallowOverwrite(t *testing.T) {
	target := &article.Article{
		DualLanguage: map[article.Language]*article.LanguageContent{
			article.LanguageArabic: {
				Title:    "عنوان قديم",
				Subtitle: "عنوان فرعي",
				Content:  article.Content{HTML: "<p>قديم</p>", PlainText: "قديم"},
				Status:   article.StatusPublished,
			},
		},
	}

	article.MergeLanguageContent(target, article.LanguageArabic, &article.LanguageContentPatch{
		Title:   pointer.To("عنوان جديد"),
		Content: &article.ContentPatch{HTML: pointer.To("<p>جديد</p>")},
	})

	block := target.DualLanguage[article.LanguageArabic]
	require.NotNil(t, block)

	// Supplied fields replaced
	assert.Equal(t, "عنوان جديد", block.Title)
	assert.Equal(t, "<p>جديد</p>", block.Content.HTML)

	// Omitted fields preserved
	assert.Equal(t, "عنوان فرعي", block.Subtitle)
	assert.Equal(t, "قديم", block.Content.PlainText)
	assert.Equal(t, article.StatusPublished, block.Status)
}

/*
TestMergeLanguageContent_InitialisesOverlay verifies that merging into a
record without an overlay creates the map and defaults the block to draft.
*/
func TestMergeLanguageContent_InitialisesOverlay(t *testing.T) {
	target := &article.Article{}

	article.MergeLanguageContent(target, article.LanguageEnglish, &article.LanguageContentPatch{
		Title: pointer.To("Fresh Block"),
	})

	block := target.DualLanguage[article.LanguageEnglish]
	require.NotNil(t, block)
	assert.Equal(t, "Fresh Block", block.Title)
	assert.Equal(t, article.StatusDraft, block.Status)
}

/*
TestMergeLanguageContent_SiblingUntouched verifies that merging one language
never clobbers the sibling language's block.
*/
func TestMergeLanguageContent_SiblingUntouched(t *testing.T) {
	target := &article.Article{
		DualLanguage: map[article.Language]*article.LanguageContent{
			article.LanguageEnglish: {Title: "English Block", Status: article.StatusPublished},
		},
	}

	article.MergeLanguageContent(target, article.LanguageArabic, &article.LanguageContentPatch{
		Title: pointer.To("كتلة عربية"),
	})

	english := target.DualLanguage[article.LanguageEnglish]
	require.NotNil(t, english)
	assert.Equal(t, "English Block", english.Title)
	assert.Equal(t, article.StatusPublished, english.Status)
}

/*
TestMergeOverlayFields_Additive verifies the narrow-overlay merge: adding a
language never disturbs existing keys.
*/
func TestMergeOverlayFields_Additive(t *testing.T) {
	target := &article.Article{
		DualLanguageTitle: map[article.Language]string{
			article.LanguageEnglish: "A",
		},
	}

	article.MergeOverlayFields(target, &article.OverlayFieldsPatch{
		Title: map[article.Language]string{article.LanguageArabic: "ب"},
	})

	assert.Equal(t, "A", target.DualLanguageTitle[article.LanguageEnglish])
	assert.Equal(t, "ب", target.DualLanguageTitle[article.LanguageArabic])
}

/*
TestMergeOverlayFields_EmptyNeverErases verifies the critical asymmetry
versus the full-block merge: an empty supplied value leaves the existing
overlay entry untouched.
*/
func TestMergeOverlayFields_EmptyNeverErases(t *testing.T) {
	target := &article.Article{
		DualLanguageAuthor: map[article.Language]string{
			article.LanguageEnglish: "Jordan Writer",
		},
	}

	article.MergeOverlayFields(target, &article.OverlayFieldsPatch{
		Author: map[article.Language]string{
			article.LanguageEnglish: "",
			article.LanguageArabic:  "كاتب",
		},
	})

	assert.Equal(t, "Jordan Writer", target.DualLanguageAuthor[article.LanguageEnglish])
	assert.Equal(t, "كاتب", target.DualLanguageAuthor[article.LanguageArabic])
}

/*
TestMergeOverlayFields_CreatesMapsOnDemand verifies first-write allocation
of each overlay map.
*/
func TestMergeOverlayFields_CreatesMapsOnDemand(t *testing.T) {
	target := &article.Article{}

	article.MergeOverlayFields(target, &article.OverlayFieldsPatch{
		Subtitle: map[article.Language]string{article.LanguageTurkish: "Alt Başlık"},
	})

	assert.Equal(t, "Alt Başlık", target.DualLanguageSubtitle[article.LanguageTurkish])
	assert.Nil(t, target.DualLanguageAuthor)
	assert.Nil(t, target.DualLanguageTitle)
}

/*
TestApplyPatch verifies the primary-record partial update: nil fields are
preserved, overlay sub-patches go through the merge engine.
*/
func TestApplyPatch(t *testing.T) {
	target := &article.Article{
		Title:   "Original Title",
		Excerpt: "Original excerpt",
		Content: article.Content{HTML: "<p>original</p>", PlainText: "original"},
		Status:  article.StatusPublished,
		DualLanguage: map[article.Language]*article.LanguageContent{
			article.LanguageArabic: {Title: "موجود", Status: article.StatusDraft},
		},
	}

	article.ApplyPatch(target, &article.Patch{
		Title:   pointer.To("Patched Title"),
		Content: &article.ContentPatch{PlainText: pointer.To("patched")},
		DualLanguage: map[article.Language]*article.LanguageContentPatch{
			article.LanguageArabic: {Subtitle: pointer.To("فرعي")},
		},
	})

	// Supplied primary fields replaced
	assert.Equal(t, "Patched Title", target.Title)
	assert.Equal(t, "patched", target.Content.PlainText)

	// Omitted primary fields preserved
	assert.Equal(t, "Original excerpt", target.Excerpt)
	assert.Equal(t, "<p>original</p>", target.Content.HTML)
	assert.Equal(t, article.StatusPublished, target.Status)

	// Overlay merged field-by-field, not replaced wholesale
	block := target.DualLanguage[article.LanguageArabic]
	require.NotNil(t, block)
	assert.Equal(t, "موجود", block.Title)
	assert.Equal(t, "فرعي", block.Subtitle)
}
