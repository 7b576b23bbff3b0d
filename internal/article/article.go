// Copyright (c) 2026 Maqala. All rights reserved.

/*
Package article defines the core domain entities for the Maqala newsroom.

It manages the lifecycle of editorial articles published in one or two
languages, including content invariants, derived reading metrics, and
machine translation orchestration.

Core Responsibility:

  - Content: Stores the primary-language body plus an optional secondary
    language overlay, each independently editable and publishable.
  - Invariants: Enforces content size caps and keeps word counts and
    reading times derived, never author-supplied.
  - Translation: Produces persisted sibling records and ephemeral previews
    through the machine translation collaborator.

This package acts as the source of truth for all article-related data models.
*/
package article

import "time"

// # Domain Enums

// Language identifies one of the supported publication languages.
type Language string

const (
	// LanguageEnglish is the canonical source language; it is never
	// machine-translated into itself.
	LanguageEnglish Language = "en"

	// LanguageArabic is the primary secondary language of the platform.
	LanguageArabic Language = "ar"

	// LanguageIndonesian is supported for regional editions.
	LanguageIndonesian Language = "id"

	// LanguageTurkish is supported for regional editions.
	LanguageTurkish Language = "tr"
)

// IsValid reports whether l is a recognised [Language] value.
func (l Language) IsValid() bool {
	switch l {
	case
		LanguageEnglish,
		LanguageArabic,
		LanguageIndonesian,
		LanguageTurkish:
		return true
	}
	return false
}

// Languages returns all supported language codes.
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageArabic, LanguageIndonesian, LanguageTurkish}
}

// Status represents the editorial lifecycle state of an article or of a
// single language block. Each language publishes independently.
type Status string

const (
	// StatusDraft indicates unpublished work in progress. Machine-translated
	// siblings are always created in this state.
	StatusDraft Status = "draft"

	// StatusPublished indicates publicly visible content.
	StatusPublished Status = "published"

	// StatusArchived indicates content withdrawn from discovery.
	StatusArchived Status = "archived"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// # Core Entities

// Content is an article body in a single language.
//
// WordCount is derived from PlainText by the consistency hook and must never
// be set by callers.
type Content struct {
	HTML      string `json:"html"`
	PlainText string `json:"plain_text,omitempty"`
	WordCount int    `json:"word_count"`
}

// FeaturedImage is the required hero image of an article.
type FeaturedImage struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// Meta carries the SEO metadata of an article or language block.
type Meta struct {
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	SocialImage string   `json:"social_image,omitempty"`
}

// SeriesRef links an article into an editorial series at a given position.
type SeriesRef struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// LanguageContent is a full secondary-language content block, co-resident on
// the article record ("dual-language overlay").
//
// Its Status is independent of the root article status: the Arabic edition
// of a record may be published while the English edition stays in draft.
type LanguageContent struct {
	Title         string         `json:"title,omitempty"`
	Subtitle      string         `json:"subtitle,omitempty"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Content       Content        `json:"content"`
	FeaturedImage *FeaturedImage `json:"featured_image,omitempty"`
	Meta          *Meta          `json:"meta,omitempty"`
	ReadTime      int            `json:"read_time,omitempty"`
	Status        Status         `json:"status,omitempty"`
}

// TranslationInfo records the provenance of a machine translation into one
// target language. It tracks staleness, not content.
type TranslationInfo struct {
	Status           Status    `json:"status"`
	LastTranslatedAt time.Time `json:"last_translated_at"`
	Provider         string    `json:"translation_provider"`
}

// Article is the central aggregate of the Maqala domain.
//
// # Identity
//
// (Slug, Language) is unique across all records. A "sibling" is a second
// record sharing the slug with a different primary language, produced by the
// persisted translation flow.
type Article struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Language Language `json:"language"`

	// # Primary Content
	Title         string        `json:"title"`
	Subtitle      string        `json:"subtitle,omitempty"`
	Excerpt       string        `json:"excerpt,omitempty"`
	Author        string        `json:"author"`
	Content       Content       `json:"content"`
	FeaturedImage FeaturedImage `json:"featured_image"`
	Categories    []string      `json:"categories,omitempty"`
	Series        *SeriesRef    `json:"series,omitempty"`
	Meta          Meta          `json:"meta"`

	// # Lifecycle Flags
	Status     Status `json:"status"`
	IsFeatured bool   `json:"is_featured"`
	IsLatest   bool   `json:"is_latest"`

	// # Derived Stats
	// Views and Shares are updated by atomic counter increments.
	// ReadingTime is derived from the primary plain text only.
	Views       int64 `json:"views"`
	Shares      int64 `json:"shares"`
	ReadingTime int   `json:"reading_time"`

	// # Dual-Language Overlay
	// DualLanguage holds full secondary content blocks keyed by language.
	// The three narrow maps are a lighter-weight alternative used when only
	// author/title/subtitle need a second-language variant. The two
	// mechanisms have different merge semantics (shallow-overwrite vs
	// additive-only) and must stay separate.
	DualLanguage         map[Language]*LanguageContent `json:"dual_language,omitempty"`
	DualLanguageAuthor   map[Language]string           `json:"dual_language_author,omitempty"`
	DualLanguageTitle    map[Language]string           `json:"dual_language_title,omitempty"`
	DualLanguageSubtitle map[Language]string           `json:"dual_language_subtitle,omitempty"`

	// Translations records machine-translation provenance per target language.
	Translations map[Language]TranslationInfo `json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LanguageBlock returns the overlay content block for a language, or nil.
func (a *Article) LanguageBlock(language Language) *LanguageContent {
	if a.DualLanguage == nil {
		return nil
	}
	return a.DualLanguage[language]
}

// IsEmpty reports whether the block carries no content at all.
func (c *LanguageContent) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Title == "" && c.Subtitle == "" && c.Excerpt == "" &&
		c.Content.HTML == "" && c.Content.PlainText == ""
}

// # Partial Update Payloads

// ContentPatch is a partial [Content] update. Nil fields are left untouched.
type ContentPatch struct {
	HTML      *string `json:"html,omitempty"`
	PlainText *string `json:"plain_text,omitempty"`
}

// LanguageContentPatch is a partial overlay block update applied by the
// merge engine. Supplied (non-nil) fields replace; omitted fields are
// preserved from the existing block.
type LanguageContentPatch struct {
	Title         *string        `json:"title,omitempty"`
	Subtitle      *string        `json:"subtitle,omitempty"`
	Excerpt       *string        `json:"excerpt,omitempty"`
	Content       *ContentPatch  `json:"content,omitempty"`
	FeaturedImage *FeaturedImage `json:"featured_image,omitempty"`
	Meta          *Meta          `json:"meta,omitempty"`
	Status        *Status        `json:"status,omitempty"`
}

// IsEmpty reports whether the patch supplies nothing at all.
func (p *LanguageContentPatch) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Title == nil && p.Subtitle == nil && p.Excerpt == nil &&
		p.Content == nil && p.FeaturedImage == nil && p.Meta == nil && p.Status == nil
}

// OverlayFieldsPatch carries narrow per-field overlay values keyed by
// language. Empty values are ignored: field overlays are additive-only and
// an empty input never erases an existing value.
type OverlayFieldsPatch struct {
	Author   map[Language]string `json:"dual_language_author,omitempty"`
	Title    map[Language]string `json:"dual_language_title,omitempty"`
	Subtitle map[Language]string `json:"dual_language_subtitle,omitempty"`
}

// Patch is a partial primary-record update. Nil fields are left untouched.
type Patch struct {
	Title         *string        `json:"title,omitempty"`
	Subtitle      *string        `json:"subtitle,omitempty"`
	Excerpt       *string        `json:"excerpt,omitempty"`
	Author        *string        `json:"author,omitempty"`
	Content       *ContentPatch  `json:"content,omitempty"`
	FeaturedImage *FeaturedImage `json:"featured_image,omitempty"`
	Categories    *[]string      `json:"categories,omitempty"`
	Series        *SeriesRef     `json:"series,omitempty"`
	Meta          *Meta          `json:"meta,omitempty"`
	Status        *Status        `json:"status,omitempty"`
	IsFeatured    *bool          `json:"is_featured,omitempty"`
	IsLatest      *bool          `json:"is_latest,omitempty"`

	// Optional overlay updates carried alongside a primary update.
	DualLanguage         map[Language]*LanguageContentPatch `json:"dual_language,omitempty"`
	DualLanguageAuthor   map[Language]string                `json:"dual_language_author,omitempty"`
	DualLanguageTitle    map[Language]string                `json:"dual_language_title,omitempty"`
	DualLanguageSubtitle map[Language]string                `json:"dual_language_subtitle,omitempty"`
}

// OverlayFields bundles the narrow overlay maps of the patch for the merge
// engine.
func (p *Patch) OverlayFields() *OverlayFieldsPatch {
	if p.DualLanguageAuthor == nil && p.DualLanguageTitle == nil && p.DualLanguageSubtitle == nil {
		return nil
	}
	return &OverlayFieldsPatch{
		Author:   p.DualLanguageAuthor,
		Title:    p.DualLanguageTitle,
		Subtitle: p.DualLanguageSubtitle,
	}
}

// # Search & Filtering

// Filter holds the parameters for a filtered article list query.
type Filter struct {
	Language   Language `json:"language,omitempty"`
	Status     []Status `json:"status,omitempty"`
	Category   string   `json:"category,omitempty"`
	SeriesID   string   `json:"series_id,omitempty"`
	Author     string   `json:"author,omitempty"`
	IsFeatured *bool    `json:"is_featured,omitempty"`
	IsLatest   *bool    `json:"is_latest,omitempty"`
	Sort       string   `json:"sort,omitempty"`     // latest, popular, shares
	SortDir    string   `json:"sort_dir,omitempty"` // "asc" or "desc"
}

// TranslationPreview is the ephemeral result of the preview flow.
// Nothing about it is persisted.
type TranslationPreview struct {
	Language Language `json:"language"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Excerpt  string   `json:"excerpt,omitempty"`
	HTML     string   `json:"html"`
}

// # Field Identifiers

// Global field names for validation and error reporting.
const (
	FieldID            = "id"
	FieldSlug          = "slug"
	FieldLanguage      = "language"
	FieldTitle         = "title"
	FieldSubtitle      = "subtitle"
	FieldExcerpt       = "excerpt"
	FieldAuthor        = "author"
	FieldContent       = "content"
	FieldFeaturedImage = "featured_image"
	FieldStatus        = "status"
	FieldSeries        = "series"
)
