// Copyright (c) 2026 Maqala. All rights reserved.

package schema

// ContentArticleTable represents the 'content.article' table
type ContentArticleTable struct {
	Table                string
	ID                   string
	Slug                 string
	Language             string
	Title                string
	Subtitle             string
	Excerpt              string
	Author               string
	Content              string
	FeaturedImage        string
	Categories           string
	Series               string
	Meta                 string
	Status               string
	IsFeatured           string
	IsLatest             string
	Views                string
	Shares               string
	ReadingTime          string
	DualLanguage         string
	DualLanguageAuthor   string
	DualLanguageTitle    string
	DualLanguageSubtitle string
	Translations         string
	CreatedAt            string
	UpdatedAt            string
}

// ContentArticle is the schema definition for content.article
var ContentArticle = ContentArticleTable{
	Table:                "content.article",
	ID:                   "id",
	Slug:                 "slug",
	Language:             "language",
	Title:                "title",
	Subtitle:             "subtitle",
	Excerpt:              "excerpt",
	Author:               "author",
	Content:              "content",
	FeaturedImage:        "featuredimage",
	Categories:           "categories",
	Series:               "series",
	Meta:                 "meta",
	Status:               "status",
	IsFeatured:           "isfeatured",
	IsLatest:             "islatest",
	Views:                "views",
	Shares:               "shares",
	ReadingTime:          "readingtime",
	DualLanguage:         "duallanguage",
	DualLanguageAuthor:   "duallanguageauthor",
	DualLanguageTitle:    "duallanguagetitle",
	DualLanguageSubtitle: "duallanguagesubtitle",
	Translations:         "translations",
	CreatedAt:            "createdat",
	UpdatedAt:            "updatedat",
}

func (t ContentArticleTable) Columns() []string {
	return []string{
		t.ID,
		t.Slug,
		t.Language,
		t.Title,
		t.Subtitle,
		t.Excerpt,
		t.Author,
		t.Content,
		t.FeaturedImage,
		t.Categories,
		t.Series,
		t.Meta,
		t.Status,
		t.IsFeatured,
		t.IsLatest,
		t.Views,
		t.Shares,
		t.ReadingTime,
		t.DualLanguage,
		t.DualLanguageAuthor,
		t.DualLanguageTitle,
		t.DualLanguageSubtitle,
		t.Translations,
		t.CreatedAt,
		t.UpdatedAt,
	}
}
