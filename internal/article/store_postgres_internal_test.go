// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maqalahq/maqala/internal/platform/database/schema"
)

// categoriesArgIndex resolves the position of the categories column in the
// positional argument list produced by writeArgs.
func categoriesArgIndex(t *testing.T) int {
	t.Helper()
	for i, column := range schema.ContentArticle.Columns() {
		if column == schema.ContentArticle.Categories {
			return i
		}
	}
	t.Fatal("categories column missing from schema")
	return -1
}

/*
TestWriteArgs_NilCategoriesBecomesEmptyArray verifies that an article created
without categories is written as an empty array, not SQL NULL. pgx encodes a
nil slice as NULL, and the NOT NULL column default never applies when the
INSERT names the column explicitly, so a nil slice would reject the row.
*/
func TestWriteArgs_NilCategoriesBecomesEmptyArray(t *testing.T) {
	target := &Article{
		ID:       "0192a1b2-0000-7000-8000-00000000beef",
		Slug:     "no-categories",
		Language: LanguageEnglish,
		Title:    "No Categories",
		Author:   "Jordan Writer",
	}

	args, err := writeArgs(target)
	require.NoError(t, err)

	categories, ok := args[categoriesArgIndex(t)].([]string)
	require.True(t, ok)
	assert.NotNil(t, categories)
	assert.Empty(t, categories)
}

/*
TestWriteArgs_CategoriesPreserved verifies supplied categories pass through
untouched.
*/
func TestWriteArgs_CategoriesPreserved(t *testing.T) {
	target := &Article{
		ID:         "0192a1b2-0000-7000-8000-00000000beef",
		Slug:       "tagged",
		Language:   LanguageEnglish,
		Title:      "Tagged",
		Author:     "Jordan Writer",
		Categories: []string{"economy", "water"},
	}

	args, err := writeArgs(target)
	require.NoError(t, err)

	assert.Equal(t, []string{"economy", "water"}, args[categoriesArgIndex(t)])
}
