// Copyright (c) 2026 Maqala. All rights reserved.

package article_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maqalahq/maqala/internal/article"
)

/*
TestWordCount checks whitespace tokenization across scripts.
*/
func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace_only", "   \t\n  ", 0},
		{"single_word", "maqala", 1},
		{"simple_sentence", "the quick brown fox", 4},
		{"collapsed_whitespace", "one    two\t\tthree\n\nfour", 4},
		{"leading_trailing", "  padded text  ", 2},
		{"arabic_text", "صحيفة مقالة يومية", 3},
		{"mixed_scripts", "breaking خبر news عاجل", 4},
		{"punctuation_attached", "hello, world!", 2},
		{"numerals", "2026 budget: 1.5 billion", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, article.WordCount(tt.input))
		})
	}
}

/*
TestWordCount_Idempotent verifies that recounting the same text always
yields the same value.
*/
func TestWordCount_Idempotent(t *testing.T) {
	text := strings.Repeat("word ", 357)
	first := article.WordCount(text)
	second := article.WordCount(text)

	assert.Equal(t, 357, first)
	assert.Equal(t, first, second)
}

/*
TestReadingMinutes checks the ceil-with-floor estimate at 200 words per
minute.
*/
func TestReadingMinutes(t *testing.T) {
	tests := []struct {
		name      string
		wordCount int
		expected  int
	}{
		{"zero_words_floors_to_one", 0, 1},
		{"negative_floors_to_one", -5, 1},
		{"one_word", 1, 1},
		{"exactly_one_minute", 200, 1},
		{"just_over_one_minute", 201, 2},
		{"exactly_two_minutes", 400, 2},
		{"long_form", 2500, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, article.ReadingMinutes(tt.wordCount))
		})
	}
}

/*
TestEstimateReadTime covers the combined plain-text to minutes path,
including the empty-input floor.
*/
func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 1, article.EstimateReadTime(""))
	assert.Equal(t, 1, article.EstimateReadTime("short note"))
	assert.Equal(t, 2, article.EstimateReadTime(strings.Repeat("word ", 201)))
}
