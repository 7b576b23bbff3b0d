// Copyright (c) 2026 Maqala. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maqalahq/maqala/pkg/slug"
)

/*
TestFrom covers the Latin pipeline, accents, and punctuation cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Breaking News Today", "breaking-news-today"},
		{"accents", "Café Société", "cafe-societe"},
		{"punctuation", "Hello, World! (2026)", "hello-world-2026"},
		{"extra_hyphens", "a -- b", "a-b"},
		{"trim", "  edges  ", "edges"},
		{"digits", "Top 10 stories", "top-10-stories"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

/*
TestFrom_NonLatin verifies that non-Latin titles keep their script instead
of collapsing to an empty slug.
*/
func TestFrom_NonLatin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// NFD strips the hamza mark from أ, leaving bare alef.
		{"arabic", "أخبار اليوم", "اخبار-اليوم"},
		{"mixed", "Top 10 أفلام today", "top-10-today"},
		{"turkish", "Güncel Haberler", "guncel-haberler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
