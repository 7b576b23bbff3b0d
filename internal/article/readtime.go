// Copyright (c) 2026 Maqala. All rights reserved.

package article

import "strings"

// WordsPerMinute is the assumed reading speed for the reading-time estimate.
const WordsPerMinute = 200

/*
Description:

	Counts the words in a plain-text string. A word is any maximal run of
	non-whitespace characters; punctuation attached to a token counts as part
	of it. Numerals, Arabic script, and mixed-script tokens all count one per
	run, so the metric behaves uniformly across languages.

Parameters:

	plainText: The plain-text rendering of an article body.

Returns:

	int: The number of whitespace-delimited tokens; 0 for empty or
	whitespace-only input.
*/
func WordCount(plainText string) int {
	return len(strings.Fields(plainText))
}

/*
Description:

	Estimates reading time in whole minutes at [WordsPerMinute], rounding up
	so partial minutes count as full minutes. Any non-empty text yields at
	least one minute; empty text also floors to one minute so the UI never
	renders a zero-minute read.

Parameters:

	wordCount: A word count previously produced by [WordCount].

Returns:

	int: Estimated reading time in minutes, always >= 1.
*/
func ReadingMinutes(wordCount int) int {
	if wordCount <= 0 {
		return 1
	}
	minutes := (wordCount + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// EstimateReadTime combines [WordCount] and [ReadingMinutes] for callers
// holding raw plain text.
func EstimateReadTime(plainText string) int {
	return ReadingMinutes(WordCount(plainText))
}
