// Copyright (c) 2026 Maqala. All rights reserved.

/*
Package translate provides the machine translation collaborator used by the
article domain.

It manages outbound calls to a LibreTranslate-compatible provider and the
degraded mode used when no provider is configured.

Core Responsibility:

  - Conversion: Translates HTML bodies and plain text fields between languages.
  - Degradation: An unconfigured provider is never an error; both operations
    become identity functions returning their input unchanged.
  - Provenance: Exposes a stable provider name recorded in article
    translation metadata.

The article service decides per flow whether a provider failure propagates
(preview) or degrades to passthrough (persisted translation).
*/
package translate

import "context"

// # Collaborator Contract

// Translator is the outbound machine translation contract.
//
// Implementations must be safe to call with an unconfigured backing provider;
// in that mode both methods return the input unchanged and a nil error.
type Translator interface {

	/*
		TranslateHTML translates an HTML fragment into the target language,
		preserving markup.

		Parameters:
		  - context: context.Context
		  - html: string (Source HTML body)
		  - targetLanguage: string (BCP-47 code, e.g. "ar")

		Returns:
		  - string: Translated HTML (or the input unchanged when unconfigured)
		  - error: Provider transport or response failures
	*/
	TranslateHTML(context context.Context, html, targetLanguage string) (string, error)

	/*
		TranslateText translates a plain text string into the target language.

		Parameters:
		  - context: context.Context
		  - text: string
		  - targetLanguage: string (BCP-47 code)

		Returns:
		  - string: Translated text (or the input unchanged when unconfigured)
		  - error: Provider transport or response failures
	*/
	TranslateText(context context.Context, text, targetLanguage string) (string, error)

	// Name returns the provider identifier recorded in translation metadata.
	Name() string
}

// # Degraded Mode

// Passthrough is the identity [Translator] used when no provider is configured.
type Passthrough struct{}

// TranslateHTML returns the input HTML unchanged.
func (Passthrough) TranslateHTML(_ context.Context, html, _ string) (string, error) {
	return html, nil
}

// TranslateText returns the input text unchanged.
func (Passthrough) TranslateText(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// Name identifies the degraded provider in translation metadata.
func (Passthrough) Name() string { return "passthrough" }
