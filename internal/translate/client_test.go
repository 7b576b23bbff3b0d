// Copyright (c) 2026 Maqala. All rights reserved.

package translate_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maqalahq/maqala/internal/translate"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

/*
TestClient_Unconfigured verifies the degraded identity mode: no endpoint
means both operations return their input unchanged and never error.
*/
func TestClient_Unconfigured(t *testing.T) {
	client := translate.NewClient("", "", time.Second, discardLogger())

	assert.False(t, client.Configured())
	assert.Equal(t, "passthrough", client.Name())

	html, err := client.TranslateHTML(context.Background(), "<p>hello</p>", "ar")
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", html)

	text, err := client.TranslateText(context.Background(), "hello", "ar")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

/*
TestClient_Translate verifies a successful provider round-trip, including
the request payload shape.
*/
func TestClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(request.Body).Decode(&payload))

		assert.Equal(t, "<p>hello</p>", payload["q"])
		assert.Equal(t, "ar", payload["target"])
		assert.Equal(t, "html", payload["format"])
		assert.Equal(t, "auto", payload["source"])

		_ = json.NewEncoder(writer).Encode(map[string]string{"translatedText": "<p>مرحبا</p>"})
	}))
	defer server.Close()

	client := translate.NewClient(server.URL, "", time.Second, discardLogger())
	assert.Equal(t, "libretranslate", client.Name())

	translated, err := client.TranslateHTML(context.Background(), "<p>hello</p>", "ar")
	require.NoError(t, err)
	assert.Equal(t, "<p>مرحبا</p>", translated)
}

/*
TestClient_ProviderFailure verifies that a non-2xx response surfaces as an error.
*/
func TestClient_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := translate.NewClient(server.URL, "", time.Second, discardLogger())

	_, err := client.TranslateText(context.Background(), "hello", "tr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

/*
TestClient_EmptyInput verifies that empty input short-circuits without a
network call.
*/
func TestClient_EmptyInput(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called = true
	}))
	defer server.Close()

	client := translate.NewClient(server.URL, "", time.Second, discardLogger())

	out, err := client.TranslateText(context.Background(), "", "ar")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, called)
}

/*
TestPassthrough verifies the stub translator used in degraded wiring.
*/
func TestPassthrough(t *testing.T) {
	var passthrough translate.Passthrough

	html, err := passthrough.TranslateHTML(context.Background(), "<b>x</b>", "id")
	require.NoError(t, err)
	assert.Equal(t, "<b>x</b>", html)
	assert.Equal(t, "passthrough", passthrough.Name())
}
