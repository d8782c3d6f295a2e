package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/brief/pkg/llm"
	"github.com/xhad/brief/pkg/summarizer"
	"github.com/xhad/brief/server"
)

type fakeSummarizer struct {
	markdown string
	err      error
	gotText  string
	gotName  string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, filename string) (string, error) {
	f.gotText = text
	f.gotName = filename
	return f.markdown, f.err
}

func newTestServer(fake *fakeSummarizer) http.Handler {
	return server.New(server.Config{MaxChars: 1000}, fake).Handler()
}

func uploadRequest(t *testing.T, filename, contents string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/summarize", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&fakeSummarizer{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestSummarize_Success(t *testing.T) {
	fake := &fakeSummarizer{markdown: "## Executive Summary\n- fine\n"}
	rec := httptest.NewRecorder()

	newTestServer(fake).ServeHTTP(rec, uploadRequest(t, "notes.txt", "some document text"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fake.markdown, decode(t, rec)["markdown"])
	assert.Equal(t, "some document text", fake.gotText)
	assert.Equal(t, "notes.txt", fake.gotName)
}

func TestSummarize_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&fakeSummarizer{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/summarize", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSummarize_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewBufferString("not multipart"))
	rec := httptest.NewRecorder()

	newTestServer(&fakeSummarizer{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["error"])
}

func TestSummarize_UnsupportedFileType(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&fakeSummarizer{}).ServeHTTP(rec, uploadRequest(t, "deck.pptx", "xxxx"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummarize_DocumentTooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	long := make([]byte, 2000)
	for i := range long {
		long[i] = 'a'
	}

	newTestServer(&fakeSummarizer{}).ServeHTTP(rec, uploadRequest(t, "big.txt", string(long)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSummarize_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"empty input", summarizer.EmptyInputError{}, http.StatusBadRequest},
		{"call failure", llm.GenerationCallError{Err: errors.New("boom")}, http.StatusBadGateway},
		{"parse failure", llm.GenerationParseError{Err: errors.New("bad json")}, http.StatusBadGateway},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestServer(&fakeSummarizer{err: tt.err}).ServeHTTP(rec, uploadRequest(t, "doc.txt", "text"))

			assert.Equal(t, tt.status, rec.Code)
			assert.NotEmpty(t, decode(t, rec)["error"])
		})
	}
}
