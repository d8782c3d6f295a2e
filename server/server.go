package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/xhad/brief/internal/types"
	"github.com/xhad/brief/pkg/extract"
	"github.com/xhad/brief/pkg/llm"
	"github.com/xhad/brief/pkg/summarizer"
	"github.com/xhad/brief/pkg/summary"
)

type Config struct {
	Addr           string
	MaxUploadBytes int64
	MaxChars       int
}

// Server exposes the summarization pipeline over HTTP. It owns upload
// validation and error-to-status mapping; the core packages stay unaware of
// the wire format.
type Server struct {
	config     Config
	summarizer types.Summarizer
	extractor  types.Extractor
}

func New(config Config, s types.Summarizer) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.MaxUploadBytes == 0 {
		config.MaxUploadBytes = 10 << 20
	}
	if config.MaxChars == 0 {
		config.MaxChars = 400000
	}

	return &Server{
		config:     config,
		summarizer: s,
		extractor:  extract.New(),
	}
}

type response struct {
	Markdown string `json:"markdown,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Handler returns the route table. Exposed separately from Run so tests can
// drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/summarize", s.handleSummarize)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

func (s *Server) Run() error {
	log.Printf("Starting server on %s", s.config.Addr)
	return http.ListenAndServe(s.config.Addr, s.Handler())
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, response{Error: "missing or oversized file upload"})
		return
	}
	defer file.Close()

	if !extract.Supported(header.Filename) {
		writeJSON(w, http.StatusBadRequest, response{
			Error: fmt.Sprintf("unsupported file type: %s", header.Filename),
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, response{Error: "upload exceeds size limit"})
		return
	}

	text, err := s.extractor.Extract(header.Filename, data)
	if err != nil {
		log.Printf("extraction failed for %s: %v", header.Filename, err)
		writeJSON(w, http.StatusBadRequest, response{Error: "could not extract text from upload"})
		return
	}

	if len(text) > s.config.MaxChars {
		writeJSON(w, http.StatusRequestEntityTooLarge, response{
			Error: fmt.Sprintf("document exceeds %d characters", s.config.MaxChars),
		})
		return
	}

	markdown, err := s.summarizer.Summarize(r.Context(), text, header.Filename)
	if err != nil {
		status, message := mapError(err)
		log.Printf("summarization failed for %s: %v", header.Filename, err)
		writeJSON(w, status, response{Error: message})
		return
	}

	writeJSON(w, http.StatusOK, response{Markdown: markdown})
}

// mapError translates the core's typed failures into status codes and
// user-facing messages.
func mapError(err error) (int, string) {
	var emptyErr summarizer.EmptyInputError
	var callErr llm.GenerationCallError
	var parseErr llm.GenerationParseError
	var schemaErr summary.SchemaError

	switch {
	case errors.As(err, &emptyErr):
		return http.StatusBadRequest, "document contains no text"
	case errors.As(err, &callErr):
		return http.StatusBadGateway, "summary generation is unavailable"
	case errors.As(err, &parseErr), errors.As(err, &schemaErr):
		return http.StatusBadGateway, "summary generation returned an unusable result"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
