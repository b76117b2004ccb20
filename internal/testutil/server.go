package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// TranslationRequest is a request body received by TranslationServer
type TranslationRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Source string `json:"source,omitempty"`
	Format string `json:"format,omitempty"`
	Auth   string `json:"-"`
}

// TranslationServer is a fake translation v2 endpoint
type TranslationServer struct {
	*httptest.Server

	mu           sync.Mutex
	translations map[string]string
	failStatus   int
	failAfter    int
	requests     []TranslationRequest
}

// NewTranslationServer starts a fake endpoint that is closed when the test ends
func NewTranslationServer(t *testing.T) *TranslationServer {
	t.Helper()

	s := &TranslationServer{translations: map[string]string{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// Languages is what the fake endpoint reports as supported
var Languages = []map[string]string{
	{"language": "de", "name": "German"},
	{"language": "fr", "name": "French"},
	{"language": "pl", "name": "Polish"},
}

func (s *TranslationServer) handle(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/languages") {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"languages": Languages},
		})
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req TranslationRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req.Auth = r.Header.Get("Authorization")

	s.mu.Lock()
	seen := len(s.requests)
	s.requests = append(s.requests, req)
	translated, ok := s.translations[req.Q]
	failStatus, failAfter := s.failStatus, s.failAfter
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if failStatus != 0 && seen >= failAfter {
		w.WriteHeader(failStatus)
		fmt.Fprintf(w, `{"error":{"code":%d,"message":"%s"}}`, failStatus, http.StatusText(failStatus))
		return
	}

	if !ok {
		translated = req.Target + ":" + req.Q
	}

	json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{
			"translations": []map[string]string{{"translatedText": translated}},
		},
	})
}

// SetTranslation makes the server answer text with translated. Unknown text
// is echoed back prefixed with the target language.
func (s *TranslationServer) SetTranslation(text, translated string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.translations[text] = translated
}

// FailWith makes every request after the first `after` ones fail with status
func (s *TranslationServer) FailWith(status, after int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failAfter = after
}

// Requests returns the requests received so far
func (s *TranslationServer) Requests() []TranslationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TranslationRequest(nil), s.requests...)
}
