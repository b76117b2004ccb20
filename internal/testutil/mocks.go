package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"codeberg.org/snonux/jsontrans/internal/dictionary"
)

// TranslateCall is one recorded call to MockTranslator
type TranslateCall struct {
	Record     dictionary.Record
	TargetLang string
	At         time.Time
}

// MockTranslator mocks the translation client
type MockTranslator struct {
	// Translations maps source text to translated text
	Translations map[string]string
	// Errors maps record keys to the error returned for them
	Errors map[string]error
	// Delay is slept before every call
	Delay time.Duration

	mu    sync.Mutex
	calls []TranslateCall
}

// Translate mocks translating a record
func (m *MockTranslator) Translate(ctx context.Context, rec dictionary.Record, targetLang string) (dictionary.Record, error) {
	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return dictionary.Record{}, ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	m.mu.Lock()
	m.calls = append(m.calls, TranslateCall{Record: rec, TargetLang: targetLang, At: time.Now()})
	m.mu.Unlock()

	if err, ok := m.Errors[rec.Key]; ok {
		return dictionary.Record{}, err
	}

	if translation, ok := m.Translations[rec.Value]; ok {
		return dictionary.Record{Key: rec.Key, Value: translation}, nil
	}

	// Default mock translation
	return dictionary.Record{Key: rec.Key, Value: fmt.Sprintf("mock translation of %s", rec.Value)}, nil
}

// Calls returns the recorded calls in the order they were made
func (m *MockTranslator) Calls() []TranslateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]TranslateCall(nil), m.calls...)
}

// CalledKeys returns the record keys of all calls in order
func (m *MockTranslator) CalledKeys() []string {
	calls := m.Calls()
	keys := make([]string, len(calls))
	for i, c := range calls {
		keys[i] = c.Record.Key
	}
	return keys
}
