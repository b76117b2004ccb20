package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/jsontrans/internal/dictionary"
	"codeberg.org/snonux/jsontrans/internal/testutil"
	"codeberg.org/snonux/jsontrans/internal/translation"
)

func TestResolveArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantInput string
		wantLang  string
	}{
		{"no arguments", nil, "./translate_pl.json", "de"},
		{"input only", []string{"strings.json"}, "strings.json", "de"},
		{"input and language", []string{"strings.json", "fr"}, "strings.json", "fr"},
		{"empty input keeps default", []string{"", "es"}, "./translate_pl.json", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, lang := ResolveArgs(tt.args)
			if input != tt.wantInput || lang != tt.wantLang {
				t.Errorf("ResolveArgs(%v) = %q, %q, want %q, %q", tt.args, input, lang, tt.wantInput, tt.wantLang)
			}
		})
	}
}

func TestBuildConfig(t *testing.T) {
	flags := NewFlags()
	flags.OutputFile = "out.json"
	flags.Compact = true
	flags.Concurrency = 3

	cfg, err := BuildConfig([]string{"in.json", "pt-BR"}, flags)
	if err != nil {
		t.Fatalf("BuildConfig failed: %v", err)
	}

	if cfg.InputFile != "in.json" || cfg.TargetLang != "pt-BR" || cfg.OutputFile != "out.json" {
		t.Errorf("unexpected paths or language: %+v", cfg)
	}
	if !cfg.Compact || cfg.Concurrency != 3 {
		t.Errorf("flags not carried over: %+v", cfg)
	}
}

func TestBuildConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		modify      func(f *Flags)
		wantSetting string
	}{
		{"bad target language", []string{"in.json", "not a language"}, func(f *Flags) {}, "target language"},
		{"bad source language", []string{"in.json", "fr"}, func(f *Flags) { f.SourceLang = "??" }, "source language"},
		{"unknown format", nil, func(f *Flags) { f.Format = "markdown" }, "format"},
		{"zero concurrency", nil, func(f *Flags) { f.Concurrency = 0 }, "concurrency"},
		{"negative delay", nil, func(f *Flags) { f.Delay = -time.Second }, "delay"},
		{"negative rate", nil, func(f *Flags) { f.RateLimit = -1 }, "rate"},
		{"negative timeout", nil, func(f *Flags) { f.Timeout = -time.Second }, "timeout"},
		{"relative endpoint", nil, func(f *Flags) { f.Endpoint = "translate/v2" }, "endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.modify(flags)

			_, err := BuildConfig(tt.args, flags)

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected ConfigError, got %v", err)
			}
			if cfgErr.Setting != tt.wantSetting {
				t.Errorf("Setting = %q, want %q", cfgErr.Setting, tt.wantSetting)
			}
		})
	}
}

func TestCheckAPIKey(t *testing.T) {
	var buf bytes.Buffer
	if err := CheckAPIKey("token", &buf); err != nil {
		t.Errorf("CheckAPIKey with token returned %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}

	err := CheckAPIKey("", &buf)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
	for _, want := range []string{"GKEY", "gcloud auth application-default print-access-token"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("Guidance does not mention %q:\n%s", want, buf.String())
		}
	}
}

func TestClientOptions(t *testing.T) {
	srv := testutil.NewTranslationServer(t)

	flags := NewFlags()
	flags.Endpoint = srv.URL
	flags.SourceLang = "pl"
	flags.Format = "text"
	flags.RateLimit = 100
	flags.Timeout = 5 * time.Second

	client := translation.NewClient("token", ClientOptions(flags)...)
	got, err := client.Translate(context.Background(), dictionary.Record{Key: "k", Value: "Cześć"}, "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got.Value != "en:Cześć" {
		t.Errorf("Value = %q, want en:Cześć", got.Value)
	}

	reqs := srv.Requests()
	if len(reqs) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(reqs))
	}
	if reqs[0].Source != "pl" || reqs[0].Format != "text" {
		t.Errorf("source/format not sent: %+v", reqs[0])
	}
}
