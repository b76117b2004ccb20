package cli

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/text/language"

	"codeberg.org/snonux/jsontrans/internal/processor"
	"codeberg.org/snonux/jsontrans/internal/translation"
)

// ErrMissingAPIKey is returned when no API token is configured
var ErrMissingAPIKey = errors.New(APIKeyEnv + " must be set")

// ConfigError reports an invalid setting
type ConfigError struct {
	Setting string
	Value   string
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Setting, e.Value, e.Reason)
}

// CheckAPIKey prints instructions for obtaining a token to w and returns
// ErrMissingAPIKey when apiKey is empty
func CheckAPIKey(apiKey string, w io.Writer) error {
	if apiKey != "" {
		return nil
	}

	fmt.Fprintf(w, "%s must be set before running jsontrans\n", APIKeyEnv)
	fmt.Fprintln(w, "To get a token, install the Google Cloud SDK and run:")
	fmt.Fprintln(w, "  export "+APIKeyEnv+"=$(gcloud auth application-default print-access-token)")
	fmt.Fprintln(w, "The token can also be put into a .env file or set as api.key in ~/.jsontrans.yaml")
	return ErrMissingAPIKey
}

// ResolveArgs returns the input file and target language from the
// positional arguments, falling back to the defaults
func ResolveArgs(args []string) (inputFile, targetLang string) {
	inputFile, targetLang = DefaultInputFile, DefaultTargetLang
	if len(args) > 0 && args[0] != "" {
		inputFile = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		targetLang = args[1]
	}
	return inputFile, targetLang
}

// validateLanguage accepts BCP 47 tags such as de, pt-BR or zh-TW
func validateLanguage(setting, code string) error {
	if _, err := language.Parse(code); err != nil {
		return &ConfigError{Setting: setting, Value: code, Reason: "not a language code"}
	}
	return nil
}

// BuildConfig validates the arguments and flags and turns them into an
// explicit pipeline configuration
func BuildConfig(args []string, flags *Flags) (processor.Config, error) {
	inputFile, targetLang := ResolveArgs(args)

	if err := validateLanguage("target language", targetLang); err != nil {
		return processor.Config{}, err
	}
	if flags.SourceLang != "" {
		if err := validateLanguage("source language", flags.SourceLang); err != nil {
			return processor.Config{}, err
		}
	}

	switch flags.Format {
	case "", "text", "html":
	default:
		return processor.Config{}, &ConfigError{Setting: "format", Value: flags.Format, Reason: "must be text or html"}
	}

	if flags.Concurrency < 1 {
		return processor.Config{}, &ConfigError{Setting: "concurrency", Value: fmt.Sprint(flags.Concurrency), Reason: "must be at least 1"}
	}
	if flags.Delay < 0 {
		return processor.Config{}, &ConfigError{Setting: "delay", Value: flags.Delay.String(), Reason: "must not be negative"}
	}
	if flags.RateLimit < 0 {
		return processor.Config{}, &ConfigError{Setting: "rate", Value: fmt.Sprint(flags.RateLimit), Reason: "must not be negative"}
	}
	if flags.Timeout < 0 {
		return processor.Config{}, &ConfigError{Setting: "timeout", Value: flags.Timeout.String(), Reason: "must not be negative"}
	}

	if u, err := url.Parse(flags.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return processor.Config{}, &ConfigError{Setting: "endpoint", Value: flags.Endpoint, Reason: "must be an absolute URL"}
	}

	return processor.Config{
		InputFile:   inputFile,
		OutputFile:  flags.OutputFile,
		TargetLang:  targetLang,
		Concurrency: flags.Concurrency,
		Compact:     flags.Compact,
		Verbose:     flags.Verbose,
		Quiet:       flags.Quiet,
		DryRun:      flags.DryRun,
		Backup:      flags.Backup,
	}, nil
}

// ClientOptions turns the API flags into translation client options
func ClientOptions(flags *Flags) []translation.Option {
	var pacer translation.Pacer = translation.FixedDelay(flags.Delay)
	if flags.RateLimit > 0 {
		pacer = translation.NewRateLimit(flags.RateLimit)
	}

	return []translation.Option{
		translation.WithEndpoint(flags.Endpoint),
		translation.WithSourceLang(flags.SourceLang),
		translation.WithFormat(flags.Format),
		translation.WithPacer(pacer),
		translation.WithHTTPClient(&http.Client{Timeout: flags.Timeout}),
	}
}
