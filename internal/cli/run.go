package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"codeberg.org/snonux/jsontrans/internal/languages"
	"codeberg.org/snonux/jsontrans/internal/processor"
	"codeberg.org/snonux/jsontrans/internal/translation"
)

// Run checks the API key, builds the pipeline from args and flags and runs
// it. Nothing is read, written or sent before the key check passes.
func Run(ctx context.Context, args []string, flags *Flags, apiKey string, stdout, stderr io.Writer) error {
	if err := CheckAPIKey(apiKey, stderr); err != nil {
		return err
	}

	if flags.ListLanguages {
		return listLanguages(ctx, args, flags, apiKey, stdout)
	}

	cfg, err := BuildConfig(args, flags)
	if err != nil {
		return err
	}

	client := translation.NewClient(apiKey, ClientOptions(flags)...)
	proc := processor.NewProcessor(cfg, client, stdout)

	summary, err := proc.Run(ctx)
	if err != nil {
		return err
	}

	if summary.DryRun {
		return nil
	}

	fmt.Fprintf(stdout, "translation successfully saved in %s\n", summary.OutputFile)
	if !cfg.Quiet {
		fmt.Fprintf(stdout, "Translated %d entries in %s\n", summary.Records, summary.Elapsed.Round(time.Millisecond))
	}
	return nil
}

// languageDisplayName is the language the names of listed languages are
// shown in
const languageDisplayName = "en"

func listLanguages(ctx context.Context, args []string, flags *Flags, apiKey string, stdout io.Writer) error {
	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	client := translation.NewClient(apiKey, ClientOptions(flags)...)
	return languages.NewLister(client, stdout).ListAvailableLanguages(ctx, languageDisplayName, filter)
}
