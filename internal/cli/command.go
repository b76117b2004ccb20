package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/jsontrans/internal"
)

// APIKeyEnv is the environment variable holding the translation API token
const APIKeyEnv = "GKEY"

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsontrans [input-file] [target-lang]",
		Short: "JSON dictionary translator",
		Long: `jsontrans translates the values of a flat JSON dictionary with the
Google Cloud Translation API and writes the result to a new file.

Entries are translated one at a time with a short pause before every
request to stay below the API's rate limits. The API token is read from
the GKEY environment variable (or api.key in the config file).

Examples:
  jsontrans                              # translate ./translate_pl.json to German
  jsontrans strings.json fr              # writes translated_fr.json
  jsontrans strings.json es -o es.json   # custom output file
  jsontrans --dry-run strings.json it    # show what would be translated
  jsontrans --list-languages chinese     # find a language code`,
		Args:          cobra.MaximumNArgs(2),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.jsontrans.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Output file (default translated_<lang>.json)")
	cmd.Flags().BoolVar(&flags.Compact, "compact", false, "Write the output on a single line")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Read and validate the input, then list what would be translated")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print every source and translated string")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Only print the final result")
	cmd.Flags().BoolVar(&flags.Backup, "backup", false, "Move an existing output file to archive/ instead of overwriting it")
	cmd.Flags().BoolVar(&flags.ListLanguages, "list-languages", false, "List supported target languages, optionally filtered by the first argument")

	// Translation API flags
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", flags.Endpoint, "Translation API endpoint")
	cmd.Flags().StringVar(&flags.SourceLang, "source", "", "Source language code (default: detected by the API)")
	cmd.Flags().StringVar(&flags.Format, "format", "", "Text format sent to the API: text or html (default: API default)")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause before every request")
	cmd.Flags().Float64Var(&flags.RateLimit, "rate", 0, "Requests per second; replaces --delay when set")
	cmd.Flags().IntVarP(&flags.Concurrency, "concurrency", "c", flags.Concurrency, "Number of entries translated at once")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "HTTP timeout per request (0 means no timeout)")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.compact", cmd.Flags().Lookup("compact"))
	viper.BindPFlag("output.backup", cmd.Flags().Lookup("backup"))
	viper.BindPFlag("translate.endpoint", cmd.Flags().Lookup("endpoint"))
	viper.BindPFlag("translate.source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("translate.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("translate.delay", cmd.Flags().Lookup("delay"))
	viper.BindPFlag("translate.rate", cmd.Flags().Lookup("rate"))
	viper.BindPFlag("translate.concurrency", cmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("translate.timeout", cmd.Flags().Lookup("timeout"))
}

// LoadFlagsFromViper copies values from the config file and environment
// into flags. Flags given on the command line win because viper reports
// their value for bound keys.
func LoadFlagsFromViper(flags *Flags) {
	if viper.IsSet("output.file") {
		flags.OutputFile = viper.GetString("output.file")
	}
	if viper.IsSet("output.compact") {
		flags.Compact = viper.GetBool("output.compact")
	}
	if viper.IsSet("output.backup") {
		flags.Backup = viper.GetBool("output.backup")
	}
	if viper.IsSet("translate.endpoint") {
		flags.Endpoint = viper.GetString("translate.endpoint")
	}
	if viper.IsSet("translate.source") {
		flags.SourceLang = viper.GetString("translate.source")
	}
	if viper.IsSet("translate.format") {
		flags.Format = viper.GetString("translate.format")
	}
	if viper.IsSet("translate.delay") {
		flags.Delay = viper.GetDuration("translate.delay")
	}
	if viper.IsSet("translate.rate") {
		flags.RateLimit = viper.GetFloat64("translate.rate")
	}
	if viper.IsSet("translate.concurrency") {
		flags.Concurrency = viper.GetInt("translate.concurrency")
	}
	if viper.IsSet("translate.timeout") {
		flags.Timeout = viper.GetDuration("translate.timeout")
	}
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	// A .env file in the working directory may hold the API token.
	// Variables already set in the environment take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".jsontrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jsontrans")
	}

	// Environment variables, e.g. JSONTRANS_TRANSLATE_DELAY=100ms
	viper.SetEnvPrefix("JSONTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the translation API token from environment or config
func GetAPIKey() string {
	// First check environment variable
	if key := os.Getenv(APIKeyEnv); key != "" {
		return key
	}

	// Then check config file (or JSONTRANS_API_KEY)
	return viper.GetString("api.key")
}
