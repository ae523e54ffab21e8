package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/naivetrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "naivetrans [text]",
		Short: "Naive word-by-word English/Russian translator",
		Long: `naivetrans translates English to Russian and Russian to English,
word by word, using a parallel word list. The input language is detected
automatically. Unknown words are replaced by the most similar dictionary word.

Examples:
  naivetrans                          # Start an interactive session (default)
  naivetrans "hello world"            # Translate a single text
  naivetrans --batch texts.txt        # Translate every line of a file
  naivetrans --suggest кошка --append # Ask an LLM and extend the word lists`,
		Args:         cobra.MaximumNArgs(1),
		Version:      internal.Version,
		SilenceUsage: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// DefaultHistoryDB returns the default location of the history database
func DefaultHistoryDB() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "naivetrans", "history.db")
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.naivetrans.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Lexicon flags
	cmd.Flags().StringVar(&flags.EnglishPath, "en", flags.EnglishPath, "English word list (local path or s3://bucket/key)")
	cmd.Flags().StringVar(&flags.RussianPath, "ru", flags.RussianPath, "Russian word list, line-aligned with --en")
	cmd.Flags().StringVar(&flags.S3Region, "s3-region", "", "AWS region for s3:// word lists (default: from AWS config)")
	cmd.Flags().IntVar(&flags.CacheSize, "cache-size", flags.CacheSize, "Number of fuzzy matches to cache (0 disables the cache)")

	// Input flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate texts from file (one per line)")

	// History flags
	cmd.Flags().BoolVar(&flags.History, "history", false, "Record translations in the history database")
	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", DefaultHistoryDB(), "History database path")
	cmd.Flags().IntVar(&flags.ShowHistory, "show-history", 0, "Print the N most recent translations and exit")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the history database and exit")

	// Anki flags
	cmd.Flags().StringVar(&flags.ExportAnki, "export-anki", "", "Export the lexicon as an Anki CSV file and exit")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name used as card tag and default file name")
	cmd.Flags().BoolVar(&flags.Reverse, "reverse", false, "Also export Russian to English cards")

	// Suggestion flags
	cmd.Flags().StringVar(&flags.Suggest, "suggest", "", "Ask a language model to translate WORD and exit")
	cmd.Flags().StringVar(&flags.SuggestProvider, "suggest-provider", flags.SuggestProvider, "Suggestion provider: openai or gemini")
	cmd.Flags().StringVar(&flags.SuggestModel, "suggest-model", "", "Model used for suggestions (default: gpt-4o-mini or gemini-2.0-flash)")
	cmd.Flags().DurationVar(&flags.SuggestTimeout, "suggest-timeout", flags.SuggestTimeout, "Timeout for a suggestion request")
	cmd.Flags().BoolVar(&flags.Append, "append", false, "Append the suggested pair to both word lists")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

// viperKeys maps config keys to flag names
var viperKeys = map[string]string{
	"log.level":          "log-level",
	"lexicon.english":    "en",
	"lexicon.russian":    "ru",
	"lexicon.s3_region":  "s3-region",
	"lexicon.cache_size": "cache-size",
	"history.enabled":    "history",
	"history.database":   "history-db",
	"anki.deck_name":     "deck-name",
	"suggest.provider":   "suggest-provider",
	"suggest.model":      "suggest-model",
	"suggest.timeout":    "suggest-timeout",
}

func bindFlagsToViper(cmd *cobra.Command) {
	for key, name := range viperKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		if flag != nil {
			viper.BindPFlag(key, flag)
		}
	}
}

// ApplyConfig copies config file and environment values into flags. Flags
// given on the command line win over both.
func ApplyConfig(flags *Flags) {
	flags.LogLevel = viper.GetString("log.level")
	flags.EnglishPath = viper.GetString("lexicon.english")
	flags.RussianPath = viper.GetString("lexicon.russian")
	flags.S3Region = viper.GetString("lexicon.s3_region")
	flags.CacheSize = viper.GetInt("lexicon.cache_size")
	flags.History = viper.GetBool("history.enabled")
	flags.HistoryDB = viper.GetString("history.database")
	flags.DeckName = viper.GetString("anki.deck_name")
	flags.SuggestProvider = viper.GetString("suggest.provider")
	flags.SuggestModel = viper.GetString("suggest.model")
	flags.SuggestTimeout = viper.GetDuration("suggest.timeout")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".naivetrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".naivetrans")
	}

	// Environment variables
	viper.SetEnvPrefix("NAIVETRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("suggest.gemini_key")
}
