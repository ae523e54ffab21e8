package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	BatchFile string
	LogLevel  string
	CacheSize int

	// Lexicon flags
	EnglishPath string
	RussianPath string
	S3Region    string

	// History flags
	History     bool
	HistoryDB   string
	ShowHistory int
	Archive     bool

	// Anki export flags
	ExportAnki string
	DeckName   string
	Reverse    bool

	// Suggestion flags
	Suggest         string
	SuggestProvider string
	SuggestModel    string
	SuggestTimeout  time.Duration
	Append          bool
	ListModels      bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:        "warn",
		CacheSize:       4096,
		EnglishPath:     "en_ru_dic/en.txt",
		RussianPath:     "en_ru_dic/ru.txt",
		DeckName:        "English Russian",
		SuggestProvider: "openai",
		SuggestTimeout:  20 * time.Second,
	}
}
