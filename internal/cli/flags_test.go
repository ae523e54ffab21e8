package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", flags.LogLevel, "warn"},
		{"CacheSize", flags.CacheSize, 4096},
		{"EnglishPath", flags.EnglishPath, "en_ru_dic/en.txt"},
		{"RussianPath", flags.RussianPath, "en_ru_dic/ru.txt"},
		{"DeckName", flags.DeckName, "English Russian"},
		{"SuggestProvider", flags.SuggestProvider, "openai"},
		{"SuggestTimeout", flags.SuggestTimeout, 20 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"History", flags.History},
		{"Archive", flags.Archive},
		{"Reverse", flags.Reverse},
		{"Append", flags.Append},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"S3Region", flags.S3Region},
		{"HistoryDB", flags.HistoryDB},
		{"ExportAnki", flags.ExportAnki},
		{"Suggest", flags.Suggest},
		{"SuggestModel", flags.SuggestModel},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}
