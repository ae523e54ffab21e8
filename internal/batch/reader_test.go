package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Entry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "texts",
			fileContent: `Hello world
Привет, мир!`,
			want: []Entry{
				{Line: 1, Text: "Hello world"},
				{Line: 2, Text: "Привет, мир!"},
			},
		},
		{
			name: "blank lines and comments keep line numbers",
			fileContent: `
# greetings
hello

  мир  
`,
			want: []Entry{
				{Line: 3, Text: "hello"},
				{Line: 5, Text: "мир"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "one\r\ntwo\r\nthree",
			want: []Entry{
				{Line: 1, Text: "one"},
				{Line: 2, Text: "two"},
				{Line: 3, Text: "three"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "batch.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_FileNotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestReadBatch_LongLine(t *testing.T) {
	long := strings.Repeat("word ", 20000)

	got, err := ReadBatch(strings.NewReader(long))
	if err != nil {
		t.Fatalf("ReadBatch() error = %v", err)
	}
	if len(got) != 1 || got[0].Text != strings.TrimSpace(long) {
		t.Errorf("Expected one long entry, got %d entries", len(got))
	}
}
