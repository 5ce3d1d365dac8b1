package extractor

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain lines",
			input: "a;1\nb;2\n",
			want:  []string{"a;1", "b;2"},
		},
		{
			name:  "BOM stripped",
			input: "\xef\xbb\xbfDatum;2025-06-12\n",
			want:  []string{"Datum;2025-06-12"},
		},
		{
			name:  "CRLF normalized",
			input: "a;1\r\nb;2\r\n",
			want:  []string{"a;1", "b;2"},
		},
		{
			name:  "quotes stripped",
			input: "\"Datum\";\"2025-06-12\"\n",
			want:  []string{"Datum;2025-06-12"},
		},
		{
			name:  "blank lines dropped",
			input: "a;1\n\n   \nb;2\n\n",
			want:  []string{"a;1", "b;2"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbf\"Datum\";\"2025-06-12\"\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(lines, []string{"Datum;2025-06-12"}) {
		t.Errorf("got %v", lines)
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
