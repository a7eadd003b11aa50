package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "page.html")
	if err := os.WriteFile(file, []byte("<p>from file</p>\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	empty := filepath.Join(dir, "empty.html")
	if err := os.WriteFile(empty, []byte(" \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name    string
		src     Source
		want    string
		wantErr string
	}{
		{
			name: "file takes precedence",
			src:  Source{File: file, Value: "<p>inline</p>", Reader: strings.NewReader("stdin")},
			want: "<p>from file</p>\n",
		},
		{
			name: "value beats reader",
			src:  Source{Value: "<p>inline</p>", Reader: strings.NewReader("stdin")},
			want: "<p>inline</p>",
		},
		{
			name: "reader is the fallback",
			src:  Source{Reader: strings.NewReader("<b>stdin</b>")},
			want: "<b>stdin</b>",
		},
		{
			name:    "nothing configured",
			src:     Source{Name: "page"},
			wantErr: "page is not provided",
		},
		{
			name:    "empty file",
			src:     Source{File: empty},
			wantErr: "is empty",
		},
		{
			name:    "missing file",
			src:     Source{File: filepath.Join(dir, "missing.html")},
			wantErr: "reading input from file",
		},
		{
			name:    "reader error",
			src:     Source{Reader: failingReader{}},
			wantErr: "broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
