package domain

import (
	"errors"
	"testing"

	"gitlab.com/codefusion.net/internal/static/errs"
)

func TestResolveLanguageID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "python", input: "PYTHON", want: 71},
		{name: "lowercase", input: "javascript", want: 63},
		{name: "padded", input: "  Java  ", want: 62},
		{name: "unknown", input: "BRAINFUCK", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLanguageID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errs.UnsupportedLanguage) {
					t.Fatalf("expected UnsupportedLanguage, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected id %d, got %d", tt.want, got)
			}
		})
	}
}

func TestResolveLanguageName(t *testing.T) {
	name, err := ResolveLanguageName(71)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "PYTHON" {
		t.Fatalf("expected PYTHON, got %s", name)
	}

	if _, err := ResolveLanguageName(0); !errors.Is(err, errs.UnsupportedLanguage) {
		t.Fatalf("expected UnsupportedLanguage for id 0, got %v", err)
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	for _, name := range SupportedLanguages() {
		id, err := ResolveLanguageID(name)
		if err != nil {
			t.Fatalf("resolve id for %s failed: %v", name, err)
		}
		back, err := ResolveLanguageName(id)
		if err != nil {
			t.Fatalf("resolve name for %d failed: %v", id, err)
		}
		if back != name {
			t.Fatalf("round trip mismatch: %s -> %d -> %s", name, id, back)
		}
	}
}
