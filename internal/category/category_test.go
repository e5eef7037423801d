package category

import (
	"bytes"
	"strings"
	"testing"

	"tpb/internal/apperr"
)

func TestLoad(t *testing.T) {
	categories, err := Load()
	if err != nil {
		t.Fatalf("expected embedded table to parse, %s", err)
	}
	if len(categories) != 5 {
		t.Fatalf("expected 5 top-level categories, got=%d", len(categories))
	}
	if categories[1].Name != "Video" || categories[1].ID != 200 {
		t.Fatalf("expected Video/200 second, got=%+v", categories[1])
	}
}

func TestResolve(t *testing.T) {
	categories, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input    string
		expected int
	}{
		{input: "200", expected: 200},
		{input: "207", expected: 207},
		{input: "video", expected: 200},
		{input: "HD - Movies", expected: 207},
		{input: "games/pc", expected: 401},
		{input: "Applications/Handheld", expected: 304},
		{input: " flac ", expected: 104},
	}

	for _, tt := range tests {
		got, err := Resolve(categories, tt.input)
		if err != nil {
			t.Fatalf("expected %q to resolve, %s", tt.input, err)
		}
		if got.ID != tt.expected {
			t.Fatalf("expected %q to resolve to %d, got=%d", tt.input, tt.expected, got.ID)
		}
	}
}

func TestResolveErrors(t *testing.T) {
	categories, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{"999", "nonsense", "handheld", "audio/pc"} {
		if _, err := Resolve(categories, input); !apperr.Is(err, apperr.KindUsage) {
			t.Fatalf("expected usage error for %q, got=%v", input, err)
		}
	}
}

func TestPrint(t *testing.T) {
	categories, err := parse([]byte("categories:\n  - id: 100\n    name: Audio\n    children:\n      - {id: 101, name: Music}\n"))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	Print(&buf, categories)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got=%q", buf.String())
	}
	if lines[0] != "100   Audio" || lines[1] != "  101   Music" {
		t.Fatalf("unexpected listing %q", buf.String())
	}
}
