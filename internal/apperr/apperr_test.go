package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "config", err: Config("load", errors.New("bad json")), expected: KindConfig},
		{name: "network", err: Network("get", errors.New("Not Found")), expected: KindNetwork},
		{name: "wrapped parse", err: fmt.Errorf("search: %w", Parse("results", errors.New("x"))), expected: KindParse},
		{name: "plain", err: errors.New("boom"), expected: KindUnknown},
	}

	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.expected {
			t.Fatalf("%s: expected kind %v, got=%v", tt.name, tt.expected, got)
		}
	}
}

func TestNilErrorStaysNil(t *testing.T) {
	if err := Network("get", nil); err != nil {
		t.Fatalf("expected nil error, got=%v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Network("GET https://example.org", errors.New("Service Unavailable"))
	if got := err.Error(); got != "GET https://example.org: Service Unavailable" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{err: nil, expected: 0},
		{err: Platform("startup", errors.New("windows")), expected: 1},
		{err: Network("status", errors.New("Bad Gateway")), expected: 1},
		{err: Config("show", errors.New("unconfigured")), expected: 1},
		{err: errors.New("anything"), expected: 1},
	}

	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.expected {
			t.Fatalf("expected exit code %d for %v, got=%d", tt.expected, tt.err, got)
		}
	}
}
