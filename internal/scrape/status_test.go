package scrape

import (
	"errors"
	"strings"
	"testing"

	"tpb/internal/apperr"
	"tpb/pkg/models"
)

func TestClassifySpeed(t *testing.T) {
	tests := []struct {
		input    string
		expected models.SpeedLabel
	}{
		{input: "0.9", expected: models.VeryFast},
		{input: "0", expected: models.VeryFast},
		{input: "2.0", expected: models.Fast},
		{input: "1.6", expected: models.Fast},
		{input: "3.0", expected: models.Average},
		{input: "4.99", expected: models.Average},
		{input: "6.0", expected: models.Slow},
		{input: "N/A", expected: models.NotAvailable},
		{input: " 2.0 ", expected: models.Fast},
		{input: "1.5", expected: models.Unclassified},
		{input: "2.5", expected: models.Unclassified},
		{input: "5.0", expected: models.Unclassified},
	}

	for _, tt := range tests {
		got, err := ClassifySpeed(tt.input)
		if err != nil {
			t.Fatalf("expected %q to classify, %s", tt.input, err)
		}
		if got != tt.expected {
			t.Fatalf("expected %q to be %v, got=%v", tt.input, tt.expected, got)
		}
	}
}

func TestClassifySpeedInvalid(t *testing.T) {
	if _, err := ClassifySpeed("fast"); err == nil {
		t.Fatalf("expected error for non-numeric speed")
	}
}

func TestParseStatus(t *testing.T) {
	lastUpdated, mirrors, err := ParseStatus(openFixture(t, "status.html"))
	if err != nil {
		t.Fatalf("expected to parse status page, %s", err)
	}

	if lastUpdated != "2026-10-16 09:41:00 UTC" {
		t.Fatalf("expected status date, got=%q", lastUpdated)
	}

	expected := []models.MirrorStatus{
		{Name: "fast.example", Speed: "0.9", Label: models.VeryFast},
		{Name: "quick.example", Speed: "2.0", Label: models.Fast},
		{Name: "okay.example", Speed: "3.0", Label: models.Average},
		{Name: "slow.example", Speed: "6.0", Label: models.Slow},
		{Name: "down.example", Speed: "N/A", Label: models.NotAvailable},
	}
	if len(mirrors) != len(expected) {
		t.Fatalf("expected %d mirrors, got=%d", len(expected), len(mirrors))
	}
	for i := range expected {
		if mirrors[i] != expected[i] {
			t.Fatalf("mirror %d: expected %+v, got=%+v", i, expected[i], mirrors[i])
		}
	}
}

func TestParseStatusMissingTable(t *testing.T) {
	_, _, err := ParseStatus(strings.NewReader("<html><body>maintenance</body></html>"))
	if !apperr.Is(err, apperr.KindParse) {
		t.Fatalf("expected parse error, got=%v", err)
	}
	if !errors.Is(err, ErrMissingTable) {
		t.Fatalf("expected ErrMissingTable, got=%v", err)
	}
}

func TestParseStatusInvalidSpeed(t *testing.T) {
	page := `<table id="searchResult"><tr><td><a class="t1">x.example</a></td><td class="speed">soon</td></tr></table>`
	if _, _, err := ParseStatus(strings.NewReader(page)); !apperr.Is(err, apperr.KindParse) {
		t.Fatalf("expected parse error, got=%v", err)
	}
}
