package scrape

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tpb/internal/apperr"
	"tpb/internal/logger"
	"tpb/pkg/models"
)

var ErrMissingTable = errors.New("mirror table not found")

// ParseStatus reads the mirror directory page: the time the directory was
// last updated and the speed of every listed mirror.
func ParseStatus(r io.Reader) (string, []models.MirrorStatus, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", nil, apperr.Parse("parse mirror status", err)
	}

	lastUpdated := extractStatusDate(doc)

	table := doc.Find(statusTableSelector).First()
	if table.Length() == 0 {
		return lastUpdated, nil, apperr.Parse("parse mirror status", ErrMissingTable)
	}

	var (
		mirrors []models.MirrorStatus
		rowErr  error
	)
	table.Find(statusRowSelector).EachWithBreak(func(i int, row *goquery.Selection) bool {
		site := row.Find(statusNameSelector).First()
		if site.Length() == 0 {
			return true
		}
		name := strings.TrimSpace(site.Text())

		speedCell := row.Find(statusSpeedSelector).First()
		if speedCell.Length() == 0 {
			logger.Warn("No speed reported for mirror %s, skipping", name)
			return true
		}
		speed := strings.TrimSpace(speedCell.Text())

		label, err := ClassifySpeed(speed)
		if err != nil {
			rowErr = apperr.Parse("parse mirror status", fmt.Errorf("mirror %s: %w", name, err))
			return false
		}
		mirrors = append(mirrors, models.MirrorStatus{Name: name, Speed: speed, Label: label})
		return true
	})
	if rowErr != nil {
		return lastUpdated, nil, rowErr
	}

	return lastUpdated, mirrors, nil
}

func extractStatusDate(doc *goquery.Document) string {
	var date string
	doc.Find(statusScriptSelector).EachWithBreak(func(i int, script *goquery.Selection) bool {
		text := script.Text()
		offset := strings.Index(text, statusDateMarker)
		if offset < 0 {
			return true
		}
		rest := text[offset+len(statusDateMarker):]
		if end := strings.Index(rest, statusDateTerminator); end >= 0 {
			rest = rest[:end]
		}
		date = strings.TrimSpace(rest)
		return false
	})
	return date
}

// ClassifySpeed maps the speed column of the mirror directory to a label.
// The exact boundaries 1.5, 2.5 and 5.0 are reported as Unclassified.
func ClassifySpeed(text string) (models.SpeedLabel, error) {
	text = strings.TrimSpace(text)
	if text == statusNotAvailable {
		return models.NotAvailable, nil
	}

	speed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return models.Unclassified, fmt.Errorf("invalid speed %q", text)
	}

	switch {
	case speed < 1.5:
		return models.VeryFast, nil
	case speed > 1.5 && speed < 2.5:
		return models.Fast, nil
	case speed > 2.5 && speed < 5.0:
		return models.Average, nil
	case speed > 5.0:
		return models.Slow, nil
	default:
		return models.Unclassified, nil
	}
}
