package scrape

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"tpb/internal/apperr"
	"tpb/internal/logger"
	"tpb/internal/utils"
	"tpb/pkg/models"
)

const DefaultLimit = 10

// ParseResults returns at most limit results from a search results page, in
// document order. Rows without a link are skipped.
func ParseResults(r io.Reader, limit int) ([]models.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apperr.Parse("parse search results", err)
	}

	results := []models.SearchResult{}
	if limit <= 0 {
		return results, nil
	}

	matched := 0
	doc.Find(resultNameSelector).EachWithBreak(func(i int, name *goquery.Selection) bool {
		matched++
		if result, ok := parseResult(name); ok {
			results = append(results, result)
		}
		return matched < limit
	})

	logger.Debug("Parsed %d results from %d rows (limit %d)", len(results), matched, limit)
	return results, nil
}

func parseResult(name *goquery.Selection) (models.SearchResult, bool) {
	cell := name.Closest(resultCellSelector)

	title := name.Find(resultTitleSelector).First()
	if title.Length() == 0 {
		title = name
	}
	result := models.SearchResult{
		Title: utils.DecodeText(strings.TrimSpace(title.Text())),
	}

	link, ok := cell.Find(resultMagnetSelector).First().Attr("href")
	if !ok {
		link, ok = name.NextAllFiltered(resultAnchorSelector).First().Attr("href")
	}
	if !ok || link == "" {
		logger.Warn("Can't find link for %q, skipping", result.Title)
		return result, false
	}
	result.Link = link

	desc := cell.Find(resultDescSelector).First()
	if desc.Length() == 0 {
		desc = cell
	}
	result.Size = utils.ExtractSize(desc.Text())
	if result.Size == "" {
		logger.Warn("Can't find size for %q", result.Title)
	}

	counts := cell.NextAllFiltered(resultCellSelector)
	result.Seeders = parseCount(counts.Eq(0), "seeders", result.Title)
	result.Leechers = parseCount(counts.Eq(1), "leechers", result.Title)

	return result, true
}

func parseCount(cell *goquery.Selection, field, title string) int {
	if cell.Length() == 0 {
		logger.Warn("Can't find %s for %q", field, title)
		return 0
	}
	text := strings.TrimSpace(cell.Text())
	n, err := strconv.Atoi(text)
	if err != nil {
		logger.Warn("Invalid %s count %q for %q: %v", field, text, title, err)
		return 0
	}
	return n
}
