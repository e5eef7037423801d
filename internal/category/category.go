// Package category resolves the --category flag against the index's
// category table.
package category

import (
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tpb/internal/apperr"
	"tpb/pkg/models"
)

//go:embed categories.yml
var categoriesYAML []byte

type table struct {
	Categories []models.Category `yaml:"categories"`
}

// Load parses the embedded category table.
func Load() ([]models.Category, error) {
	return parse(categoriesYAML)
}

func parse(data []byte) ([]models.Category, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse category table: %w", err)
	}
	return t.Categories, nil
}

// Resolve accepts a numeric id or a name. Child names may be qualified
// with their parent ("video/hd - movies") since names repeat across parents.
// Matching is case-insensitive.
func Resolve(categories []models.Category, input string) (models.Category, error) {
	input = strings.TrimSpace(input)
	if id, err := strconv.Atoi(input); err == nil {
		for _, c := range flatten(categories) {
			if c.ID == id {
				return c, nil
			}
		}
		return models.Category{}, apperr.Usage("resolve category", fmt.Errorf("unknown category id %d", id))
	}

	parent, child, qualified := strings.Cut(input, "/")
	for _, top := range categories {
		if !qualified {
			if strings.EqualFold(top.Name, input) {
				return top, nil
			}
			continue
		}
		if !strings.EqualFold(top.Name, strings.TrimSpace(parent)) {
			continue
		}
		for _, c := range top.Children {
			if strings.EqualFold(c.Name, strings.TrimSpace(child)) {
				return c, nil
			}
		}
	}

	if !qualified {
		var matches []models.Category
		for _, top := range categories {
			for _, c := range top.Children {
				if strings.EqualFold(c.Name, input) {
					matches = append(matches, c)
				}
			}
		}
		if len(matches) == 1 {
			return matches[0], nil
		}
		if len(matches) > 1 {
			return models.Category{}, apperr.Usage("resolve category",
				fmt.Errorf("category %q is ambiguous, use its id or <parent>/<name>", input))
		}
	}

	return models.Category{}, apperr.Usage("resolve category", fmt.Errorf("unknown category %q", input))
}

func flatten(categories []models.Category) []models.Category {
	var all []models.Category
	for _, c := range categories {
		all = append(all, c)
		all = append(all, c.Children...)
	}
	return all
}

// Print writes the category tree, one category per line.
func Print(w io.Writer, categories []models.Category) {
	for _, top := range categories {
		fmt.Fprintf(w, "%-5d %s\n", top.ID, top.Name)
		for _, c := range top.Children {
			fmt.Fprintf(w, "  %-5d %s\n", c.ID, c.Name)
		}
	}
}
