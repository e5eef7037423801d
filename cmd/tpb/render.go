package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tpb/pkg/models"
)

var speedColors = map[models.SpeedLabel]*color.Color{
	models.VeryFast:     color.New(color.FgMagenta, color.Bold),
	models.Fast:         color.New(color.FgMagenta),
	models.Average:      color.New(color.FgYellow, color.Bold),
	models.Slow:         color.New(color.FgRed, color.Bold),
	models.NotAvailable: color.New(color.FgRed, color.Bold),
	models.Unclassified: color.New(color.Faint),
}

func printResult(w io.Writer, r models.SearchResult) {
	fmt.Fprintf(w, "%s (%s, SE %d, LE %d)\n", r.Title, r.Size, r.Seeders, r.Leechers)
}

func printMirror(w io.Writer, m models.MirrorStatus) {
	label := m.Label.String()
	if c, ok := speedColors[m.Label]; ok {
		label = c.Sprint(label)
	}
	fmt.Fprintf(w, "%-30s %s\n", m.Name, label)
}
