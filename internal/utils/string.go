package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var sizePattern = regexp.MustCompile(`Size [^,]*`)

// UTF-8 no-break space read as Latin-1 shows up as "Â" followed by a no-break space.
const mojibakeNBSP = "\u00c2\u00a0"

// ExtractSize returns the "Size ..." fragment of a result description,
// cleaned for display, or "" when the description carries no size.
func ExtractSize(description string) string {
	match := sizePattern.FindString(DecodeText(description))
	if match == "" {
		return ""
	}
	return CleanSize(match)
}

// CleanSize strips encoding artifacts from a size string. No-break spaces
// become plain spaces. Already clean input is returned unchanged.
func CleanSize(size string) string {
	cleaned := strings.ReplaceAll(size, mojibakeNBSP, " ")
	cleaned = norm.NFKC.String(cleaned)
	return strings.TrimSpace(cleaned)
}

// DecodeText returns s unchanged when it is valid UTF-8 and otherwise
// reinterprets its raw bytes as ISO-8859-1.
func DecodeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "")
	}
	return decoded
}

// JoinTerm turns the positional arguments of a command into one search term.
func JoinTerm(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeForFilesystem makes a search term safe to use as a file name.
func SanitizeForFilesystem(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-",
	)
	sanitized := replacer.Replace(name)
	sanitized = whitespaceRun.ReplaceAllString(strings.TrimSpace(sanitized), " ")

	if len(sanitized) > 200 {
		sanitized = sanitized[:200]
	}
	if sanitized == "" {
		sanitized = "search"
	}
	return sanitized
}
