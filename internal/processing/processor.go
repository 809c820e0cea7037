package processing

import (
	"crypto/sha1"
	"encoding/hex"
	"html"
	"regexp"
	"strings"
)

var urlRegex = regexp.MustCompile(`https?://[^\s]+`)

var whitespace = regexp.MustCompile(`\s+`)

// RemoveURLs removes all URLs from the input text.
func RemoveURLs(input string) string {
	return urlRegex.ReplaceAllString(input, " ")
}

// CleanText decodes HTML entities, removes URLs, and squeezes whitespace.
// Punctuation is kept intact: the sentiment scorer uses it for emphasis.
func CleanText(input string) string {
	if input == "" {
		return ""
	}
	decoded := html.UnescapeString(input)
	decoded = RemoveURLs(decoded)
	decoded = whitespace.ReplaceAllString(decoded, " ")
	return strings.TrimSpace(decoded)
}

// BuildArticleID hashes the stable article fields to form deterministic IDs.
func BuildArticleID(title, url string) string {
	if title == "" && url == "" {
		return ""
	}
	s := sha1.Sum([]byte(title + "|" + url))
	return hex.EncodeToString(s[:])
}
