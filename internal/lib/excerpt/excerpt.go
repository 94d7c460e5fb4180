// Package excerpt derives short plain-text summaries from article bodies,
// which may contain HTML.
package excerpt

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from body and collapses whitespace runs.
func PlainText(body string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return strings.Join(strings.Fields(body), " ")
	}

	doc.Find("script, style").Remove()

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Make returns at most limit runes of the plain text of body, cut at a word
// boundary when possible and suffixed with "..." when shortened.
func Make(body string, limit int) string {
	text := PlainText(body)
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}

	return strings.TrimRight(cut, " .,;:") + "..."
}
