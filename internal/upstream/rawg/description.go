package rawg

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	lineBreakTag      = regexp.MustCompile(`(?i)<br\s*/?>`)
	paragraphCloseTag = regexp.MustCompile(`(?i)</p\s*>`)
	paragraphOpenTag  = regexp.MustCompile(`(?i)<p(\s[^>]*)?>`)
)

// StripHTML turns an HTML description into plain text. Line and paragraph
// structure is rewritten to newlines before the remaining markup is dropped,
// otherwise it would be lost with the tags.
func StripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = lineBreakTag.ReplaceAllString(s, "\n")
	s = paragraphCloseTag.ReplaceAllString(s, "\n\n")
	s = paragraphOpenTag.ReplaceAllString(s, "")
	return strings.TrimSpace(textContent(s))
}

// textContent drops every tag and returns the entity-decoded text.
func textContent(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

func describe(d detailResponse) string {
	if raw := d.DescriptionRaw.String(); raw != "" {
		return raw
	}
	return StripHTML(string(d.Description))
}
