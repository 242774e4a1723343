package sanitizer

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// autolinkRegex matches "<https://...>" autolinks from chat, mail and
// markdown, which the tokenizer would otherwise read as a start tag.
var autolinkRegex = regexp.MustCompile(`<(https?://[^\s<>]+)>`)

// PlainText flattens pasted rich text (HTML from a share sheet or a
// clipboard) into plain text. Link targets are kept: the href of every
// anchor is emitted ahead of the anchor's text, so a URL hidden behind
// "link" text survives flattening.
//
// Input without '<' is returned trimmed and otherwise untouched.
//
// Examples:
//   - `<a href="https://instagram.com/p/X/?igsh=1">look</a>` -> "https://instagram.com/p/X/?igsh=1 look"
//   - "<p>Hello <b>World</b></p>" -> "Hello World"
//   - "look <https://instagram.com/p/X>" -> "look https://instagram.com/p/X"
func PlainText(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || !strings.Contains(input, "<") {
		return input
	}
	input = autolinkRegex.ReplaceAllString(input, " $1 ")

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return strings.Join(strings.Fields(buf.String()), " ")
			}
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" && attr.Val != "" {
					buf.WriteString(" ")
					buf.WriteString(attr.Val)
					buf.WriteString(" ")
				}
			}
		case html.TextToken:
			buf.WriteString(tokenizer.Token().Data)
		}
	}
}
