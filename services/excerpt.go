package services

import (
	"strings"

	"golang.org/x/net/html"
)

// ExcerptLength is the number of characters kept from the stripped content.
const ExcerptLength = 150

// StripMarkup removes tags, comments and doctypes from content. Text between
// tags is kept verbatim, entities included. The result is only used for
// display previews and is not a sanitizer.
func StripMarkup(content string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	var result strings.Builder
	inRawText := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF once the reader is drained
			return result.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			inRawText = rawTextElements[string(name)]
		case html.TextToken:
			if inRawText {
				// the tokenizer does not parse tags inside these elements
				result.WriteString(StripMarkup(string(tokenizer.Raw())))
			} else {
				result.Write(tokenizer.Raw())
			}
			inRawText = false
		default:
			inRawText = false
		}
	}
}

// rawTextElements are the elements whose content the tokenizer returns as a single text token.
var rawTextElements = map[string]bool{
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"noscript":  true,
	"plaintext": true,
	"script":    true,
	"style":     true,
	"textarea":  true,
	"title":     true,
	"xmp":       true,
}

// DeriveExcerpt builds a post preview: the stripped content truncated to the
// first ExcerptLength characters, with "..." appended only when something was cut.
func DeriveExcerpt(content string) string {
	text := StripMarkup(content)
	runes := []rune(text)
	if len(runes) <= ExcerptLength {
		return text
	}
	return string(runes[:ExcerptLength]) + "..."
}
