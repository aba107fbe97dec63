package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveExcerpt(t *testing.T) {
	long := strings.Repeat("x", 200)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "strips nested tags and truncates",
			content: "<p>Hello <b>World</b> " + long + "</p>",
			want:    ("Hello World " + long)[:150] + "...",
		},
		{
			name:    "short content is kept whole",
			content: "<h1>Title</h1><p>Body</p>",
			want:    "TitleBody",
		},
		{
			name:    "exactly the limit gets no ellipsis",
			content: strings.Repeat("a", 150),
			want:    strings.Repeat("a", 150),
		},
		{
			name:    "one over the limit",
			content: strings.Repeat("a", 151),
			want:    strings.Repeat("a", 150) + "...",
		},
		{
			name:    "comments and doctype are dropped",
			content: "<!DOCTYPE html><!-- note --><div>text</div>",
			want:    "text",
		},
		{
			name:    "tags inside title are stripped",
			content: "<title><b>Hi</b></title> there",
			want:    "Hi there",
		},
		{
			name:    "tags inside textarea and xmp are stripped",
			content: "<textarea><i>a</i></textarea><xmp><u>b</u></xmp><noscript><p>c</p></noscript>",
			want:    "abc",
		},
		{
			name:    "plaintext runs to the end",
			content: "<plaintext><em>rest</em> of it",
			want:    "rest of it",
		},
		{
			name:    "lone angle bracket inside raw text",
			content: "<title>a < b</title>",
			want:    "a < b",
		},
		{
			name:    "entities are kept verbatim",
			content: "<p>Fish &amp; chips</p>",
			want:    "Fish &amp; chips",
		},
		{
			name:    "counts characters not bytes",
			content: "<p>" + strings.Repeat("é", 160) + "</p>",
			want:    strings.Repeat("é", 150) + "...",
		},
		{
			name:    "plain text",
			content: "no markup here",
			want:    "no markup here",
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveExcerpt(tt.content))
		})
	}
}

func TestStripMarkupKeepsSelfClosingSiblings(t *testing.T) {
	assert.Equal(t, "line oneline two", StripMarkup("line one<br/>line two"))
}
