package nlp

import (
	"context"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"

	"github.com/textlab/textapi/pkg/models"
)

// Tokenize splits text into word tokens, dropping tokens made only of
// punctuation or symbols.
func (p *Provider) Tokenize(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(
		text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, models.NewProviderError("tokenize", err)
	}

	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		if isWord(tok.Text) {
			tokens = append(tokens, tok.Text)
		}
	}
	return tokens, nil
}

// isWord reports whether s holds at least one letter or digit.
func isWord(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
