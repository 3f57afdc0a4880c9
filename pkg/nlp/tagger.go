package nlp

import (
	"context"

	"github.com/jdkato/prose/v2"

	"github.com/textlab/textapi/pkg/models"
)

// Tag returns every token of text, punctuation included, with its Penn Treebank tag.
func (p *Provider) Tag(ctx context.Context, text string) ([]models.TaggedWord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(
		text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, models.NewProviderError("tag", err)
	}

	tokens := doc.Tokens()
	tagged := make([]models.TaggedWord, len(tokens))
	for i, tok := range tokens {
		tagged[i] = models.TaggedWord{Word: tok.Text, Tag: tok.Tag}
	}
	return tagged, nil
}
