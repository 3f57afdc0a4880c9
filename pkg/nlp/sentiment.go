package nlp

import (
	"context"
	"strings"
)

// Sentiment returns the VADER compound score of tokens, in [-1, 1].
// An empty token list is neutral.
func (p *Provider) Sentiment(ctx context.Context, tokens []string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}
	scores := p.sentiment.PolarityScores(strings.Join(tokens, " "))
	return scores.Compound, nil
}
