package nlp

import (
	"context"
)

// Lemma looks word up in the English lemma dictionary. When there is no entry
// word is returned unchanged with found set to false.
func (p *Provider) Lemma(ctx context.Context, word string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !p.lemmatizer.InDict(word) {
		return word, false, nil
	}
	return p.lemmatizer.Lemma(word), true, nil
}
