// Package analysis composes the TextProvider capabilities into the operations
// served by the API.
package analysis

import (
	"context"
	"errors"

	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/textlab/textapi/internal"
	"github.com/textlab/textapi/pkg/models"
)

var log = internal.GetLogger()

var tracer = otel.Tracer("github.com/textlab/textapi/pkg/analysis")

// WordCount returns the number of whitespace separated words in text.
func WordCount(text string) int {
	return len(Words(text))
}

// Tokenize returns the provider's word tokens for text.
func Tokenize(ctx context.Context, appState *models.AppState, text string) ([]string, error) {
	tokens, err := appState.Provider.Tokenize(ctx, text)
	if err != nil {
		return nil, providerError("tokenize", err)
	}
	return tokens, nil
}

// Stem returns the dictionary lemma of every StemTokens token, in token order.
// Tokens without a dictionary entry are returned unchanged. Lookups run
// concurrently, at most nlp.stem_concurrency at a time.
func Stem(ctx context.Context, appState *models.AppState, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := StemTokens(text)
	ctx, span := tracer.Start(
		ctx,
		"analysis.Stem",
		trace.WithAttributes(attribute.Int("textapi.stem.tokens", len(tokens))),
	)
	defer span.End()

	// conc only defaults a zero cap; a negative one would start no workers
	maxGoroutines := appState.Config.NLP.StemConcurrency
	if maxGoroutines < 0 {
		maxGoroutines = 0
	}
	mapper := iter.Mapper[string, string]{MaxGoroutines: maxGoroutines}

	stems, err := mapper.MapErr(tokens, func(token *string) (string, error) {
		lemma, found, err := appState.Provider.Lemma(ctx, *token)
		if err != nil {
			return "", err
		}
		if !found {
			return *token, nil
		}
		return lemma, nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, providerError("lemma", err)
	}

	log.Debugf("stemmed %d tokens", len(stems))
	return stems, nil
}

// Tag returns every word of text with its part-of-speech tag.
func Tag(ctx context.Context, appState *models.AppState, text string) ([]models.TaggedWord, error) {
	tagged, err := appState.Provider.Tag(ctx, text)
	if err != nil {
		return nil, providerError("tag", err)
	}
	return tagged, nil
}

// Nouns returns the distinct words of text tagged as common or proper nouns,
// in order of first occurrence. It is a heuristic stand-in for named entity
// recognition: every noun counts.
func Nouns(ctx context.Context, appState *models.AppState, text string) ([]string, error) {
	tagged, err := Tag(ctx, appState, text)
	if err != nil {
		return nil, err
	}

	nouns := internal.Filter(tagged, func(tw models.TaggedWord) bool {
		return models.IsNoun(tw.Tag)
	})
	words := make([]string, len(nouns))
	for i, tw := range nouns {
		words[i] = tw.Word
	}
	return internal.Unique(words), nil
}

// Sentiment scores the whitespace separated words of text.
func Sentiment(ctx context.Context, appState *models.AppState, text string) (float64, error) {
	score, err := appState.Provider.Sentiment(ctx, Words(text))
	if err != nil {
		return 0, providerError("sentiment", err)
	}
	return score, nil
}

// Keywords adds text to a corpus and returns its TF-IDF term weights. The
// corpus is the shared one when configured, otherwise a new corpus holding
// only text.
func Keywords(ctx context.Context, appState *models.AppState, text string) ([]models.Keyword, error) {
	corpus := appState.SharedCorpus
	shared := corpus != nil
	if !shared {
		corpus = appState.Provider.NewCorpus()
	}

	ctx, span := tracer.Start(
		ctx,
		"analysis.Keywords",
		trace.WithAttributes(attribute.Bool("textapi.keywords.shared_corpus", shared)),
	)
	defer span.End()

	keywords, err := corpus.AddDocument(ctx, text)
	if err != nil {
		span.RecordError(err)
		return nil, providerError("keywords", err)
	}
	span.SetAttributes(attribute.Int("textapi.keywords.terms", len(keywords)))
	return keywords, nil
}

func providerError(op string, err error) error {
	if errors.Is(err, models.ErrProvider) {
		return err
	}
	return models.NewProviderError(op, err)
}
