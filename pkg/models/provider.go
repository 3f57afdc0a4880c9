package models

import (
	"context"
)

// TextProvider is the set of NLP capabilities the API forwards text to.
// Implementations must be safe for concurrent use.
type TextProvider interface {
	Tokenizer
	Lemmatizer
	Tagger
	SentimentScorer
	KeywordWeigher
}

type Tokenizer interface {
	// Tokenize splits text into word tokens. Purely punctuational tokens are dropped.
	Tokenize(ctx context.Context, text string) ([]string, error)
}

type Lemmatizer interface {
	// Lemma returns the dictionary form of word. found is false when the
	// dictionary holds no entry for word.
	Lemma(ctx context.Context, word string) (lemma string, found bool, err error)
}

type Tagger interface {
	// Tag returns every word of text paired with its Penn Treebank part-of-speech tag.
	Tag(ctx context.Context, text string) ([]TaggedWord, error)
}

type SentimentScorer interface {
	// Sentiment scores tokens against a polarity lexicon. Positive is favourable.
	Sentiment(ctx context.Context, tokens []string) (float64, error)
}

type KeywordWeigher interface {
	// NewCorpus returns an empty TF-IDF corpus.
	NewCorpus() Corpus
}

// Corpus accumulates documents and weighs the terms of each against all of them.
type Corpus interface {
	// AddDocument adds text as a new document and returns the TF-IDF weights of its
	// terms, highest first. Adding and weighing happen atomically.
	AddDocument(ctx context.Context, text string) ([]Keyword, error)
	// Len returns the number of documents in the corpus.
	Len() int
}
