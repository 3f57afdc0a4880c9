// Package nlp adapts third-party NLP libraries to the models.TextProvider contract.
//
// Tokenization and tagging use prose, lemmas come from the golem English
// dictionary, sentiment is scored with VADER and TF-IDF documents are built
// with stopwords removed.
package nlp

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jonreiter/govader"

	"github.com/textlab/textapi/internal"
	"github.com/textlab/textapi/pkg/models"
)

var log = internal.GetLogger()

// Force compiler to validate that Provider implements the TextProvider interface.
var _ models.TextProvider = &Provider{}

// Provider is the production TextProvider. It is safe for concurrent use.
type Provider struct {
	lemmatizer *golem.Lemmatizer
	sentiment  *govader.SentimentIntensityAnalyzer
}

// NewProvider loads the lemma dictionary and sentiment lexicon.
func NewProvider() (*Provider, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemma dictionary: %w", err)
	}

	log.Debug("NLP provider initialized")

	return &Provider{
		lemmatizer: lemmatizer,
		sentiment:  govader.NewSentimentIntensityAnalyzer(),
	}, nil
}

// NewCorpus returns an empty corpus that builds documents with this provider's tokenizer.
func (p *Provider) NewCorpus() models.Corpus {
	return NewCorpus(p)
}
