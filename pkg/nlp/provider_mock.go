package nlp

import (
	"context"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/textlab/textapi/pkg/models"
)

var _ models.TextProvider = &MockProvider{}

// MockProvider is a deterministic TextProvider for tests. Text is split on
// anything that is not a letter or digit, every word is tagged with Tags[word]
// (default "NN") and lemmas come from Lemmas.
type MockProvider struct {
	Lemmas         map[string]string
	LemmaDelays    map[string]time.Duration
	Tags           map[string]string
	SentimentScore float64
	// Err, when set, is returned by every capability.
	Err error

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Lemmas:      map[string]string{},
		LemmaDelays: map[string]time.Duration{},
		Tags:        map[string]string{},
	}
}

func (m *MockProvider) Tokenize(_ context.Context, text string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return mockSplit(text), nil
}

func (m *MockProvider) Lemma(ctx context.Context, word string) (string, bool, error) {
	n := m.inFlight.Add(1)
	defer m.inFlight.Add(-1)
	for {
		peak := m.maxInFlight.Load()
		if n <= peak || m.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}

	if d, ok := m.LemmaDelays[word]; ok {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return "", false, ctx.Err()
		}
	}
	if m.Err != nil {
		return "", false, m.Err
	}
	lemma, ok := m.Lemmas[word]
	if !ok {
		return word, false, nil
	}
	return lemma, true, nil
}

// MaxConcurrentLemmas returns the highest number of Lemma calls seen running at once.
func (m *MockProvider) MaxConcurrentLemmas() int {
	return int(m.maxInFlight.Load())
}

func (m *MockProvider) Tag(_ context.Context, text string) ([]models.TaggedWord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	words := mockSplit(text)
	tagged := make([]models.TaggedWord, len(words))
	for i, w := range words {
		tag, ok := m.Tags[w]
		if !ok {
			tag = models.TagNounSingular
		}
		tagged[i] = models.TaggedWord{Word: w, Tag: tag}
	}
	return tagged, nil
}

func (m *MockProvider) Sentiment(_ context.Context, _ []string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.SentimentScore, nil
}

func (m *MockProvider) NewCorpus() models.Corpus {
	return NewCorpus(m)
}

func mockSplit(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
