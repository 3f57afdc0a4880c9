package nlp

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/bbalet/stopwords"

	"github.com/textlab/textapi/pkg/models"
)

const stopwordsLang = "en"

// Force compiler to validate that Corpus implements the models.Corpus interface.
var _ models.Corpus = &Corpus{}

// Corpus is a TF-IDF document collection. Each document is the term frequency
// map of its lower-cased tokens with English stopwords removed.
//
// A term t of document d weighs
//
//	tfidf(t, d) = tf(t, d) × (1 + ln(N / (1 + df(t))))
//
// where N is the number of documents and df(t) the number holding t.
type Corpus struct {
	tokenizer models.Tokenizer

	mu        sync.Mutex
	documents []map[string]int
}

// NewCorpus returns an empty corpus that builds documents with tokenizer.
func NewCorpus(tokenizer models.Tokenizer) *Corpus {
	return &Corpus{tokenizer: tokenizer}
}

// AddDocument adds text to the corpus and returns its term weights, highest
// first with ties ordered by term.
func (c *Corpus) AddDocument(ctx context.Context, text string) ([]models.Keyword, error) {
	terms, err := c.buildDocument(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.documents = append(c.documents, terms)
	return c.listTerms(len(c.documents) - 1), nil
}

func (c *Corpus) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.documents)
}

func (c *Corpus) buildDocument(ctx context.Context, text string) (map[string]int, error) {
	tokens, err := c.tokenizer.Tokenize(ctx, strings.ToLower(text))
	if err != nil {
		return nil, err
	}

	terms := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		if isStopword(tok) {
			continue
		}
		terms[tok]++
	}
	return terms, nil
}

// listTerms must be called with c.mu held.
func (c *Corpus) listTerms(docIndex int) []models.Keyword {
	doc := c.documents[docIndex]
	keywords := make([]models.Keyword, 0, len(doc))
	for term, tf := range doc {
		keywords = append(keywords, models.Keyword{
			Term:  term,
			TFIDF: float64(tf) * c.idf(term),
		})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].TFIDF != keywords[j].TFIDF {
			return keywords[i].TFIDF > keywords[j].TFIDF
		}
		return keywords[i].Term < keywords[j].Term
	})
	return keywords
}

// idf must be called with c.mu held.
func (c *Corpus) idf(term string) float64 {
	var docFreq int
	for _, doc := range c.documents {
		if _, ok := doc[term]; ok {
			docFreq++
		}
	}
	n := float64(len(c.documents))
	return 1 + math.Log(n/float64(1+docFreq))
}

// isStopword reports whether nothing of tok survives stopword cleaning.
func isStopword(tok string) bool {
	return strings.TrimSpace(stopwords.CleanString(tok, stopwordsLang, false)) == ""
}
