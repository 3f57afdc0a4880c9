package nlp

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textlab/textapi/pkg/models"
)

func weights(keywords []models.Keyword) map[string]float64 {
	w := make(map[string]float64, len(keywords))
	for _, k := range keywords {
		w[k.Term] = k.TFIDF
	}
	return w
}

func TestCorpusSingleDocument(t *testing.T) {
	corpus := NewCorpus(NewMockProvider())

	keywords, err := corpus.AddDocument(context.Background(), "cat cat dog")
	require.NoError(t, err)
	require.Len(t, keywords, 2)

	assert.Equal(t, "cat", keywords[0].Term)
	assert.Equal(t, "dog", keywords[1].Term)
	assert.Greater(t, keywords[0].TFIDF, keywords[1].TFIDF)
	assert.InDelta(t, 2*keywords[1].TFIDF, keywords[0].TFIDF, 1e-9)
	for _, k := range keywords {
		assert.GreaterOrEqual(t, k.TFIDF, 0.0)
	}
}

func TestCorpusRemovesStopwordsAndLowercases(t *testing.T) {
	corpus := NewCorpus(NewMockProvider())

	keywords, err := corpus.AddDocument(context.Background(), "The Cat and the DOG")
	require.NoError(t, err)

	w := weights(keywords)
	assert.Contains(t, w, "cat")
	assert.Contains(t, w, "dog")
	assert.NotContains(t, w, "the")
	assert.NotContains(t, w, "and")
}

func TestCorpusAccumulates(t *testing.T) {
	corpus := NewCorpus(NewMockProvider())
	ctx := context.Background()

	_, err := corpus.AddDocument(ctx, "cat dog")
	require.NoError(t, err)
	keywords, err := corpus.AddDocument(ctx, "cat bird")
	require.NoError(t, err)

	w := weights(keywords)
	// cat appears in both documents, bird only in the second
	assert.Greater(t, w["bird"], w["cat"])
	assert.Equal(t, 2, corpus.Len())
}

func TestCorpusEqualWeightsSortByTerm(t *testing.T) {
	corpus := NewCorpus(NewMockProvider())

	keywords, err := corpus.AddDocument(context.Background(), "zebra apple mango")
	require.NoError(t, err)

	terms := make([]string, len(keywords))
	for i, k := range keywords {
		terms[i] = k.Term
	}
	assert.Equal(t, []string{"apple", "mango", "zebra"}, terms)
}

func TestCorpusConcurrentAdds(t *testing.T) {
	corpus := NewCorpus(NewMockProvider())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			keywords, err := corpus.AddDocument(ctx, fmt.Sprintf("word%d shared", i))
			assert.NoError(t, err)
			assert.Len(t, keywords, 2)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, corpus.Len())
}

func TestCorpusTokenizerError(t *testing.T) {
	mock := NewMockProvider()
	mock.Err = assert.AnError
	corpus := NewCorpus(mock)

	_, err := corpus.AddDocument(context.Background(), "cat")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, corpus.Len())
}

func TestProviderCorpus(t *testing.T) {
	p := provider(t)

	keywords, err := p.NewCorpus().AddDocument(context.Background(), "cat cat dog")
	require.NoError(t, err)

	w := weights(keywords)
	assert.Greater(t, w["cat"], w["dog"])
}
