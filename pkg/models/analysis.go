package models

import (
	"encoding/json"
	"fmt"
)

// TaggedWord is a word and its part-of-speech tag. It is encoded as the
// two element JSON array [word, tag].
type TaggedWord struct {
	Word string
	Tag  string
}

func (tw TaggedWord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{tw.Word, tw.Tag})
}

func (tw *TaggedWord) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("tagged word must have 2 elements, got %d", len(pair))
	}
	tw.Word, tw.Tag = pair[0], pair[1]
	return nil
}

// Keyword is a document term and its TF-IDF weight.
type Keyword struct {
	Term  string  `json:"term"`
	TFIDF float64 `json:"tfidf"`
}

// Penn Treebank noun tags.
const (
	TagNounSingular       = "NN"
	TagNounPlural         = "NNS"
	TagProperNounSingular = "NNP"
	TagProperNounPlural   = "NNPS"
)

// IsNoun reports whether tag is a common or proper noun tag.
func IsNoun(tag string) bool {
	switch tag {
	case TagNounSingular, TagNounPlural, TagProperNounSingular, TagProperNounPlural:
		return true
	}
	return false
}
