package models

import (
	"github.com/textlab/textapi/config"
)

// AppState is a struct that holds the state of the application
// Use cmd.NewAppState to create a new instance
type AppState struct {
	Provider TextProvider
	// SharedCorpus is set only when nlp.keywords.corpus is "shared".
	SharedCorpus Corpus
	Config       *config.Config
}
