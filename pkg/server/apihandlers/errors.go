package apihandlers

// Public 500 messages. Sentiment and noun extraction pass the provider error
// through and word counting cannot fail short of a panic.
const (
	ErrTokenizeMessage = "Error processing tokenize."
	ErrStemMessage     = "Error processing stemming"
	ErrPOSMessage      = "Error processing Part of Speech."
	ErrKeywordsMessage = "Error processing keywords"

	// LegacyMissingTextMessage is the word-count validation message kept for existing consumers.
	LegacyMissingTextMessage = "Missing paramaters text."

	IndexMessage = "Text Analysis API"
)
