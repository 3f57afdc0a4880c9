package models

// TextRequest is the body accepted by every analysis endpoint.
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type WordCountResponse struct {
	Success   bool `json:"success"`
	WordCount int  `json:"wordCount"`
}

type TokenizeResponse struct {
	Success bool     `json:"success"`
	Tokens  []string `json:"tokens"`
}

type StemResponse struct {
	Success bool     `json:"success"`
	Stems   []string `json:"stems"`
}

type POSResponse struct {
	Success     bool         `json:"success"`
	TaggedWords []TaggedWord `json:"taggedWords"`
}

type SentimentResponse struct {
	Success   bool    `json:"success"`
	Sentiment float64 `json:"sentiment"`
}

type EntitiesResponse struct {
	Success  bool     `json:"success"`
	Entities []string `json:"entities"`
}

type KeywordsResponse struct {
	Success  bool      `json:"success"`
	Keywords []Keyword `json:"keywords"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// LegacyErrorResponse is the word-count validation failure body kept for
// existing consumers.
type LegacyErrorResponse struct {
	Message string `json:"message"`
}
