package apihandlers

import (
	"errors"
	"net/http"

	"github.com/textlab/textapi/internal"
	"github.com/textlab/textapi/pkg/analysis"
	"github.com/textlab/textapi/pkg/models"
	"github.com/textlab/textapi/pkg/server/handlertools"
)

var log = internal.GetLogger()

// WordCountHandler godoc
//
//	@Summary		Count words
//	@Description	Counts the whitespace separated words of text.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.WordCountResponse
//	@Failure		400		{object}	models.LegacyErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse		"Internal Server Error"
//	@Router			/api/word-count [post]
func WordCountHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			if appState.Config.Server.LegacyWordCountErrors &&
				errors.Is(err, models.ErrBadRequest) {
				log.Debug(err)
				handlertools.RenderJSON(
					w,
					models.LegacyErrorResponse{Message: LegacyMissingTextMessage},
					http.StatusBadRequest,
				)
				return
			}
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		handlertools.RenderJSON(
			w,
			models.WordCountResponse{Success: true, WordCount: analysis.WordCount(text)},
			http.StatusOK,
		)
	}
}

// TokenizeHandler godoc
//
//	@Summary		Tokenize text
//	@Description	Splits text into word tokens. Punctuation tokens are dropped.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.TokenizeResponse
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/tokenize [post]
func TokenizeHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		tokens, err := analysis.Tokenize(r.Context(), appState, text)
		if err != nil {
			handlertools.RenderInternalError(w, err, ErrTokenizeMessage)
			return
		}

		handlertools.RenderJSON(
			w,
			models.TokenizeResponse{Success: true, Tokens: tokens},
			http.StatusOK,
		)
	}
}

// StemHandler godoc
//
//	@Summary		Lemmatize words
//	@Description	Lower-cases text, splits it on whitespace and commas and returns the dictionary lemma of every token.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.StemResponse
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/stem [post]
func StemHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		stems, err := analysis.Stem(r.Context(), appState, text)
		if err != nil {
			handlertools.RenderInternalError(w, err, ErrStemMessage)
			return
		}

		handlertools.RenderJSON(
			w,
			models.StemResponse{Success: true, Stems: stems},
			http.StatusOK,
		)
	}
}

// POSHandler godoc
//
//	@Summary		Part-of-speech tagging
//	@Description	Returns [word, tag] pairs using Penn Treebank tags.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.POSResponse
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/pos [post]
func POSHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		tagged, err := analysis.Tag(r.Context(), appState, text)
		if err != nil {
			handlertools.RenderInternalError(w, err, ErrPOSMessage)
			return
		}

		handlertools.RenderJSON(
			w,
			models.POSResponse{Success: true, TaggedWords: tagged},
			http.StatusOK,
		)
	}
}

// SentimentHandler godoc
//
//	@Summary		Sentiment score
//	@Description	Scores the whitespace separated words of text against a polarity lexicon.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.SentimentResponse
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/sentiment [post]
func SentimentHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		score, err := analysis.Sentiment(r.Context(), appState, text)
		if err != nil {
			handlertools.RenderInternalError(w, err, err.Error())
			return
		}

		handlertools.RenderJSON(
			w,
			models.SentimentResponse{Success: true, Sentiment: score},
			http.StatusOK,
		)
	}
}

// NounsHandler godoc
//
//	@Summary		Noun extraction
//	@Description	Returns the distinct common and proper nouns of text. This is served as
//	@Description	"entities" but is not true named entity recognition.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.EntitiesResponse
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/ner [post]
func NounsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		nouns, err := analysis.Nouns(r.Context(), appState, text)
		if err != nil {
			handlertools.RenderInternalError(w, err, err.Error())
			return
		}

		handlertools.RenderJSON(
			w,
			models.EntitiesResponse{Success: true, Entities: nouns},
			http.StatusOK,
		)
	}
}

// KeywordsHandler godoc
//
//	@Summary		Keyword extraction
//	@Description	Returns the TF-IDF weight of every non-stopword term of text, highest first.
//	@Tags			analysis
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.TextRequest	true	"Text"
//	@Success		200		{object}	models.KeywordsResponse
//	@Failure		400		{object}	models.ErrorResponse	"Bad Request"
//	@Failure		500		{object}	models.ErrorResponse	"Internal Server Error"
//	@Router			/api/keywords [post]
func KeywordsHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := handlertools.DecodeText(r)
		if err != nil {
			handlertools.RenderError(w, err, http.StatusBadRequest)
			return
		}

		keywords, err := analysis.Keywords(r.Context(), appState, text)
		if err != nil {
			handlertools.RenderInternalError(w, err, ErrKeywordsMessage)
			return
		}

		handlertools.RenderJSON(
			w,
			models.KeywordsResponse{Success: true, Keywords: keywords},
			http.StatusOK,
		)
	}
}
