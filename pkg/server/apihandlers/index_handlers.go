package apihandlers

import (
	"net/http"

	"github.com/textlab/textapi/pkg/models"
	"github.com/textlab/textapi/pkg/server/handlertools"
)

// BannerHandler godoc
//
//	@Summary	Plain text banner
//	@Produce	plain
//	@Success	200	{string}	string	"Text Analysis API"
//	@Router		/ [get]
func BannerHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(IndexMessage)); err != nil {
		log.Errorf("error writing banner: %v", err)
	}
}

// APIIndexHandler godoc
//
//	@Summary	API index
//	@Produce	json
//	@Success	200	{object}	models.MessageResponse
//	@Router		/api/ [get]
func APIIndexHandler(w http.ResponseWriter, _ *http.Request) {
	handlertools.RenderJSON(
		w,
		models.MessageResponse{Success: true, Message: IndexMessage},
		http.StatusOK,
	)
}
