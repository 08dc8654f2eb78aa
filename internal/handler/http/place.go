package http

import (
	"net/http"
	"strconv"

	"github.com/devstudio/checkin-backend-go/internal/handler/http/response"
	"github.com/devstudio/checkin-backend-go/internal/pkg/geocode"
)

type PlaceHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
}

type placeHandlerImpl struct {
	kakaoService geocode.KakaoService
}

func NewPlaceHandler(kakaoService geocode.KakaoService) PlaceHandler {
	return &placeHandlerImpl{
		kakaoService: kakaoService,
	}
}

// Search implements PlaceHandler. Proxies the Kakao Local keyword search so
// the browser never sees the REST API key.
func (h *placeHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		response.BadRequest(w, "query parameter is required", nil)
		return
	}

	size := 0
	if sizeParam := r.URL.Query().Get("size"); sizeParam != "" {
		size, _ = strconv.Atoi(sizeParam)
	}

	places, err := h.kakaoService.SearchKeyword(r.Context(), query, size)
	if err != nil {
		response.BadGateway(w, "Place search is unavailable")
		return
	}

	response.Success(w, places)
}
