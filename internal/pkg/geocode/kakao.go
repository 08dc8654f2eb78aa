package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const keywordSearchURL = "https://dapi.kakao.com/v2/local/search/keyword.json"

var ErrSearchFailed = errors.New("place search failed")

// Place is a single result from the Kakao Local keyword search.
type Place struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	RoadAddress string  `json:"road_address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type KakaoService interface {
	// SearchKeyword looks up places matching the query string.
	SearchKeyword(ctx context.Context, query string, size int) ([]Place, error)
}

type kakaoDocument struct {
	PlaceName       string `json:"place_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
}

type kakaoSearchResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

type KakaoServiceImpl struct {
	apiKey string
	client *http.Client
}

func NewKakaoService(apiKey string) KakaoService {
	return &KakaoServiceImpl{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (k *KakaoServiceImpl) SearchKeyword(ctx context.Context, query string, size int) ([]Place, error) {
	if size <= 0 || size > 15 {
		size = 15
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("size", strconv.Itoa(size))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, keywordSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+k.apiKey)

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	var body kakaoSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(body.Documents))
	for _, doc := range body.Documents {
		lng, err := strconv.ParseFloat(doc.X, 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(doc.Y, 64)
		if err != nil {
			continue
		}
		places = append(places, Place{
			Name:        doc.PlaceName,
			Address:     doc.AddressName,
			RoadAddress: doc.RoadAddressName,
			Lat:         lat,
			Lng:         lng,
		})
	}

	return places, nil
}
