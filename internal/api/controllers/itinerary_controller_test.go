package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/internal/models/request_models"
	"wanderplan/pkg/utils"
)

type fakeItineraryService struct {
	lastRequest request_models.ItineraryRequest
	itinerary   string
	err         error
}

func (f *fakeItineraryService) GenerateItinerary(ctx context.Context, request request_models.ItineraryRequest) (string, error) {
	f.lastRequest = request
	return f.itinerary, f.err
}

func newItineraryTestRouter(service *fakeItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewItineraryController(service)

	r := gin.New()
	r.POST("/api/itinerary", controller.GenerateItinerary)
	return r
}

func postItinerary(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateItineraryHandler(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		service := &fakeItineraryService{itinerary: "- Day 1: Louvre\n- Day 2: Montmartre"}
		r := newItineraryTestRouter(service)

		w := postItinerary(r, `{"destination":"Paris","days":3,"interest":"food"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Paris", service.lastRequest.Destination)
		assert.Equal(t, 3, service.lastRequest.Days)
		assert.Equal(t, "food", service.lastRequest.Interest)

		var envelope utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "- Day 1: Louvre\n- Day 2: Montmartre", data["itinerary"])
	})

	t.Run("GenerationFailure", func(t *testing.T) {
		service := &fakeItineraryService{err: utils.ErrGenerationFailed}
		r := newItineraryTestRouter(service)

		w := postItinerary(r, `{"destination":"Paris","days":3,"interest":"food"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var envelope utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "AI generation failed", envelope.Message)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		service := &fakeItineraryService{}
		r := newItineraryTestRouter(service)

		w := postItinerary(r, `{"days":0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, service.lastRequest.Destination)
	})
}
