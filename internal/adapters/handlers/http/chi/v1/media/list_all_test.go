package media_test

import (
	httpgo "net/http"
	"net/http/httptest"
	"testing"

	"github.com/Charlelielataste/escoffier-gallery/internal/core/domain"
	mediaservice "github.com/Charlelielataste/escoffier-gallery/internal/core/service/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListAllV1(t *testing.T) {

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		listing := domain.CombinedListing{
			Images: []domain.MediaAsset{{PublicID: "escoffier-event/a", Kind: domain.MediaKindImage, Format: "jpg"}},
		}

		mockService := mediaservice.NewMockMediaService()
		mockService.On("ListAll", mock.Anything).Return(listing, nil)

		h := newRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/media/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		assert.Equal(t, "public, s-maxage=3600, stale-while-revalidate=86400", w.Header().Get("Cache-Control"))
		assert.Contains(t, w.Body.String(), `"videos":[]`)
		assert.Contains(t, w.Body.String(), `"public_id":"escoffier-event/a"`)
		mockService.AssertExpectations(t)
	})

	t.Run("upstream failure is not cached", func(t *testing.T) {
		// Arrange
		listing := domain.CombinedListing{
			Images:         []domain.MediaAsset{},
			Videos:         []domain.MediaAsset{},
			UpstreamFailed: true,
		}

		mockService := mediaservice.NewMockMediaService()
		mockService.On("ListAll", mock.Anything).Return(listing, nil)

		h := newRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/media/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		assert.JSONEq(t, `{"images":[],"videos":[]}`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		// Arrange
		mockService := mediaservice.NewMockMediaService()
		mockService.On("ListAll", mock.Anything).Return(domain.CombinedListing{}, assert.AnError)

		h := newRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/media/", nil)

		// Act
		h.ServeHTTP(w, req)

		// Assert
		assert.Equal(t, httpgo.StatusInternalServerError, w.Code)
	})
}
