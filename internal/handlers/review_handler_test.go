package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Validation runs before any storage access, so these paths are exercised
// with an unwired handler.
func newReviewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReviewHandler(nil, nil)
	r.POST("/api/channels/:id/reviews", h.CreateReview)
	return r
}

func postReview(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	url := "/api/channels/" + uuid.New().String() + "/reviews"
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body["error"]
}

func TestCreateReview_MissingText(t *testing.T) {
	router := newReviewRouter()

	w := postReview(t, router, `{"nickname":"alice","rating":4}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if got := errorMessage(t, w); got != "Review text is required" {
		t.Errorf("Expected text-required message, got %q", got)
	}
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	router := newReviewRouter()

	for _, body := range []string{
		`{"text":"Great channel","nickname":"alice","rating":7}`,
		`{"text":"Great channel","nickname":"alice","rating":-1}`,
	} {
		w := postReview(t, router, body)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
		// An out-of-range rating must name the rating, not the text field
		if got := errorMessage(t, w); got != "rating must be between 1 and 5" {
			t.Errorf("Expected rating bounds message, got %q", got)
		}
	}
}

func TestCreateReview_SignedWithoutNickname(t *testing.T) {
	router := newReviewRouter()

	w := postReview(t, router, `{"text":"Great channel","rating":4}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if got := errorMessage(t, w); got != "nickname is required unless the review is anonymous" {
		t.Errorf("Expected nickname message, got %q", got)
	}
}

func TestCreateReview_InvalidChannelID(t *testing.T) {
	router := newReviewRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/channels/not-a-uuid/reviews",
		strings.NewReader(`{"text":"Great channel","nickname":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
}
