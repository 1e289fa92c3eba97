package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pixelpirates/leaderboard/internal/apperr"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	router := setupRouter()
	router.GET("/ok", func(c *gin.Context) {
		Success(c, http.StatusCreated, "Created", gin.H{"count": 2})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, float64(2), body["count"])
}

func TestSuccess_NoMessage(t *testing.T) {
	router := setupRouter()
	router.GET("/ok", func(c *gin.Context) {
		Success(c, http.StatusOK, "", nil)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ok", nil)
	router.ServeHTTP(w, req)

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "message")
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("Invalid position"), http.StatusBadRequest, "Invalid position"},
		{"authentication", apperr.New(apperr.KindAuthentication, "token expired"), http.StatusUnauthorized, "Not authorized"},
		{"authorization", apperr.ErrForbidden, http.StatusForbidden, "Not authorized"},
		{"not found", apperr.New(apperr.KindNotFound, "Team not found"), http.StatusNotFound, "Team not found"},
		{"conflict", apperr.New(apperr.KindConflict, "Result already exists"), http.StatusConflict, "Result already exists"},
		{"internal", errors.New("database is locked"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter()
			router.GET("/fail", func(c *gin.Context) {
				Error(c, zap.NewNop().Sugar(), tt.err)
			})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/fail", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

type bindRequest struct {
	Name     string   `json:"name" binding:"required"`
	Semester int      `json:"semester" binding:"required,min=1,max=8"`
	EventIDs []string `json:"eventIds" binding:"max=3"`
}

func TestBindError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing field", `{"semester": 2}`, "name is required"},
		{"out of range", `{"name": "A", "semester": 9}`, "semester must be at most 8"},
		{"slice too long", `{"name": "A", "semester": 1, "eventIds": ["a","b","c","d"]}`, "eventIDs must contain at most 3 item(s)"},
		{"wrong type", `{"name": "A", "semester": "two"}`, "semester has an invalid type"},
		{"empty body", ``, "Request body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req bindRequest
			err := c.ShouldBindJSON(&req)
			require.Error(t, err)

			mapped := BindError(err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(mapped))
			assert.Equal(t, tt.wantMsg, apperr.PublicMessage(mapped))
		})
	}
}
