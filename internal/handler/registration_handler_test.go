package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext builds a gin context carrying a JSON request body.
func newTestGinContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestRegister_MissingFields(t *testing.T) {
	// The service is never reached when binding fails, so nil is fine here.
	h := NewRegistrationHandler(nil)

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty body", gin.H{}},
		{"missing username", gin.H{"password": "pw1", "email": "a@x.com", "role": "labour"}},
		{"missing password", gin.H{"username": "asha", "email": "a@x.com", "role": "labour"}},
		{"missing email", gin.H{"username": "asha", "password": "pw1", "role": "labour"}},
		{"missing role", gin.H{"username": "asha", "password": "pw1", "email": "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(t, http.MethodPost, "/register", tt.body)

			h.Register(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp, "error")
		})
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	h := NewRegistrationHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerify_MissingFields(t *testing.T) {
	h := NewRegistrationHandler(nil)

	tests := []struct {
		name string
		body gin.H
	}{
		{"empty body", gin.H{}},
		{"missing otp", gin.H{"email": "a@x.com", "userId": 177670}},
		{"missing email", gin.H{"otp": "123456", "userId": 177670}},
		{"missing userId", gin.H{"email": "a@x.com", "otp": "123456"}},
		{"zero userId", gin.H{"email": "a@x.com", "otp": "123456", "userId": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext(t, http.MethodPost, "/verify", tt.body)

			h.Verify(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
