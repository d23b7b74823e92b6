package common

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"custom", ErrUnknownUnit.WithErr(fmt.Errorf("unit %q", "parsec")), http.StatusBadRequest, ErrCodeUnknownUnit},
		{"body too large", fmt.Errorf("bind: %w", &http.MaxBytesError{Limit: 16}), http.StatusRequestEntityTooLarge, ErrCodeTooLarge},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(c, tt.err)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %q, want %q", resp.Code, tt.code)
			}
			if !c.IsAborted() || len(c.Errors) != 1 {
				t.Errorf("aborted = %v, errors = %v", c.IsAborted(), c.Errors)
			}
		})
	}
}
