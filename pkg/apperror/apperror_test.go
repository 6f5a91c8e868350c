package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", NewValidation("Skill name is required"), http.StatusBadRequest},
		{"not found", NewNotFound("Skill", "abc"), http.StatusBadRequest},
		{"storage", NewStorageRead(errors.New("disk gone")), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("update skill failed: %w", NewNotFound("Skill", "abc")), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("bad password", nil), http.StatusUnauthorized},
		{"rate limited", NewTooManyRequests("slow down"), http.StatusTooManyRequests},
		{"body too large", NewTooLarge(1024, nil), http.StatusRequestEntityTooLarge},
		{"internal", NewInternal("boom", nil), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, gin.H{"error": "Skill not found"}, ToJSON(NewNotFound("Skill", "abc")))
	assert.Equal(t, gin.H{"error": "Failed to write data"}, ToJSON(NewStorageWrite(errors.New("EACCES"))))
	assert.Equal(t, gin.H{"error": GenericMessage}, ToJSON(errors.New("nil pointer")))
	assert.Equal(t, gin.H{"error": GenericMessage}, ToJSON(NewInternal("marshal failed", nil)))
}

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewStorageWrite(cause)

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
}
