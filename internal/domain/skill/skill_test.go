package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-cms/internal/domain/content"
)

func TestNew_AssignsFreshID(t *testing.T) {
	s := New(content.Object{"id": "client-id", "name": "Go", "category": "backend"})

	assert.NotEmpty(t, s.ID)
	assert.NotEqual(t, "client-id", s.ID)
	assert.NotEqual(t, s.ID, New(content.Object{"name": "Go"}).ID)

	o := s.ToObject()
	assert.Equal(t, s.ID, o["id"])
	assert.Equal(t, "Go", o["name"])
	assert.Equal(t, "backend", o["category"])
}

func TestValidate(t *testing.T) {
	require.NoError(t, FromObject(content.Object{"name": "Go"}).Validate())

	for _, name := range []any{nil, "", "   ", 42} {
		err := FromObject(content.Object{"name": name}).Validate()

		var verr *content.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
		assert.Equal(t, "Skill name is required", verr.Message)
	}
}
