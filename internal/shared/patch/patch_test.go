package patch_test

import (
	"encoding/json"
	"testing"

	"go-hris-backoffice/internal/shared/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postingPatch struct {
	Title       patch.Field[string] `json:"title"`
	Description patch.Field[string] `json:"description"`
	IsActive    patch.Field[bool]   `json:"isActive"`
}

func TestField_UnmarshalJSON(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var p postingPatch
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

		assert.False(t, p.Title.Set)
		assert.False(t, p.Description.Set)
		assert.False(t, p.IsActive.Set)
	})

	t.Run("present", func(t *testing.T) {
		var p postingPatch
		require.NoError(t, json.Unmarshal([]byte(`{"title":"Cashier","isActive":false}`), &p))

		assert.True(t, p.Title.HasValue())
		assert.Equal(t, "Cashier", p.Title.Value)
		assert.True(t, p.IsActive.Set)
		assert.False(t, p.IsActive.Value)
		assert.False(t, p.Description.Set)
	})

	t.Run("null", func(t *testing.T) {
		var p postingPatch
		require.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &p))

		assert.True(t, p.Description.Set)
		assert.True(t, p.Description.Null)
		assert.Nil(t, p.Description.Ptr())
	})

	t.Run("wrong type", func(t *testing.T) {
		var p postingPatch
		assert.Error(t, json.Unmarshal([]byte(`{"isActive":"yes"}`), &p))
	})
}

func TestApplyOptional(t *testing.T) {
	desc := "old"
	dst := &desc

	patch.ApplyOptional(patch.Field[string]{}, &dst)
	assert.Equal(t, "old", *dst)

	patch.ApplyOptional(patch.Of("new"), &dst)
	assert.Equal(t, "new", *dst)

	patch.ApplyOptional(patch.NullOf[string](), &dst)
	assert.Nil(t, dst)
}

func TestApplyRequired(t *testing.T) {
	title := "Cashier"

	patch.ApplyRequired(patch.NullOf[string](), &title)
	assert.Equal(t, "Cashier", title)

	patch.ApplyRequired(patch.Field[string]{}, &title)
	assert.Equal(t, "Cashier", title)

	patch.ApplyRequired(patch.Of("Barista"), &title)
	assert.Equal(t, "Barista", title)
}

func TestField_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(postingPatch{Title: patch.Of("Cook")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Cook","description":null,"isActive":null}`, string(out))
}
