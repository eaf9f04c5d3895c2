package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataScan(t *testing.T) {
	t.Run("null column yields empty map", func(t *testing.T) {
		var m Metadata
		require.NoError(t, m.Scan(nil))
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("decodes JSONB bytes", func(t *testing.T) {
		var m Metadata
		require.NoError(t, m.Scan([]byte(`{"source":"upgrade","plan_id":"plan_1"}`)))
		assert.Equal(t, "upgrade", m["source"])
		assert.Equal(t, "plan_1", m["plan_id"])
	})

	t.Run("rejects non byte values", func(t *testing.T) {
		var m Metadata
		assert.Error(t, m.Scan(42))
	})
}

func TestMetadataValue(t *testing.T) {
	t.Run("nil map stored as empty object", func(t *testing.T) {
		var m Metadata
		v, err := m.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(v.([]byte)))
	})

	t.Run("round trips entries", func(t *testing.T) {
		m := Metadata{"upgrade": "true"}
		v, err := m.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `{"upgrade":"true"}`, string(v.([]byte)))
	})
}
