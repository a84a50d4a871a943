package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, store.Load())

	t.Run("defaults present when file absent", func(t *testing.T) {
		secret, ok := store.Get("onlyoffice.secret")
		require.True(t, ok)
		assert.Equal(t, DefaultSecret, secret)
	})

	t.Run("set nested key", func(t *testing.T) {
		store.Set("onlyoffice.jwt_enabled", false)
		v, ok := store.Get("onlyoffice.jwt_enabled")
		require.True(t, ok)
		assert.Equal(t, false, v)
	})

	t.Run("set creates intermediate objects", func(t *testing.T) {
		store.Set("ui.language", "en-US")
		v, ok := store.Get("ui.language")
		require.True(t, ok)
		assert.Equal(t, "en-US", v)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := store.Get("onlyoffice.nope")
		assert.False(t, ok)
	})

	t.Run("path through a scalar", func(t *testing.T) {
		_, ok := store.Get("onlyoffice.secret.deeper")
		assert.False(t, ok)
	})
}

func TestStore_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store := NewStore(path)
	require.NoError(t, store.Load())
	store.Set("onlyoffice.secret", "abc123")
	store.Set("onlyoffice.allow_private_ip", false)
	require.NoError(t, store.Save())

	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())

	secret, ok := reloaded.Get("onlyoffice.secret")
	require.True(t, ok)
	assert.Equal(t, "abc123", secret)

	allow, ok := reloaded.Get("onlyoffice.allow_private_ip")
	require.True(t, ok)
	assert.Equal(t, false, allow)
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewStore(path)
	err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestStore_Reset(t *testing.T) {
	t.Run("backs up existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"onlyoffice":{"secret":"old"}}`), 0o644))

		store := NewStore(path)
		backup, err := store.Reset()
		require.NoError(t, err)
		assert.Equal(t, path+".backup", backup)

		old, err := os.ReadFile(backup)
		require.NoError(t, err)
		assert.Contains(t, string(old), "old")

		fresh := NewStore(path)
		require.NoError(t, fresh.Load())
		secret, ok := fresh.Get("onlyoffice.secret")
		require.True(t, ok)
		assert.Equal(t, DefaultSecret, secret)
	})

	t.Run("no backup when file absent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		store := NewStore(path)
		backup, err := store.Reset()
		require.NoError(t, err)
		assert.Empty(t, backup)
		assert.FileExists(t, path)
	})
}

func TestDefaultsMap(t *testing.T) {
	m := DefaultsMap()

	oo, ok := m["onlyoffice"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, DefaultSecret, oo["secret"])
	assert.Equal(t, true, oo["jwt_enabled"])
	assert.Equal(t, true, oo["allow_private_ip"])
	assert.Equal(t, true, oo["allow_meta_ip"])
	assert.Equal(t, true, oo["use_unauthorized_storage"])

	c, ok := m["container"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "onlyoffice-documentserver", c["name"])
}

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want any
	}{
		{"bool true", "true", true},
		{"bool false", "FALSE", false},
		{"int", "8080", int64(8080)},
		{"float", "1.5", 1.5},
		{"array", `["a","b"]`, []any{"a", "b"}},
		{"object", `{"k":1}`, map[string]any{"k": float64(1)}},
		{"malformed json stays string", `[broken`, "[broken"},
		{"string", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceValue(tt.raw))
		})
	}
}
