package llm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePromptStore_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyze.txt"), []byte("You review code."), 0o600))

	store := NewFilePromptStore(dir)

	t.Run("Existing prompt", func(t *testing.T) {
		got, err := store.Load(context.Background(), "analyze")
		require.NoError(t, err)
		assert.Equal(t, "You review code.", got)
	})

	t.Run("Missing prompt", func(t *testing.T) {
		_, err := store.Load(context.Background(), "tests")
		require.ErrorIs(t, err, ErrPromptNotFound)
	})

	t.Run("Path traversal rejected", func(t *testing.T) {
		_, err := store.Load(context.Background(), "../secrets")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPromptNotFound)
	})

	t.Run("Edits are picked up without reload", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "optimize.txt"), []byte("v1"), 0o600))
		got, err := store.Load(context.Background(), "optimize")
		require.NoError(t, err)
		assert.Equal(t, "v1", got)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "optimize.txt"), []byte("v2"), 0o600))
		got, err = store.Load(context.Background(), "optimize")
		require.NoError(t, err)
		assert.Equal(t, "v2", got)
	})
}

func TestFilePromptStore_ShippedPrompts(t *testing.T) {
	store := NewFilePromptStore(filepath.Join("..", "..", "prompts"))
	for _, name := range []string{"analyze", "tests", "optimize"} {
		got, err := store.Load(context.Background(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, got, name)
	}
}
