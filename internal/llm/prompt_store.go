package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPromptNotFound is returned when no system prompt file exists for a name.
var ErrPromptNotFound = errors.New("prompt template not found")

// FilePromptStore reads system prompts from <dir>/<name>.txt.
// Files are read on every Load, so edits take effect without a restart.
type FilePromptStore struct {
	dir string
}

func NewFilePromptStore(dir string) *FilePromptStore {
	return &FilePromptStore{dir: dir}
}

func (s *FilePromptStore) Load(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid prompt name %q", name)
	}

	path := filepath.Join(s.dir, name+".txt")
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrPromptNotFound, path)
		}
		return "", fmt.Errorf("failed to read prompt %s: %w", path, err)
	}
	return string(content), nil
}
