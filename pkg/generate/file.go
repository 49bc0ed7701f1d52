package generate

import (
	"context"
	"fmt"
	"os"
)

// FileGenerator serves a canned generation result from a JSON file. It backs
// the CLI expand command and tests, standing in for a live generation
// service.
type FileGenerator struct {
	path string
}

// NewFileGenerator creates a generator reading results from path.
func NewFileGenerator(path string) *FileGenerator {
	return &FileGenerator{path: path}
}

// Expand reads and parses the file. A malformed file degrades to an empty
// result, matching the consumption contract; only I/O failure is an error.
func (g *FileGenerator) Expand(ctx context.Context, req Request) (Result, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		return Result{}, fmt.Errorf("read generated result %s: %w", g.path, err)
	}
	return ParseResult(data), nil
}

// StaticGenerator returns a fixed result for every expansion. Useful in
// tests and as a no-op collaborator.
type StaticGenerator struct {
	Result Result
}

// Expand returns the fixed result.
func (g *StaticGenerator) Expand(ctx context.Context, req Request) (Result, error) {
	return g.Result, nil
}

var (
	_ Generator = (*FileGenerator)(nil)
	_ Generator = (*StaticGenerator)(nil)
)
