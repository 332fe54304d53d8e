package ports

import "context"

//go:generate mockery --name LineStore --structname MockLineStore --with-expecter --output mocks --outpkg mocks --filename mock_line_store.go
type LineStore interface {
	// ReadLines returns the non-empty lines of path. A missing file reads as
	// no lines.
	ReadLines(ctx context.Context, path string) ([]string, error)
	// WriteLines replaces the whole content of path.
	WriteLines(ctx context.Context, path string, lines []string) error
}
