package out

import "context"

type DocumentStore interface {
	Read(ctx context.Context, path string) (string, bool, error)
	Write(ctx context.Context, path, content string) error
}
