package storage

import (
	"context"
	"io"
)

// Storage persists one uploaded file under the given name and returns a
// URL the frontend can load it from. The disk backend returns a path under
// /uploads; the Cloudinary backend returns an absolute secure URL.
type Storage interface {
	Save(ctx context.Context, filename string, src io.Reader) (string, error)
}
