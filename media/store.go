package media

import (
	"context"
	"io"
)

// PictureDir is the folder (or object prefix) that holds profile pictures.
const PictureDir = "profile_pics"

// Store keeps profile pictures and knows their public URL.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Delete(ctx context.Context, name string) error
	URL(name string) string
}
