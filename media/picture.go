package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/gift"
	"github.com/google/uuid"
)

const (
	PictureSize    = 300
	MaxPictureSide = 4000
	JPEGQuality    = 90
)

var ErrUnsupportedImage = errors.New("unsupported image: expected a JPEG or PNG file")

// Picture is a processed profile picture ready to be stored.
type Picture struct {
	Name string
	Data []byte
}

// ProcessPicture decodes a JPEG or PNG image, crops and scales it to a
// PictureSize square and re-encodes it in the same format under a random name.
// Dimensions are checked from the header before any pixels are decoded.
func ProcessPicture(r io.Reader) (*Picture, error) {
	var head bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, ErrUnsupportedImage
	}
	if cfg.Width > MaxPictureSide || cfg.Height > MaxPictureSide {
		return nil, fmt.Errorf("image too large (max %dx%d)", MaxPictureSide, MaxPictureSide)
	}

	src, format, err := image.Decode(io.MultiReader(&head, r))
	if err != nil {
		return nil, ErrUnsupportedImage
	}

	g := gift.New(gift.ResizeToFill(PictureSize, PictureSize, gift.LanczosResampling, gift.CenterAnchor))
	dst := image.NewRGBA(g.Bounds(src.Bounds()))
	g.Draw(dst, src)

	var buf bytes.Buffer
	var ext string
	switch format {
	case "jpeg":
		ext = ".jpg"
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality})
	case "png":
		ext = ".png"
		err = png.Encode(&buf, dst)
	default:
		return nil, ErrUnsupportedImage
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &Picture{Name: uuid.NewString() + ext, Data: buf.Bytes()}, nil
}
