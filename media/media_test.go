package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestProcessPicture(t *testing.T) {
	pic, err := ProcessPicture(bytes.NewReader(encodePNG(t, 640, 480)))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.HasSuffix(pic.Name, ".png") {
		t.Fatalf("name = %q, want .png suffix", pic.Name)
	}

	out, format, err := image.Decode(bytes.NewReader(pic.Data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q", format)
	}
	if b := out.Bounds(); b.Dx() != PictureSize || b.Dy() != PictureSize {
		t.Fatalf("size = %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessPictureRejectsNonImage(t *testing.T) {
	_, err := ProcessPicture(strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Fatalf("expected ErrUnsupportedImage, got %v", err)
	}
}

// withDimensions rewrites the IHDR chunk of a PNG so it claims w x h pixels.
func withDimensions(data []byte, w, h uint32) []byte {
	out := append([]byte(nil), data...)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestProcessPictureRejectsOversizedBeforeDecoding(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	data := withDimensions(buf.Bytes(), 12000, 12000)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := ProcessPicture(bytes.NewReader(data))
	runtime.ReadMemStats(&after)

	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected too large error, got %v", err)
	}
	if allocated := after.TotalAlloc - before.TotalAlloc; allocated > 4<<20 {
		t.Fatalf("allocated %d bytes rejecting a %d byte upload", allocated, len(data))
	}
}

func TestProcessPictureNamesAreUnique(t *testing.T) {
	data := encodePNG(t, 10, 10)
	a, err := ProcessPicture(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	b, err := ProcessPicture(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if a.Name == b.Name {
		t.Fatalf("expected distinct names, got %q twice", a.Name)
	}
}

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "ada.png", strings.NewReader("pixels")); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, PictureDir, "ada.png"))
	if err != nil || string(data) != "pixels" {
		t.Fatalf("read back: %q, %v", data, err)
	}

	if got := store.URL("ada.png"); got != "/media/profile_pics/ada.png" {
		t.Fatalf("url = %q", got)
	}

	if err := store.Delete(ctx, "ada.png"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "ada.png"); err != nil {
		t.Fatalf("deleting a missing file should be a no-op: %v", err)
	}
}

func TestLocalStoreKeepsNamesInsideRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save(context.Background(), "../../escape.png", strings.NewReader("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, PictureDir, "escape.png")); err != nil {
		t.Fatalf("expected file inside picture dir: %v", err)
	}
}
