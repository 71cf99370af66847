package api

import (
	"encoding/base64"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intro_web/internal/models"
)

func writeFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), data, 0o644))
	}
	return root
}

func TestImageRoot(t *testing.T) {
	w := get(setupImageRouter(t.TempDir()), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Base64 Image API", "endpoints": ["/image/{filename}"]}`, w.Body.String())
}

func TestGetImage(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x43, 0x00, 0xff, 0xd9}
	r := setupImageRouter(writeFiles(t, map[string][]byte{"photo.jpeg": payload}))

	w := get(r, "/image/photo.jpeg")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ImageResponse](t, w)
	assert.Equal(t, "photo.jpeg", resp.Filename)
	assert.Equal(t, base64.StdEncoding.EncodeToString(payload), resp.ImageData)
	assert.Equal(t, "image/jpeg", resp.MimeType)

	decoded, err := base64.StdEncoding.DecodeString(resp.ImageData)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestGetImageNotFound(t *testing.T) {
	w := get(setupImageRouter(t.TempDir()), "/image/nonexistent.jpg")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Image 'nonexistent.jpg' not found"}`, w.Body.String())
}

func TestGetImageUnsupported(t *testing.T) {
	r := setupImageRouter(writeFiles(t, map[string][]byte{"doc.pdf": []byte("%PDF-1.4")}))

	w := get(r, "/image/doc.pdf")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail": "Only JPEG files are supported"}`, w.Body.String())
}

func TestGetImageReadFailure(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "album.jpg"), 0o755))

	w := get(setupImageRouter(root), "/image/album.jpg")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	body := decode[map[string]string](t, w)
	assert.Contains(t, body["detail"], "Error processing image: ")
}

func TestListImages(t *testing.T) {
	r := setupImageRouter(writeFiles(t, map[string][]byte{
		"a.jpg":    {1},
		"b.JPEG":   {2},
		"c.png":    {3},
		"note.txt": {4},
		".jpeg":    {5},
	}))

	w := get(r, "/images/list")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string][]string](t, w)
	assert.ElementsMatch(t, []string{"a.jpg", "b.JPEG"}, body["images"])
}

func TestListImagesEmpty(t *testing.T) {
	w := get(setupImageRouter(t.TempDir()), "/images/list")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"images": []}`, w.Body.String())
}

func TestListImagesMissingDir(t *testing.T) {
	w := get(setupImageRouter(filepath.Join(t.TempDir(), "img")), "/images/list")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Images directory not found", "images": []}`, w.Body.String())
}
