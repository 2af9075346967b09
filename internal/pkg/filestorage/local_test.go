package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedExtension(t *testing.T) {
	allowed := []string{"notes.pdf", "slides.PPTX", "intro.mp4", "avatar.jpeg"}
	for _, name := range allowed {
		assert.True(t, IsAllowedExtension(name), name)
	}

	denied := []string{"script.sh", "binary.exe", "noextension", "archive.zip"}
	for _, name := range denied {
		assert.False(t, IsAllowedExtension(name), name)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_notes", sanitizeFilename("my notes"))
	assert.Equal(t, "_etc_passwd", sanitizeFilename("/etc/passwd"))
	assert.Equal(t, "file", sanitizeFilename(""))
}

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveAndDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	header := uploadHeader(t, "lecture notes.pdf", "chapter one")

	fileURL, err := storage.SaveFileWithPath(header, "materials")
	require.NoError(t, err)
	assert.Contains(t, fileURL, "/uploads/materials/lecture_notes_")
	assert.Equal(t, ".pdf", filepath.Ext(fileURL))

	physical := storage.GetFullPath(fileURL)
	content, err := os.ReadFile(physical)
	require.NoError(t, err)
	assert.Equal(t, "chapter one", string(content))

	require.NoError(t, storage.DeleteFile(fileURL))
	_, err = os.Stat(physical)
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	assert.NoError(t, storage.DeleteFile(fileURL))
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)

	fileURL, err := storage.SaveFile(nil)
	assert.NoError(t, err)
	assert.Empty(t, fileURL)
}
