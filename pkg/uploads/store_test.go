package uploads

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 64)...)

type testFile struct {
	name    string
	content []byte
}

func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"]
}

func newStore(t *testing.T, maxSize int64) *ImageStore {
	t.Helper()
	s, err := NewImageStore(filepath.Join(t.TempDir(), "uploads"), maxSize)
	require.NoError(t, err)
	return s
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSaveNamesFilesAndKeepsOrder(t *testing.T) {
	s := newStore(t, 1<<20)
	files := fileHeaders(t, testFile{"a.PNG", pngBytes}, testFile{"b.png", pngBytes})

	urls, err := s.Save(PrefixProject, files, 10)
	require.NoError(t, err)
	require.Len(t, urls, 2)

	pattern := regexp.MustCompile(`^/uploads/project-\d+-[0-9a-f-]{36}\.png$`)
	for _, u := range urls {
		assert.Regexp(t, pattern, u)
		_, err := os.Stat(filepath.Join(s.Dir(), filepath.Base(u)))
		assert.NoError(t, err)
	}
	assert.NotEqual(t, urls[0], urls[1])
}

func TestSaveRejectsBeforeWritingAnything(t *testing.T) {
	tests := []struct {
		name  string
		files []testFile
		max   int64
	}{
		{"bad extension", []testFile{{"ok.png", pngBytes}, {"notes.txt", []byte("hello")}}, 1 << 20},
		{"spoofed content", []testFile{{"ok.png", pngBytes}, {"fake.jpg", []byte("plain text pretending")}}, 1 << 20},
		{"too large", []testFile{{"ok.png", pngBytes}, {"big.png", append(pngBytes, make([]byte, 512)...)}}, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.max)
			_, err := s.Save(PrefixProject, fileHeaders(t, tt.files...), 10)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Empty(t, dirEntries(t, s.Dir()))
		})
	}
}

func TestSaveRejectsTooManyFiles(t *testing.T) {
	s := newStore(t, 1<<20)
	files := fileHeaders(t, testFile{"a.png", pngBytes}, testFile{"b.png", pngBytes})

	_, err := s.Save(PrefixPhoto, files, 1)
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestRemove(t *testing.T) {
	s := newStore(t, 1<<20)
	urls, err := s.Save(PrefixPhoto, fileHeaders(t, testFile{"me.png", pngBytes}), 1)
	require.NoError(t, err)

	outside := filepath.Join(filepath.Dir(s.Dir()), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	s.Remove("/uploads/../keep.txt")
	s.Remove("https://example.com/uploads/x.png")
	s.Remove("/uploads/missing.png")
	s.RemoveAll(urls)

	assert.Empty(t, dirEntries(t, s.Dir()))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
