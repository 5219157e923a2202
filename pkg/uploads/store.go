// Package uploads validates and stores images sent as multipart form files.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PublicPrefix is the URL path the upload directory is served under.
const PublicPrefix = "/uploads/"

// Name prefixes of stored files.
const (
	PrefixProject = "project"
	PrefixPhoto   = "photo"
)

var (
	ErrUnsupportedType = errors.New("only image files are allowed (jpeg, jpg, png, gif, webp)")
	ErrTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrTooManyFiles    = errors.New("too many files")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// IsValidationError reports whether err came from rejecting a client's files.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrTooLarge) || errors.Is(err, ErrTooManyFiles)
}

// ImageStore writes accepted images into a single directory.
type ImageStore struct {
	dir     string
	maxSize int64
}

func NewImageStore(dir string, maxSize int64) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ImageStore{dir: dir, maxSize: maxSize}, nil
}

func (s *ImageStore) Dir() string { return s.dir }

// Validate checks every file without writing anything.
func (s *ImageStore) Validate(files []*multipart.FileHeader, maxFiles int) error {
	if maxFiles > 0 && len(files) > maxFiles {
		return fmt.Errorf("%w: at most %d allowed", ErrTooManyFiles, maxFiles)
	}
	for _, fh := range files {
		if err := s.validateOne(fh); err != nil {
			return err
		}
	}
	return nil
}

func (s *ImageStore) validateOne(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%s: %w", fh.Filename, ErrUnsupportedType)
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return fmt.Errorf("%s: %w (%d bytes)", fh.Filename, ErrTooLarge, s.maxSize)
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("sniff %s: %w", fh.Filename, err)
	}
	if !mimetype.EqualsAny(mtype.String(), allowedMIMETypes...) {
		log.Debugf("Rejected upload %s: detected %s", fh.Filename, mtype.String())
		return fmt.Errorf("%s: %w", fh.Filename, ErrUnsupportedType)
	}
	return nil
}

// Save validates all files, then writes them and returns their public URLs in
// input order. If any write fails the files already written are removed.
func (s *ImageStore) Save(prefix string, files []*multipart.FileHeader, maxFiles int) ([]string, error) {
	if err := s.Validate(files, maxFiles); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.saveOne(prefix, fh)
		if err != nil {
			s.RemoveAll(urls)
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *ImageStore) saveOne(prefix string, fh *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), uuid.NewString(), strings.ToLower(filepath.Ext(fh.Filename)))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	log.Debugf("Stored upload %s as %s", fh.Filename, name)
	return PublicPrefix + name, nil
}

// Remove deletes the file behind a public URL. Unknown URLs and missing files
// are ignored; other failures are logged.
func (s *ImageStore) Remove(url string) {
	if !strings.HasPrefix(url, PublicPrefix) {
		return
	}
	name := path.Base(url)
	if name == "." || name == "/" || name == ".." {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Failed to remove upload %s: %v", name, err)
	}
}

func (s *ImageStore) RemoveAll(urls []string) {
	for _, url := range urls {
		s.Remove(url)
	}
}
