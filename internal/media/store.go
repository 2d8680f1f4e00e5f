package media

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotImage is returned when an uploaded file does not sniff as a
// supported image format.
var ErrNotImage = errors.New("uploaded file is not an image")

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// Store keeps validated image uploads on disk under random filenames, so a
// hostile original filename never reaches the filesystem.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save sniffs the upload's content type and, if it is a supported image,
// writes it under a fresh uuid filename. The stored filename is returned.
func (s *Store) Save(upload io.Reader) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(upload, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrNotImage
	}

	filename := uuid.New().String() + ext
	file, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(head); err != nil {
		return "", err
	}
	if _, err := io.Copy(file, upload); err != nil {
		return "", err
	}
	return filename, nil
}

// Dir exposes the storage root for the static file server.
func (s *Store) Dir() string { return s.dir }
