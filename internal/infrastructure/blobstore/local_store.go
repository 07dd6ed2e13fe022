package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/hockey-stats/internal/platform/id"
	"github.com/valyala/bytebufferpool"
)

var (
	ErrTooLarge    = crerr.New("blob exceeds size limit")
	ErrInvalidName = crerr.New("invalid blob name")
)

// LocalStore keeps uploaded screenshots as flat files in one directory.
type LocalStore struct {
	dir      string
	maxBytes int64
	ids      id.Generator
}

func NewLocalStore(dir string, maxBytes int64, ids id.Generator) (*LocalStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, crerr.New("upload dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create upload dir %s", dir)
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	return &LocalStore{dir: dir, maxBytes: maxBytes, ids: ids}, nil
}

// Save writes the content as game_<gameID>_<uuid><ext> and returns the file name.
func (s *LocalStore) Save(ctx context.Context, gameID int64, ext string, content io.Reader) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	reader := content
	if s.maxBytes > 0 {
		reader = io.LimitReader(content, s.maxBytes+1)
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", crerr.Wrap(err, "read upload")
	}
	if s.maxBytes > 0 && int64(buf.Len()) > s.maxBytes {
		return "", crerr.Wrapf(ErrTooLarge, "upload is larger than %d bytes", s.maxBytes)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	suffix, err := s.ids.NewID()
	if err != nil {
		return "", crerr.Wrap(err, "generate blob name")
	}
	name := fmt.Sprintf("game_%d_%s%s", gameID, suffix, sanitizeExt(ext))

	if err := os.WriteFile(filepath.Join(s.dir, name), buf.B, 0o644); err != nil {
		return "", crerr.Wrapf(err, "write blob %s", name)
	}
	return name, nil
}

// Path resolves a stored file name to its location on disk.
func (s *LocalStore) Path(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", crerr.Wrapf(ErrInvalidName, "%q", name)
	}
	return filepath.Join(s.dir, name), nil
}

func sanitizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	if len(ext) > 8 {
		return ""
	}
	return ext
}
