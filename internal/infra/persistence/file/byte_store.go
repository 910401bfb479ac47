package file

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// osByteStore stores the snapshot bytes in a single file on disk. Saves go
// through a temp file and rename so a crashed write never leaves a partial
// snapshot behind.
type osByteStore struct {
	path string
}

// NewOSByteStore creates a file-backed byte store at the given path.
func NewOSByteStore(path string) ByteStore {
	return &osByteStore{path: path}
}

func (s *osByteStore) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}

		return nil, errors.WithStack(err)
	}

	return data, nil
}

func (s *osByteStore) Save(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.WithStack(err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return errors.WithStack(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return errors.WithStack(err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return errors.WithStack(err)
	}

	return nil
}
