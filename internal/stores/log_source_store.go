package stores

import (
	"context"
	"errors"
	"fmt"
	"io"

	"bot-analytics/internal/shared/filestorages"
)

var (
	ErrLogSourceAlreadyExist = errors.New("log source already exists")
	ErrLogSourceNotFound     = errors.New("log source not found")
)

// LogSource describes a stored raw access log.
type LogSource struct {
	Name string
	Size int64
}

// LogSourceStore keeps raw access logs, one file per name, under access-logs/.
// Put without overwrite is an atomic create-if-not-exists:
//   - Request A and Request B both upload "sample-log.log" simultaneously
//   - Request A's Put succeeds → log stored
//   - Request B's Put fails → ErrLogSourceAlreadyExist returned
//
//go:generate mockgen -source=log_source_store.go -destination=./mocks/log_source_store_mock.go -package=mocks
type LogSourceStore interface {
	Put(ctx context.Context, name string, r io.Reader, overwrite bool) (*LogSource, error)
	// Open returns the stored log for reading; the caller closes it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type logSourceStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLogSourceStore(fileStorage filestorages.FileStorage) LogSourceStore {
	return &logSourceStore{fileStorage: fileStorage, dir: "access-logs"}
}

func (s *logSourceStore) Put(ctx context.Context, name string, r io.Reader, overwrite bool) (*LogSource, error) {
	result, err := s.fileStorage.Put(ctx, s.key(name), r, filestorages.PutOptions{AllowOverwrite: overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return nil, ErrLogSourceAlreadyExist
		}
		return nil, fmt.Errorf("failed to put log source: %w", err)
	}
	return &LogSource{Name: name, Size: result.Size}, nil
}

func (s *logSourceStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Get(ctx, s.key(name))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrLogSourceNotFound
		}
		return nil, fmt.Errorf("failed to open log source: %w", err)
	}
	return rc, nil
}

func (s *logSourceStore) key(name string) string {
	return fmt.Sprintf("%s/%s", s.dir, name)
}
