package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/reef-dash/constants"
)

const fileName = "leaderboard.msgpack"

// fileFormat is the on-disk document; Version guards future layout changes
type fileFormat struct {
	Version int     `msgpack:"version"`
	AppID   string  `msgpack:"app_id"`
	Entries []Entry `msgpack:"entries"`
}

const fileVersion = 1

// FileStore persists entries as a msgpack document, rewritten atomically on each append
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// DefaultPath returns the leaderboard file under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, constants.AppID, fileName), nil
}

// NewFileStore creates a store at path, creating parent directories as needed
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create leaderboard dir: %w", err)
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

// load reads the document; a missing file is an empty leaderboard
func (f *FileStore) load() (fileFormat, error) {
	doc := fileFormat{Version: fileVersion, AppID: constants.AppID}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("read leaderboard: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode leaderboard %s: %w", f.path, err)
	}
	if doc.Version != fileVersion {
		return doc, fmt.Errorf("decode leaderboard %s: unsupported version %d", f.path, doc.Version)
	}
	return doc, nil
}

// save writes to a temp file in the same directory and renames it over the target
func (f *FileStore) save(doc fileFormat) error {
	data, err := msgpack.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), fileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

func (f *FileStore) Append(ctx context.Context, name string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, err := newEntry(name, score, f.now())
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Entries = append(doc.Entries, e)
	return f.save(doc)
}

func (f *FileStore) TopN(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	return top(doc.Entries, n), nil
}
