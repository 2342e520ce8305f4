package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"mlinput/internal/record"
)

var (
	// ErrExists reports that Create would overwrite an existing document.
	ErrExists = errors.New("document already exists")
	// ErrLocked reports that another process holds the document lock.
	ErrLocked = errors.New("document is locked by another process")
)

const lockRetryDelay = 50 * time.Millisecond

type value struct {
	Code string `toml:"code"`
	Text string `toml:"text"`
}

type file struct {
	DefaultLanguage string  `toml:"default_language"`
	Values          []value `toml:"values"`
}

// Decode parses a TOML document into a record.
func Decode(data []byte) (*record.Record, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	entries := make([]record.Entry, 0, len(f.Values))
	for _, v := range f.Values {
		entries = append(entries, record.Entry{Code: v.Code, Text: v.Text})
	}
	rec, err := record.FromEntries(f.DefaultLanguage, entries)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return rec, nil
}

// Encode renders rec as a TOML document.
func Encode(rec *record.Record) ([]byte, error) {
	f := file{DefaultLanguage: rec.DefaultLanguage()}
	for _, e := range rec.Entries() {
		f.Values = append(f.Values, value{Code: e.Code, Text: e.Text})
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads the document at path without locking.
func Load(path string) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Decode(data)
}

// Save writes rec to path, replacing the file atomically.
func Save(path string, rec *record.Record) error {
	data, err := Encode(rec)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Store guards one document path with a file lock.
type Store struct {
	path string
	lock *flock.Flock
}

// Open returns a store for path. The document itself need not exist yet.
func Open(path string) *Store {
	return &Store{path: path, lock: flock.New(path + ".lock")}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Create writes a new document holding an empty default language value.
func (s *Store) Create(ctx context.Context, defaultLanguage string, overwrite bool) (*record.Record, error) {
	rec, err := record.New(defaultLanguage)
	if err != nil {
		return nil, err
	}
	err = s.withLock(ctx, func() error {
		if !overwrite {
			if _, statErr := os.Stat(s.path); statErr == nil {
				return fmt.Errorf("%w: %s", ErrExists, s.path)
			} else if !errors.Is(statErr, fs.ErrNotExist) {
				return fmt.Errorf("inspect document: %w", statErr)
			}
		}
		return Save(s.path, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Read loads the document under a shared lock.
func (s *Store) Read(ctx context.Context) (*record.Record, error) {
	locked, err := s.lock.TryRLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, lockError(err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer s.lock.Unlock()
	return Load(s.path)
}

// Update loads the document, applies fn and saves the result while holding
// the exclusive lock. fn returning a nil record leaves the file untouched.
func (s *Store) Update(ctx context.Context, fn func(*record.Record) (*record.Record, error)) (*record.Record, error) {
	var out *record.Record
	err := s.withLock(ctx, func() error {
		current, err := Load(s.path)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		if next == nil {
			out = current
			return nil
		}
		if err := Save(s.path, next); err != nil {
			return err
		}
		out = next
		return nil
	})
	return out, err
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return lockError(err)
	}
	if !locked {
		return ErrLocked
	}
	defer s.lock.Unlock()
	return fn()
}

func lockError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrLocked, err)
	}
	return fmt.Errorf("acquire document lock: %w", err)
}
