package store

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/crypto/blake2b"

	"nycschools/internal/domain"
	"nycschools/internal/logfields"
)

const (
	selectionFile = "selection.json"

	// fileFormatVersion is the current on-disk document version.
	fileFormatVersion = 1
)

// fileDoc is the on-disk JSON structure. Sum is the hex BLAKE2b-256 digest of
// the entries; a document whose digest does not match is ignored.
type fileDoc struct {
	V       int               `json:"v"`
	Entries map[string]string `json:"entries"`
	Sum     string            `json:"sum"`
}

// FileStore persists key/value state to a JSON file under dir.
type FileStore struct {
	dir    string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, logger: slog.Default()}
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string { return filepath.Join(s.dir, selectionFile) }

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// Contains reports whether key has a value.
func (s *FileStore) Contains(key string) (bool, error) {
	_, ok, err := s.Get(key)
	return ok, err
}

// Set stores value under key, replacing any previous value.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = value
	doc := fileDoc{V: fileFormatVersion, Entries: entries, Sum: checksum(entries)}
	if err := writeDoc(s.Path(), doc); err != nil {
		return fmt.Errorf("write %s: %w", selectionFile, err)
	}
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	doc, found, err := readDoc(s.Path())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", selectionFile, err)
	}
	if !found || doc.Entries == nil {
		return map[string]string{}, nil
	}
	if doc.V > fileFormatVersion {
		return nil, fmt.Errorf("unsupported %s version %d", selectionFile, doc.V)
	}
	if doc.Sum != checksum(doc.Entries) {
		s.logger.Warn("discarding selection file with bad checksum", logfields.Store(s.Path()))
		return map[string]string{}, nil
	}
	return doc.Entries, nil
}

// checksum digests entries in key order.
func checksum(entries map[string]string) string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h, _ := blake2b.New256(nil)
	for _, k := range keys {
		fmt.Fprintf(h, "%d:%s%d:%s", len(k), k, len(entries[k]), entries[k])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Compile-time assertion that FileStore implements domain.SelectionStore.
var _ domain.SelectionStore = (*FileStore)(nil)
