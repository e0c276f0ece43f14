// Package storage provides the durable key-value slots the game keeps between runs.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Store is a string-keyed slot store. Get reports ok=false for a missing key.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// FileStore keeps every slot in a single JSON object on disk
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	slots, err := s.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := slots[key]
	return value, ok, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	slots, err := s.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future write
		slots = make(map[string]json.RawMessage)
	}
	slots[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode slot %q", key)
	}
	return s.write(data)
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	slots := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return slots, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.path)
	}
	if len(data) == 0 {
		return slots, nil
	}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.path)
	}
	return slots, nil
}

func (s *FileStore) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "replace %s", s.path)
	}
	return nil
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	slots map[string][]byte
	mutex sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.slots[key] = stored
	return nil
}
