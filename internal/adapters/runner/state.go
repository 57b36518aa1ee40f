package runner

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/setupjs/internal/core/domain"
	"go.trai.ch/setupjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*StateStore)(nil)

// StateStore implements ports.StateStore.
// Inside CI it writes the state file command and reads STATE_<key>; elsewhere it keeps a
// JSON file under the workspace directory.
type StateStore struct {
	getenv    func(string) string
	localPath string
	mu        sync.Mutex
}

// NewStateStore creates a StateStore whose local file lives under the current directory.
func NewStateStore() *StateStore {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return NewStateStoreWith(os.Getenv, domain.DefaultStatePath(cwd))
}

// NewStateStoreWith creates a StateStore with an explicit environment and local file.
func NewStateStoreWith(getenv func(string) string, localPath string) *StateStore {
	return &StateStore{getenv: getenv, localPath: localPath}
}

// Save persists value under key.
func (s *StateStore) Save(key, value string) error {
	if path := s.getenv(StateFileEnv); path != "" {
		line, err := formatKeyValue(key, value)
		if err == nil {
			err = appendFile(path, line)
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "key", key)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocal()
	if err != nil {
		return err
	}
	state[key] = value
	return s.writeLocal(state)
}

// Get returns the value saved under key, or "" when absent.
// Inside CI only STATE_<key> is consulted.
func (s *StateStore) Get(key string) (string, error) {
	if s.getenv(StateFileEnv) != "" {
		return s.getenv(StateEnvPrefix + key), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocal()
	if err != nil {
		return "", err
	}
	return state[key], nil
}

func (s *StateStore) readLocal() (map[string]string, error) {
	//nolint:gosec // path is built from the workspace directory
	data, err := os.ReadFile(s.localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", s.localPath)
	}

	state := map[string]string{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", s.localPath)
	}
	return state, nil
}

func (s *StateStore) writeLocal(state map[string]string) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.localPath), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStateWriteFailed.Error())
	}

	//nolint:gosec // path is built from the workspace directory
	if err := os.WriteFile(s.localPath, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", s.localPath)
	}
	return nil
}
