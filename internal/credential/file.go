package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore persists credentials in a YAML file readable only by the owner.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type fileContents struct {
	Keys map[string]string `yaml:"keys"`
}

// NewFileStore creates a store backed by path. The file is created on the
// first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Name() string { return "file" }

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Lookup(ctx context.Context, provider string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return "", false, err
	}
	v := contents.Keys[strings.ToLower(provider)]
	return v, v != "", nil
}

// Save writes value for provider, keeping other providers' keys.
func (f *FileStore) Save(provider, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return err
	}
	contents.Keys[strings.ToLower(provider)] = value
	return f.write(contents)
}

// Delete removes provider's key. A missing file is not an error.
func (f *FileStore) Delete(provider string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := contents.Keys[strings.ToLower(provider)]; !ok {
		return nil
	}
	delete(contents.Keys, strings.ToLower(provider))
	return f.write(contents)
}

func (f *FileStore) read() (fileContents, error) {
	contents := fileContents{Keys: map[string]string{}}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return contents, nil
	}
	if err != nil {
		return contents, fmt.Errorf("read credential store: %w", err)
	}
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return contents, fmt.Errorf("parse credential store %s: %w", f.path, err)
	}
	if contents.Keys == nil {
		contents.Keys = map[string]string{}
	}
	return contents, nil
}

func (f *FileStore) write(contents fileContents) error {
	data, err := yaml.Marshal(contents)
	if err != nil {
		return fmt.Errorf("encode credential store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("write credential store: %w", err)
	}
	return nil
}
