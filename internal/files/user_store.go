package files

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"careerportal/internal/crypto"
	"careerportal/internal/models"
)

// UsersKey names the single collection every backend persists the
// registered users under.
const UsersKey = "cpc_registered_users"

// JSONUserStore keeps the whole collection in one JSON document, optionally
// sealed with AES-GCM.
type JSONUserStore struct {
	filePath string
	key      []byte
	mu       sync.Mutex
}

// NewJSONUserStore stores the collection in dir/UsersKey.json, or
// dir/UsersKey.json.enc when key is non-nil.
func NewJSONUserStore(dir string, key []byte) (*JSONUserStore, error) {
	if key != nil && len(key) != 32 {
		return nil, crypto.ErrInvalidKeyLength
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	name := UsersKey + ".json"
	if key != nil {
		name += ".enc"
	}
	return &JSONUserStore{filePath: filepath.Join(dir, name), key: key}, nil
}

// Path returns the backing file.
func (s *JSONUserStore) Path() string { return s.filePath }

func (s *JSONUserStore) List(ctx context.Context) ([]models.RegisteredUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// Insert appends u unless its email is already present. The mutex makes the
// read-check-write atomic within this process.
func (s *JSONUserStore) Insert(ctx context.Context, u models.RegisteredUser) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return false, err
	}
	for _, v := range users {
		if v.Email == u.Email {
			return false, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	users = append(users, u)
	return true, s.writeAll(users)
}

func (s *JSONUserStore) Find(ctx context.Context, email string) (*models.RegisteredUser, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Clear removes the collection; a missing file is already clear.
func (s *JSONUserStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *JSONUserStore) Close() error { return nil }

// readAll treats an absent file as an empty collection.
func (s *JSONUserStore) readAll() ([]models.RegisteredUser, error) {
	blob, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if s.key != nil {
		if blob, err = crypto.DecryptAESGCM(s.key, blob); err != nil {
			return nil, fmt.Errorf("decrypt %s: %w", s.filePath, err)
		}
	}
	var users []models.RegisteredUser
	if err := json.Unmarshal(blob, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.filePath, err)
	}
	return users, nil
}

// writeAll replaces the file via rename so readers never see a torn write.
func (s *JSONUserStore) writeAll(users []models.RegisteredUser) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	if s.key != nil {
		if data, err = crypto.EncryptAESGCM(s.key, data); err != nil {
			return err
		}
	}
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.filePath)
}
