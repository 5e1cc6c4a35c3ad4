// Package credentials is the registered-user store behind signup and login.
//
// Storage failures never reach callers: they are logged and the operation
// degrades to "no data" or "not written", which is all a lead-generation
// site needs. Uniqueness per email is delegated to the repository, whose
// Insert must be atomic.
package credentials

import (
	"context"
	"fmt"
	"path/filepath"

	"careerportal/internal/files"
	"careerportal/internal/models"
)

// CredentialRepository persists registered users.
type CredentialRepository interface {
	List(ctx context.Context) ([]models.RegisteredUser, error)
	// Insert stores u unless a user with the same email exists, reporting
	// whether it wrote.
	Insert(ctx context.Context, u models.RegisteredUser) (bool, error)
	// Find returns nil without error when the email is unknown.
	Find(ctx context.Context, email string) (*models.RegisteredUser, error)
	Clear(ctx context.Context) error
	Close() error
}

// Backend names accepted by OpenRepository.
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// OpenRepository opens the backend rooted at dir. key seals the JSON
// backend and is ignored by the others.
func OpenRepository(backend, dir string, key []byte) (CredentialRepository, error) {
	switch backend {
	case BackendJSON, "":
		return files.NewJSONUserStore(dir, key)
	case BackendBolt:
		return files.NewBoltUserStore(filepath.Join(dir, files.UsersKey+".bolt"))
	case BackendSQLite:
		return files.NewSQLUserStore(filepath.Join(dir, files.UsersKey+".db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
