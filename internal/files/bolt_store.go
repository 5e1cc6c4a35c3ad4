package files

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"careerportal/internal/models"
)

// BoltUserStore keys users by email in a single bucket. Insert runs the
// existence check and the put inside one write transaction.
type BoltUserStore struct {
	db *bolt.DB
}

func NewBoltUserStore(path string) (*BoltUserStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(UsersKey))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &BoltUserStore{db: db}, nil
}

func (s *BoltUserStore) List(ctx context.Context) ([]models.RegisteredUser, error) {
	var users []models.RegisteredUser
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(UsersKey)).ForEach(func(k, v []byte) error {
			var u models.RegisteredUser
			if err := json.Unmarshal(v, &u); err != nil {
				return fmt.Errorf("cant parse user %q: %w", k, err)
			}
			users = append(users, u)
			return nil
		})
	})
	return users, err
}

func (s *BoltUserStore) Insert(ctx context.Context, u models.RegisteredUser) (bool, error) {
	inserted := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(UsersKey))
		if bucket.Get([]byte(u.Email)) != nil {
			return nil
		}
		raw, err := json.Marshal(u)
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(u.Email), raw); err != nil {
			return err
		}
		inserted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

func (s *BoltUserStore) Find(ctx context.Context, email string) (*models.RegisteredUser, error) {
	var user *models.RegisteredUser
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(UsersKey)).Get([]byte(email))
		if raw == nil {
			return nil
		}
		var u models.RegisteredUser
		if err := json.Unmarshal(raw, &u); err != nil {
			return fmt.Errorf("cant parse user: %w", err)
		}
		user = &u
		return nil
	})
	return user, err
}

func (s *BoltUserStore) Clear(ctx context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(UsersKey)); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket([]byte(UsersKey))
		return err
	})
}

func (s *BoltUserStore) Close() error { return s.db.Close() }
