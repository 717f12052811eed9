// Package session keeps the local state of the signed-in user between runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("session value not found")

var (
	bucketAuth    = []byte("auth")
	bucketBrowser = []byte("browser")

	keyToken   = []byte("token")
	keyRoom    = []byte("current_room")
	keyPicture = []byte("current_picture")
)

// Store is a bbolt-backed key/value session.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the session file at path.
func Open(path string) (*Store, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s := &Store{db: db}
	err = s.initBuckets()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketBrowser} {
			_, err := tx.CreateBucketIfNotExists(name)
			if err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// SaveToken stores the signed session token of the current user.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	return s.put(bucketAuth, keyToken, []byte(token))
}

func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.get(bucketAuth, keyToken)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// ClearToken signs the user out. Clearing an empty session is not an error.
func (s *Store) ClearToken(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Delete(keyToken)
	})
}

func (s *Store) SaveCurrentRoom(ctx context.Context, room string) error {
	return s.put(bucketBrowser, keyRoom, []byte(room))
}

func (s *Store) CurrentRoom(ctx context.Context) (string, error) {
	v, err := s.get(bucketBrowser, keyRoom)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) SaveCurrentPicture(ctx context.Context, picture []byte) error {
	return s.put(bucketBrowser, keyPicture, picture)
}

func (s *Store) CurrentPicture(ctx context.Context) ([]byte, error) {
	return s.get(bucketBrowser, keyPicture)
}

func (s *Store) put(bucket, key, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}
		return b.Put(key, value)
	})
}

// get returns a copy of the value; bbolt memory is only valid inside the transaction.
func (s *Store) get(bucket, key []byte) ([]byte, error) {
	var out []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return fmt.Errorf("%s bucket not found", bucket)
		}

		data := b.Get(key)
		if data == nil {
			return ErrNotFound
		}

		out = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
