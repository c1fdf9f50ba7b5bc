// Package sessionstore keeps the signed-in session markers. Markers live
// in a TTL cache and can be snapshotted to disk, so a restart restores the
// session without re-authenticating.
package sessionstore

import (
	"encoding/gob"
	"os"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/lifechef-health/careportal-api/internal/model"
)

func init() {
	gob.Register(model.User{})
}

type Store struct {
	c    *cache.Cache
	path string
}

// New creates a session store. Sessions expire after ttl. When path is
// non-empty it names the snapshot file used across restarts.
func New(ttl time.Duration, path string) *Store {
	return &Store{
		c:    cache.New(ttl, 2*ttl),
		path: path,
	}
}

// Put records the user for a session token.
func (s *Store) Put(token string, user model.User) {
	s.c.Set(token, user, cache.DefaultExpiration)
}

// Get resolves a session token to its user.
func (s *Store) Get(token string) (model.User, bool) {
	v, ok := s.c.Get(token)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// Delete removes a session marker.
func (s *Store) Delete(token string) {
	s.c.Delete(token)
}

// Any returns one live session's user, if any exists.
func (s *Store) Any() (model.User, bool) {
	for _, item := range s.c.Items() {
		if user, ok := item.Object.(model.User); ok {
			return user, true
		}
	}
	return model.User{}, false
}

// Save writes the current sessions to the snapshot file.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}
	return s.c.SaveFile(s.path)
}

// Load restores sessions from the snapshot file. A missing file is not an
// error; there is simply nothing to restore.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	if err := s.c.LoadFile(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}
