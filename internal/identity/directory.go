// Package identity holds the fixed set of users and the identity currently posting.
package identity

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/debemdeboas/dallama/internal/cache"
	"github.com/debemdeboas/dallama/internal/model"
)

var identityLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	identityLogger = l
}

type Directory struct {
	users []model.User
	byID  *cache.Cache[model.UserID, model.User]

	mu      sync.RWMutex
	current model.UserID
}

// NewDirectory loads users in display order. The first user becomes the current identity.
func NewDirectory(users []model.User) (*Directory, error) {
	if len(users) == 0 {
		return nil, errors.New("identity directory needs at least one user")
	}

	d := &Directory{
		users: make([]model.User, 0, len(users)),
		byID:  cache.NewCache[model.UserID, model.User](),
	}
	for _, u := range users {
		if !d.byID.SetIfAbsent(u.ID, u) {
			return nil, fmt.Errorf("duplicate user id %d", u.ID)
		}
		d.users = append(d.users, u)
	}
	d.current = users[0].ID

	return d, nil
}

func (d *Directory) Users() []model.User {
	return append([]model.User(nil), d.users...)
}

func (d *Directory) Get(id model.UserID) (model.User, error) {
	u, ok := d.byID.Get(id)
	if !ok {
		return model.User{}, fmt.Errorf("user %d: %w", id, model.ErrUserNotFound)
	}
	return u, nil
}

func (d *Directory) Exists(id model.UserID) bool {
	_, ok := d.byID.Get(id)
	return ok
}

func (d *Directory) Current() model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, _ := d.byID.Get(d.current)
	return u
}

// Switch makes id the acting identity.
func (d *Directory) Switch(id model.UserID) (model.User, error) {
	u, err := d.Get(id)
	if err != nil {
		return model.User{}, err
	}

	d.mu.Lock()
	d.current = id
	d.mu.Unlock()

	identityLogger.Info().Int("user_id", int(id)).Str("name", u.Name).Msg("Switched identity")
	return u, nil
}
