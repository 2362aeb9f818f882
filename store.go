package bnalpha

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the distinguishable failure kinds of the store.
var (
	// ErrInvalidName is returned when a user name trims down to nothing.
	ErrInvalidName = errors.New("user name is empty")
	// ErrDuplicateName is returned when a user with the same trimmed name already exists.
	ErrDuplicateName = errors.New("user name already exists")
	// ErrUserNotFound is returned when no user has the given id.
	ErrUserNotFound = errors.New("user not found")
)

// Store owns the full user collection for the session. It is the single
// source of truth: every read-side derivation (grid, stats, export) is a
// pure function of its current state, and every mutation goes through one
// of its methods.
//
// Store is not safe for concurrent use; there is exactly one interactive
// writer.
type Store struct {
	users    []*User // insertion order, stable
	onChange func(*Store)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make([]*User, 0)}
}

// NewStoreWith creates a store pre-populated with the given users,
// preserving their order. The change hook does not fire.
func NewStoreWith(users []*User) *Store {
	if users == nil {
		users = []*User{}
	}
	return &Store{users: users}
}

// OnChange registers a hook invoked after every successful mutation.
// The hook is used for write-through persistence and is fire-and-forget:
// it has no way to fail the mutation that triggered it.
func (s *Store) OnChange(fn func(*Store)) { s.onChange = fn }

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange(s)
	}
}

// Users returns the users in insertion order. The slice is shared, not a
// copy: callers treat it as read-only and mutate through the store.
func (s *Store) Users() []*User { return s.users }

// User returns the user with the given id, or an error.
func (s *Store) User(id string) (*User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUserNotFound, id)
}

// UserByName returns the first user whose trimmed name matches, or an error.
// Names are unique at creation time so "first" is also "only" unless a
// rename introduced a duplicate.
func (s *Store) UserByName(name string) (*User, error) {
	name = strings.TrimSpace(name)
	for _, u := range s.users {
		if strings.TrimSpace(u.Name) == name {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUserNotFound, name)
}

// AddUser creates a new user seeded with zero point records for the most
// recent seedDays days and appends it. The trimmed name must be non-empty
// and unique among existing users.
func (s *Store) AddUser(name string) (*User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrInvalidName
	}
	for _, u := range s.users {
		if strings.TrimSpace(u.Name) == trimmed {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, trimmed)
		}
	}
	u := newUser(trimmed, Today())
	s.users = append(s.users, u)
	s.changed()
	return u, nil
}

// DeleteUser removes the user and all three of its record streams.
func (s *Store) DeleteUser(id string) error {
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.changed()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUserNotFound, id)
}

// RenameUser replaces the user's display name.
//
// Unlike AddUser, the rename path performs no duplicate check: two users can
// end up with the same name through a rename. This mirrors the create/rename
// asymmetry the tool always had.
func (s *Store) RenameUser(id, newName string) error {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return ErrInvalidName
	}
	u, err := s.User(id)
	if err != nil {
		return err
	}
	u.Name = trimmed
	s.changed()
	return nil
}

// ReplaceAll swaps the entire user collection, verbatim. Used by import.
func (s *Store) ReplaceAll(users []*User) {
	if users == nil {
		users = []*User{}
	}
	s.users = users
	s.changed()
}
