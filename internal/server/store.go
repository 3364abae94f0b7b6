package server

import (
	"fmt"
	"sync"

	"homeport/internal/waypoints"
)

// DefaultSlots is the home slot limit applied to users without an explicit
// override.
const DefaultSlots = 10

// Store is the in-memory waypoint store backing the built-in server. It
// enforces the same rules a production store does: name validation, name
// uniqueness per owner, and per-user slot limits.
//
// All methods are safe for concurrent use. Mutations invoke the onChange
// callback (if set) after the store has been updated, outside the lock.
type Store struct {
	mu           sync.RWMutex
	homes        map[string][]waypoints.Entry // keyed by owner UUID
	warps        []waypoints.Entry
	slots        map[string]int // per-user overrides
	defaultSlots int

	// onChange is called with the owner UUID after a home mutation, or with
	// an empty string after a warp mutation.
	onChange func(owner string)
}

// NewStore creates an empty store with the default slot limit.
func NewStore() *Store {
	return &Store{
		homes:        make(map[string][]waypoints.Entry),
		slots:        make(map[string]int),
		defaultSlots: DefaultSlots,
	}
}

// OnChange registers the mutation callback. Must be called before the store
// is shared.
func (s *Store) OnChange(fn func(owner string)) {
	s.onChange = fn
}

// SetDefaultSlots overrides the default per-user home limit.
func (s *Store) SetDefaultSlots(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultSlots = n
}

// Homes returns a copy of owner's home list, sorted as stored (creation
// order). Unknown owners get an empty list, not an error.
func (s *Store) Homes(ownerUUID string) []waypoints.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]waypoints.Entry, len(s.homes[ownerUUID]))
	copy(entries, s.homes[ownerUUID])
	return entries
}

// PublicHomes returns every home marked public, across all owners.
func (s *Store) PublicHomes() []waypoints.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []waypoints.Entry
	for _, list := range s.homes {
		for _, e := range list {
			if e.Public {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

// Warps returns a copy of the warp list.
func (s *Store) Warps() []waypoints.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]waypoints.Entry, len(s.warps))
	copy(entries, s.warps)
	return entries
}

// Slots reports the home slot limit for a user.
func (s *Store) Slots(uuid string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n, ok := s.slots[uuid]; ok {
		return n
	}
	return s.defaultSlots
}

// SetSlots sets a per-user slot override.
func (s *Store) SetSlots(uuid string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[uuid] = n
}

// CreateHome adds a home for owner. The name is validated and normalized the
// same way the client does it, so a well-behaved client never sees these
// validation errors; they exist for everything else that talks to the API.
func (s *Store) CreateHome(owner waypoints.User, name string, pos waypoints.Position) (*waypoints.Entry, error) {
	if err := waypoints.ValidateName(name); err != nil {
		return nil, err
	}
	name = waypoints.NormalizeName(name)

	s.mu.Lock()
	list := s.homes[owner.UUID]
	limit := s.defaultSlots
	if n, ok := s.slots[owner.UUID]; ok {
		limit = n
	}
	if limit >= 0 && len(list) >= limit {
		s.mu.Unlock()
		return nil, waypoints.NewValidationError(
			fmt.Sprintf("You have reached your home limit (%d/%d)", len(list), limit))
	}
	for _, e := range list {
		if e.Name == name {
			s.mu.Unlock()
			return nil, waypoints.NewValidationError(
				fmt.Sprintf("A home named %s already exists", name))
		}
	}

	entry := waypoints.Entry{
		Kind:     waypoints.KindHome,
		Name:     name,
		Owner:    owner,
		Position: pos,
	}
	s.homes[owner.UUID] = append(list, entry)
	s.mu.Unlock()

	s.notify(owner.UUID)
	return &entry, nil
}

// DeleteHome removes owner's home by name. Deleting a home that does not
// exist is an error so the caller can report it.
func (s *Store) DeleteHome(ownerUUID, name string) error {
	s.mu.Lock()
	list := s.homes[ownerUUID]
	idx := -1
	for i, e := range list {
		if e.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return waypoints.NewValidationError(fmt.Sprintf("%s not found", name))
	}
	s.homes[ownerUUID] = append(list[:idx], list[idx+1:]...)
	s.mu.Unlock()

	s.notify(ownerUUID)
	return nil
}

// AddWarp adds a server warp. Warp names share the home name rules.
func (s *Store) AddWarp(name string, pos waypoints.Position, description string) (*waypoints.Entry, error) {
	if err := waypoints.ValidateName(name); err != nil {
		return nil, err
	}
	name = waypoints.NormalizeName(name)

	s.mu.Lock()
	for _, e := range s.warps {
		if e.Name == name {
			s.mu.Unlock()
			return nil, waypoints.NewValidationError(
				fmt.Sprintf("A warp named %s already exists", name))
		}
	}
	entry := waypoints.Entry{
		Kind:        waypoints.KindWarp,
		Name:        name,
		Position:    pos,
		Description: description,
		Public:      true,
	}
	s.warps = append(s.warps, entry)
	s.mu.Unlock()

	s.notify("")
	return &entry, nil
}

// DeleteWarp removes a warp by name.
func (s *Store) DeleteWarp(name string) error {
	s.mu.Lock()
	idx := -1
	for i, e := range s.warps {
		if e.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return waypoints.NewValidationError(fmt.Sprintf("%s not found", name))
	}
	s.warps = append(s.warps[:idx], s.warps[idx+1:]...)
	s.mu.Unlock()

	s.notify("")
	return nil
}

// SetPublic flips the public flag on an owner's home.
func (s *Store) SetPublic(ownerUUID, name string, public bool) error {
	s.mu.Lock()
	list := s.homes[ownerUUID]
	for i := range list {
		if list[i].Name == name {
			list[i].Public = public
			s.mu.Unlock()
			s.notify(ownerUUID)
			return nil
		}
	}
	s.mu.Unlock()
	return waypoints.NewValidationError(fmt.Sprintf("%s not found", name))
}

func (s *Store) notify(owner string) {
	if s.onChange != nil {
		s.onChange(owner)
	}
}
