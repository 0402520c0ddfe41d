package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"nexus-tube/domain/model"
)

type ISessionUsecase interface {
	Signup(name, handle, phone string) (model.User, error)
	Login(userID string) (model.User, error)
	LoginAsDirector() model.User
	Logout()
	SwitchUser(userID string) (model.User, error)
	UpdateUser(patch model.UserPatch) (model.User, error)
	AddUser(name, email string) (model.User, error)
	ActiveUser() model.User
	IsAuthenticated() bool
	AvailableUsers() []model.User
	User(id string) (model.User, error)
}

// Signup creates a user after checking that the name is free among users and
// video channels, the handle among handles and the phone among phones. A
// rejected signup leaves the store untouched.
func (s *Store) Signup(name, handle, phone string) (model.User, error) {
	name = strings.TrimSpace(name)
	handle = strings.TrimSpace(handle)
	phone = strings.TrimSpace(phone)
	var created model.User
	err := s.apply(func() ([]model.StoreEvent, error) {
		if name == "" || handle == "" || phone == "" {
			return nil, fmt.Errorf("%w: name, handle and phone are required", model.ErrValidation)
		}
		if err := s.checkSignup(name, handle, phone); err != nil {
			return nil, err
		}
		created = model.User{
			ID:          s.newID("u_"),
			Name:        name,
			Handle:      handle,
			Phone:       phone,
			Avatar:      avatarURL(name, 200),
			Description: fmt.Sprintf("Welcome to %s's official channel!", name),
		}
		s.users = append([]model.User{created}, s.users...)
		s.userData[created.ID] = model.NewUserData()
		s.active = created
		s.authenticated = true
		return []model.StoreEvent{s.event(model.EventSessionChanged, created.ID, fmt.Sprintf("Welcome, %s!", name))}, nil
	})
	if err != nil {
		return model.User{}, err
	}
	return created, nil
}

func (s *Store) checkSignup(name, handle, phone string) error {
	bareHandle := strings.TrimPrefix(handle, "@")
	for _, u := range s.users {
		if strings.EqualFold(u.Name, name) {
			return fmt.Errorf("%w: %w: name %q is taken", model.ErrValidation, model.ErrConflict, name)
		}
		if u.Handle != "" && strings.EqualFold(strings.TrimPrefix(u.Handle, "@"), bareHandle) {
			return fmt.Errorf("%w: %w: handle %q is taken", model.ErrValidation, model.ErrConflict, handle)
		}
		if u.Phone != "" && u.Phone == phone {
			return fmt.Errorf("%w: %w: phone is already registered", model.ErrValidation, model.ErrConflict)
		}
	}
	for _, v := range s.videos {
		if strings.EqualFold(v.ChannelName, name) {
			return fmt.Errorf("%w: %w: name %q is an existing channel", model.ErrValidation, model.ErrConflict, name)
		}
	}
	return nil
}

// Login activates a roster user and marks the session authenticated
func (s *Store) Login(userID string) (model.User, error) {
	var found model.User
	err := s.apply(func() ([]model.StoreEvent, error) {
		u, ok := s.rosterUser(userID)
		if !ok {
			return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, userID)
		}
		found = u
		s.active = u
		s.authenticated = true
		s.data(u.ID)
		return []model.StoreEvent{s.event(model.EventSessionChanged, u.ID, "Welcome back, "+u.Name)}, nil
	})
	return found, err
}

// LoginAsDirector activates the director identity. The password check happens
// before this call, see DirectorGate.
func (s *Store) LoginAsDirector() model.User {
	var director model.User
	_ = s.apply(func() ([]model.StoreEvent, error) {
		director = s.director
		s.active = s.director
		s.authenticated = true
		s.data(s.director.ID)
		return []model.StoreEvent{s.event(model.EventSessionChanged, s.director.ID, "")}, nil
	})
	return director
}

func (s *Store) Logout() {
	_ = s.apply(func() ([]model.StoreEvent, error) {
		ev := s.event(model.EventSessionChanged, "", "Logged out successfully")
		s.logout()
		return []model.StoreEvent{ev}, nil
	})
}

func (s *Store) logout() {
	s.authenticated = false
	s.active = s.defaultUser()
}

// SwitchUser changes the active user without touching the authenticated flag
func (s *Store) SwitchUser(userID string) (model.User, error) {
	var found model.User
	err := s.apply(func() ([]model.StoreEvent, error) {
		u, ok := s.rosterUser(userID)
		if !ok {
			return nil, fmt.Errorf("%w: user %s", model.ErrNotFound, userID)
		}
		found = u
		s.active = u
		s.data(u.ID)
		return []model.StoreEvent{s.event(model.EventSessionChanged, u.ID, "Switched to "+u.Name)}, nil
	})
	return found, err
}

// UpdateUser applies patch to the active user and mirrors it into the roster
func (s *Store) UpdateUser(patch model.UserPatch) (model.User, error) {
	var updated model.User
	err := s.apply(func() ([]model.StoreEvent, error) {
		if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", model.ErrValidation)
		}
		updated = patch.Apply(s.active)
		s.active = updated
		if updated.ID == s.director.ID {
			s.director = updated
		}
		for i := range s.users {
			if s.users[i].ID == updated.ID {
				s.users[i] = patch.Apply(s.users[i])
			}
		}
		return []model.StoreEvent{s.event(model.EventUserUpdated, updated.ID, "")}, nil
	})
	return updated, err
}

// AddUser appends an extra profile to the roster and switches to it
func (s *Store) AddUser(name, email string) (model.User, error) {
	name = strings.TrimSpace(name)
	var created model.User
	err := s.apply(func() ([]model.StoreEvent, error) {
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", model.ErrValidation)
		}
		created = model.User{
			ID:          s.newID("u_"),
			Name:        name,
			Email:       strings.TrimSpace(email),
			Avatar:      avatarURL(name, 0),
			Description: fmt.Sprintf("Welcome to %s's official channel!", name),
		}
		s.users = append(s.users, created)
		s.userData[created.ID] = model.NewUserData()
		s.active = created
		return []model.StoreEvent{s.event(model.EventSessionChanged, created.ID, "Created profile: "+name)}, nil
	})
	return created, err
}

func (s *Store) ActiveUser() model.User {
	var u model.User
	s.read(func() { u = s.active })
	return u
}

func (s *Store) IsAuthenticated() bool {
	var ok bool
	s.read(func() { ok = s.authenticated })
	return ok
}

// AvailableUsers returns the roster in display order. The director is not part
// of it.
func (s *Store) AvailableUsers() []model.User {
	var users []model.User
	s.read(func() { users = append([]model.User{}, s.users...) })
	return users
}

// User resolves a roster user or the director by id
func (s *Store) User(id string) (model.User, error) {
	var (
		u  model.User
		ok bool
	)
	s.read(func() { u, ok = s.findUser(id) })
	if !ok {
		return model.User{}, fmt.Errorf("%w: user %s", model.ErrNotFound, id)
	}
	return u, nil
}

func (s *Store) rosterUser(id string) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

func avatarURL(name string, size int) string {
	escaped := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
	if size > 0 {
		return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random&size=%d", escaped, size)
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", escaped)
}
