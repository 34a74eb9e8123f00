package store

import (
	"context"
	"errors"
	"strings"

	"allurra/internal/models"
)

var (
	ErrInvalidEmail  = errors.New("email is not well-formed")
	ErrEmptyPassword = errors.New("password must not be empty")
)

// CredentialVerifier decides whether a login or signup attempt is
// acceptable. Real credential verification against an identity backend is
// out of scope for the store and must be supplied by the caller; the
// default implementation only checks that the input looks plausible.
type CredentialVerifier interface {
	Verify(email, password string) error
}

// SyntacticVerifier accepts any input with a well-formed-looking email and
// a non-empty password. It performs no real authentication.
type SyntacticVerifier struct{}

func (SyntacticVerifier) Verify(email, password string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

var defaultProfile = models.UserProfile{
	Name:    "Event Organizer",
	Email:   "organizer@allurra.com",
	Phone:   "+234 809 292 6086",
	Company: "Allurra Events",
}

// Profile returns the current organizer profile
func (s *Store) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SaveProfile replaces the profile record in full
func (s *Store) SaveProfile(ctx context.Context, profile models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile
	s.persist(KeyProfile, s.profile)
}

// AuthState returns the current authentication state
func (s *Store) AuthState() models.AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// Login merges the given email into the existing profile and marks the
// session authenticated. Both profile and auth state are persisted.
func (s *Store) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	if err := s.verifier.Verify(email, password); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.UserProfile{
		Name:    s.profile.Name,
		Email:   email,
		Phone:   s.profile.Phone,
		Company: s.profile.Company,
	}

	s.profile = user
	s.auth = models.AuthState{IsAuthenticated: true, User: &user}
	s.persist(KeyAuth, s.auth)
	s.persist(KeyProfile, s.profile)

	return user, nil
}

// Signup creates the profile from the given details and marks the session
// authenticated, with no external verification
func (s *Store) Signup(ctx context.Context, name, email, password, phone, company string) (models.UserProfile, error) {
	if err := s.verifier.Verify(email, password); err != nil {
		return models.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.UserProfile{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: company,
	}

	s.profile = user
	s.auth = models.AuthState{IsAuthenticated: true, User: &user}
	s.persist(KeyAuth, s.auth)
	s.persist(KeyProfile, s.profile)

	return user, nil
}

// Logout clears only the authentication flag and signed-in user. Events,
// bookings, cart and profile are kept.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auth = models.AuthState{IsAuthenticated: false, User: nil}
	s.persist(KeyAuth, s.auth)
}
