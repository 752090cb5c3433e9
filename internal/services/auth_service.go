package services

import (
	"database/sql"
	"errors"

	"morefix/internal/domain"
	"morefix/internal/repos"
	"morefix/internal/validate"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Closed set of auth failure kinds. Handlers map these to localized
// messages; provider-level causes never reach the user.
var (
	ErrUserNotFound    = errors.New("no account for this email")
	ErrWrongCredential = errors.New("wrong email or password")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrWeakPassword    = errors.New("password too weak")
	ErrEmailInUse      = errors.New("email already in use")
)

// Session-change topics published on the bus.
const (
	TopicSignIn  = "session.signin"  // args: sid, userID
	TopicSignOut = "session.signout" // args: sid
)

// ResetMailer delivers a password reset link.
type ResetMailer interface {
	SendReset(to, link string) error
}

type AuthService struct {
	Users   *repos.UserRepo
	Resets  *repos.ResetRepo
	Mailer  ResetMailer
	Bus     EventBus.Bus
	BaseURL string
}

func (s *AuthService) SignIn(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrWrongCredential
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	s.publish(TopicSignIn, sid, u.ID)
	return u, nil
}

func (s *AuthService) SignUp(sid, email, password, name string) (*domain.User, error) {
	email, ok := validate.Email(email)
	if !ok {
		return nil, ErrInvalidEmail
	}
	if !validate.Password(password) {
		return nil, ErrWeakPassword
	}
	if name == "" {
		name = email
	}
	existing, err := s.Users.ByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Hash:  string(hash),
		Role:  "USER",
	}
	if err := s.Users.Create(u); err != nil {
		return nil, ErrEmailInUse
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	s.publish(TopicSignIn, sid, u.ID)
	return u, nil
}

func (s *AuthService) SignOut(sid string) error {
	err := s.Users.UnbindSession(sid)
	s.publish(TopicSignOut, sid)
	return err
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// RequestReset mails a one-hour reset link. The answer is
// success-shaped whether or not the account exists.
func (s *AuthService) RequestReset(email string) error {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	token := uuid.NewString()
	if err := s.Resets.Create(token, u.ID); err != nil {
		return err
	}
	link := s.BaseURL + "/reset-password?token=" + token
	return s.Mailer.SendReset(u.Email, link)
}

// ResetPassword consumes a live token and stores the new hash.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if !validate.Password(newPassword) {
		return ErrWeakPassword
	}
	userID, err := s.Resets.Consume(token)
	if err != nil {
		return ErrWrongCredential
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(userID, string(hash))
}

func (s *AuthService) publish(topic string, args ...any) {
	if s.Bus != nil {
		s.Bus.Publish(topic, args...)
	}
}
