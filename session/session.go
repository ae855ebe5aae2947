// Package session owns the signed-in user and the bearer token, persisted
// under the same keys the mobile app uses.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/darshan2121/PlantApp/client"
	"github.com/darshan2121/PlantApp/storage"
	"github.com/darshan2121/PlantApp/types"
	"github.com/rs/zerolog"
)

const (
	KeyToken = "userToken"
	KeyUser  = "userInfo"

	localUserID = "1"
)

var (
	ErrMissingFields = errors.New("Please fill in all fields")
	ErrInvalidPhone  = errors.New("Please enter a valid phone number")
)

type Authenticator interface {
	Login(ctx context.Context, p types.LoginPayload) (types.AuthResult, error)
	Register(ctx context.Context, p types.SignupPayload) (types.AuthResult, error)
}

type State struct {
	User    *types.User
	Token   string
	Loading bool
	Err     string
}

func (s State) SignedIn() bool {
	return s.User != nil
}

// Authenticated reports a backend session. An offline sign-in has a user
// but no token.
func (s State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

type Manager struct {
	auth  Authenticator
	store storage.KeyValue
	log   zerolog.Logger

	mu    sync.RWMutex
	state State
}

func NewManager(auth Authenticator, store storage.KeyValue, log zerolog.Logger) *Manager {
	return &Manager{auth: auth, store: store, log: log}
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Token satisfies client.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.User == nil {
		return ""
	}
	return m.state.User.ID
}

func (m *Manager) begin() {
	m.mu.Lock()
	m.state.Loading = true
	m.state.Err = ""
	m.mu.Unlock()
}

func (m *Manager) Login(ctx context.Context, email, password string) error {
	m.begin()
	res, err := m.auth.Login(ctx, types.LoginPayload{Email: email, Password: password})
	return m.finish(ctx, res, err, "Login failed")
}

func (m *Manager) Signup(ctx context.Context, p types.SignupPayload) error {
	m.begin()
	res, err := m.auth.Register(ctx, p)
	return m.finish(ctx, res, err, "Signup failed")
}

func (m *Manager) finish(ctx context.Context, res types.AuthResult, err error, fallback string) error {
	if err == nil {
		err = m.persist(ctx, res)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = false
	if err != nil {
		m.state.Err = describe(err, fallback)
		m.log.Warn().Err(err).Msg(strings.ToLower(fallback))
		return err
	}
	u := res.User
	m.state.User = &u
	m.state.Token = res.Token
	m.log.Info().Str("user_id", u.ID).Msg("signed in")
	return nil
}

func (m *Manager) persist(ctx context.Context, res types.AuthResult) error {
	b, err := json.Marshal(res.User)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, KeyToken, res.Token); err != nil {
		return err
	}
	return m.store.Set(ctx, KeyUser, string(b))
}

// describe prefers the backend message, then the transport error text.
func describe(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// Restore loads the persisted session. It is a no-op when either key is
// missing or the stored user is unreadable.
func (m *Manager) Restore(ctx context.Context) bool {
	token, err := m.store.Get(ctx, KeyToken)
	if err != nil || token == "" {
		return false
	}
	raw, err := m.store.Get(ctx, KeyUser)
	if err != nil || raw == "" {
		return false
	}
	var u types.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		m.log.Debug().Err(err).Msg("stored user unreadable")
		return false
	}

	m.mu.Lock()
	m.state.User = &u
	m.state.Token = token
	m.mu.Unlock()
	return true
}

// Logout clears both keys and the in-memory session.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.store.Remove(ctx, KeyToken, KeyUser)
	m.mu.Lock()
	m.state = State{}
	m.mu.Unlock()
	return err
}

// LocalSignIn is the offline sign-in: a name and a phone of at least ten
// digits, no backend and no token. The profile gets the demo address.
func (m *Manager) LocalSignIn(name, phone string, lang types.Language) (types.User, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return types.User{}, ErrMissingFields
	}
	if len(phone) < 10 {
		return types.User{}, ErrInvalidPhone
	}
	u := types.User{
		ID:       localUserID,
		Name:     name,
		Mobile:   phone,
		Address:  types.Address{Area: "Ahmedabad", Ward: "Ward 1", PinCode: "380001"},
		Language: lang,
	}
	m.mu.Lock()
	m.state = State{User: &u}
	m.mu.Unlock()
	return u, nil
}
