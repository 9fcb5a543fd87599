package session

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests
type memStore struct {
	token   string
	present bool
	readErr error
}

func (s *memStore) Read() (string, error) {
	if s.readErr != nil {
		return "", s.readErr
	}
	if !s.present {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *memStore) Save(token string) error {
	s.token = token
	s.present = true
	return nil
}

func (s *memStore) Delete() error {
	s.token = ""
	s.present = false
	return nil
}

func TestManagerColdStartUnauthenticated(t *testing.T) {
	m, err := NewManager(&memStore{}, zerolog.Nop())
	require.NoError(t, err)

	assert.False(t, m.IsLoggedIn())
	_, ok := m.CurrentToken()
	assert.False(t, ok)
}

func TestManagerColdStartWithStoredToken(t *testing.T) {
	m, err := NewManager(&memStore{token: "t1", present: true}, zerolog.Nop())
	require.NoError(t, err)

	assert.True(t, m.IsLoggedIn())
	token, ok := m.CurrentToken()
	assert.True(t, ok)
	assert.Equal(t, "t1", token)
}

func TestManagerColdStartReadFailure(t *testing.T) {
	_, err := NewManager(&memStore{readErr: errors.New("disk gone")}, zerolog.Nop())
	require.Error(t, err)
}

func TestManagerTransitions(t *testing.T) {
	store := &memStore{}
	m, err := NewManager(store, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, m.SaveToken("t1"))
	assert.True(t, m.IsLoggedIn())
	assert.True(t, store.present, "token persisted through the store")

	require.NoError(t, m.ClearToken())
	assert.False(t, m.IsLoggedIn())
	assert.False(t, store.present)
}

func TestManagerSubscribe(t *testing.T) {
	m, err := NewManager(&memStore{}, zerolog.Nop())
	require.NoError(t, err)

	var events []bool
	cancel := m.Subscribe(func(loggedIn bool) {
		events = append(events, loggedIn)
	})

	require.NoError(t, m.SaveToken("t1"))
	require.NoError(t, m.ClearToken())
	assert.Equal(t, []bool{true, false}, events)

	cancel()
	require.NoError(t, m.SaveToken("t2"))
	assert.Len(t, events, 2, "cancelled subscriber receives nothing")
}
