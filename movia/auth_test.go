package movia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEstablishesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "pw", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"token":   "t1",
			"user":    map[string]string{"id": "u1", "name": "A", "surname": "B", "email": "a@b.com"},
		})
	}))
	defer server.Close()

	tokens := &fakeTokens{}
	client := newTestClient(t, server.URL, tokens)

	user, err := client.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, User{ID: "u1", Name: "A", Surname: "B", Email: "a@b.com"}, user)

	token, ok := tokens.CurrentToken()
	assert.True(t, ok, "success result implies session established")
	assert.Equal(t, "t1", token)
}

func TestLoginFailureDoesNotPersistToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer server.Close()

	tokens := &fakeTokens{}
	client := newTestClient(t, server.URL, tokens)

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Invalid credentials", serr.Message)

	_, ok := tokens.CurrentToken()
	assert.False(t, ok, "no partial token on failure")
}

func TestRegisterThenAuthenticatedRequest(t *testing.T) {
	var profileAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/register":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "A", body["name"])
			assert.Equal(t, "B", body["surname"])
			json.NewEncoder(w).Encode(map[string]any{
				"message": "ok",
				"token":   "t1",
				"user":    map[string]string{"id": "u1", "name": "A", "surname": "B", "email": "a@b.com"},
			})
		case "/auth/me":
			profileAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]any{
				"_id": "u1", "name": "A", "surname": "B", "email": "a@b.com",
				"likedMovies": []int{}, "createdAt": "2025-05-20", "updatedAt": "2025-05-20", "__v": 0,
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	tokens := &fakeTokens{}
	client := newTestClient(t, server.URL, tokens)

	user, err := client.Register(context.Background(), "A", "B", "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", profileAuth)
}
