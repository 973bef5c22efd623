package velocloud

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func newTestClient() *Client {
	return NewClient(2*time.Second, testLogger{})
}

func TestLogin_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "rider@example.com", body.Email)
		assert.Equal(t, "secret", body.Password)

		json.NewEncoder(w).Encode(loginResponse{Token: "token-123"})
	}))
	defer server.Close()

	session, err := newTestClient().Login(context.Background(), server.URL, "rider@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, server.URL, session.BaseURL)
	assert.Equal(t, "token-123", session.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient().Login(context.Background(), server.URL, "rider@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrAuth)

	// Учетные данные не попадают в текст ошибки
	assert.NotContains(t, err.Error(), "rider@example.com")
	assert.NotContains(t, err.Error(), "wrong-password")
}

func TestLogin_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(loginResponse{Token: ""})
	}))
	defer server.Close()

	_, err := newTestClient().Login(context.Background(), server.URL, "rider@example.com", "secret")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchProfile_Success(t *testing.T) {
	weight := 70.5
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(Profile{WeightKg: &weight})
	}))
	defer server.Close()

	session := &Session{BaseURL: server.URL, Token: "token-123"}
	profile, err := newTestClient().FetchProfile(context.Background(), session)
	require.NoError(t, err)
	require.NotNil(t, profile.WeightKg)
	assert.Equal(t, 70.5, *profile.WeightKg)
}

func TestFetchProfile_NotFoundGivesEmptyProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	session := &Session{BaseURL: server.URL, Token: "token-123"}
	profile, err := newTestClient().FetchProfile(context.Background(), session)
	require.NoError(t, err)
	assert.Nil(t, profile.WeightKg)
	assert.Nil(t, profile.Gender)
	assert.Nil(t, profile.BirthDate)
}

func TestUpdateUser_SendsFields(t *testing.T) {
	first := "Анна"
	var received UserFields
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	session := &Session{BaseURL: server.URL, Token: "token-123"}
	err := newTestClient().UpdateUser(context.Background(), session, UserFields{FirstName: &first})
	require.NoError(t, err)
	require.NotNil(t, received.FirstName)
	assert.Equal(t, "Анна", *received.FirstName)
	assert.Nil(t, received.LastName)
}

func TestUpdateProfile_SendsFields(t *testing.T) {
	var received ProfileFields
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/profile", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gender := "female"
	session := &Session{BaseURL: server.URL, Token: "token-123"}
	err := newTestClient().UpdateProfile(context.Background(), session, ProfileFields{
		FTP:       230,
		Gender:    &gender,
		BirthDate: "1990-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 230, received.FTP)
	assert.Equal(t, "1990-01-01", received.BirthDate)
	require.NotNil(t, received.Gender)
	assert.Equal(t, "female", *received.Gender)
}

func TestUpdateProfile_ExpiredSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	session := &Session{BaseURL: server.URL, Token: "stale-token"}
	err := newTestClient().UpdateProfile(context.Background(), session, ProfileFields{FTP: 150, BirthDate: "1990-01-01"})
	require.ErrorIs(t, err, ErrAuth)
}
