package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	st := tempStore(t)

	saved := &Session{
		Token:     "tok-123",
		Email:     "hr@example.com",
		Name:      "HR User",
		Role:      "hr",
		ExpiresAt: time.Now().Add(24 * time.Hour).UTC(),
	}
	require.NoError(t, st.Save(saved))

	loaded, err := st.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.Token, loaded.Token)
	assert.Equal(t, saved.Email, loaded.Email)
	assert.WithinDuration(t, saved.ExpiresAt, loaded.ExpiresAt, time.Second)
}

func TestLoadMissingFile(t *testing.T) {
	st := tempStore(t)
	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "no session file means no session, not an error")
}

func TestLoadExpiredSessionDropped(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(&Session{
		Token:     "tok-old",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestSaveRejectsEmptySession(t *testing.T) {
	st := tempStore(t)
	assert.Error(t, st.Save(nil))
	assert.Error(t, st.Save(&Session{}))
}

func TestSaveFilePermissions(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(&Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))

	info, err := os.Stat(filepath.Join(filepath.Dir(st.path), "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "session file carries the token")
}

func TestClear(t *testing.T) {
	st := tempStore(t)
	require.NoError(t, st.Save(&Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, st.Clear())

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	assert.NoError(t, st.Clear(), "clearing an absent session is a no-op")
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		session Session
		expired bool
	}{
		{"future expiry", Session{ExpiresAt: now.Add(time.Hour)}, false},
		{"past expiry", Session{ExpiresAt: now.Add(-time.Minute)}, true},
		{"zero expiry never expires locally", Session{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.session.Expired(now))
		})
	}
}
