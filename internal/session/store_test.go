package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops/shiftctl/internal/api"
	"github.com/careops/shiftctl/internal/rbac"
)

// recordingSink captures every token pushed into it.
type recordingSink struct {
	tokens []string
}

func (r *recordingSink) SetToken(token string) {
	r.tokens = append(r.tokens, token)
}

func testUser() *api.User {
	return &api.User{
		ID:    7,
		Name:  "Dana Osei",
		Email: "dana@hospital.test",
		Role:  rbac.RoleManager,
	}
}

func TestIsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{"empty session", Session{}, false},
		{"token only", Session{Token: "tok"}, true},
		{"token and user", Session{Token: "tok", User: testUser()}, true},
		{"user without token", Session{User: testUser()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sess.IsAuthenticated())
		})
	}
}

func TestRestoreEmptyDir(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	sess := store.Restore()

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User)
	assert.Equal(t, sess, store.Current())
}

func TestSetRestoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	require.NoError(t, store.Set("tok-123", testUser()))

	// A fresh store over the same directory sees the same session.
	restored := NewStore(dir).Restore()
	assert.Equal(t, "tok-123", restored.Token)
	require.NotNil(t, restored.User)
	assert.Equal(t, "dana@hospital.test", restored.User.Email)
	assert.Equal(t, rbac.RoleManager, restored.User.Role)
}

func TestSetWritesPrivateFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "creds")
	store := NewStore(dir)

	require.NoError(t, store.Set("tok", testUser()))

	for _, name := range []string{tokenFile, userFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), name)
	}
}

func TestSetNilUserKeepsProfile(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Set("tok-1", testUser()))
	require.NoError(t, store.Set("tok-2", nil))

	sess := store.Current()
	assert.Equal(t, "tok-2", sess.Token)
	require.NotNil(t, sess.User)
	assert.Equal(t, "Dana Osei", sess.User.Name)
}

func TestClearIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Set("tok", testUser()))

	store.Clear()
	store.Clear() // clearing an already empty session must not fail

	sess := store.Current()
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User)

	_, err := os.Stat(filepath.Join(dir, tokenFile))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, userFile))
	assert.True(t, os.IsNotExist(err))
}

func TestAttachPushesCurrentToken(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Set("existing", nil))

	sink := &recordingSink{}
	store.Attach(sink)

	// The sink learns the current token at attach time, before any
	// further change.
	require.Equal(t, []string{"existing"}, sink.tokens)
}

func TestSinkSeesEveryChange(t *testing.T) {
	store := NewStore(t.TempDir())
	sink := &recordingSink{}
	store.Attach(sink)

	require.NoError(t, store.Set("tok-1", testUser()))
	require.NoError(t, store.Set("tok-2", nil))
	store.Clear()

	assert.Equal(t, []string{"", "tok-1", "tok-2", ""}, sink.tokens)
}

func TestSubscribeObservesSessions(t *testing.T) {
	store := NewStore(t.TempDir())

	var seen []Session
	store.Subscribe(func(s Session) { seen = append(seen, s) })

	require.NoError(t, store.Set("tok", testUser()))
	store.Clear()

	require.Len(t, seen, 2)
	assert.Equal(t, "tok", seen[0].Token)
	assert.False(t, seen[1].IsAuthenticated())
}

func TestRestoreIgnoresCorruptProfile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte("tok"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, userFile), []byte("{not json"), 0o600))

	sess := NewStore(dir).Restore()

	// The token survives; the unreadable profile degrades to nil.
	assert.Equal(t, "tok", sess.Token)
	assert.Nil(t, sess.User)
}

func TestRestoreDropsProfileWithoutToken(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"id":7,"name":"Dana Osei","email":"dana@hospital.test","role":"manager"}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, userFile), data, 0o600))

	sess := NewStore(dir).Restore()

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.User)
}

func TestRestorePropagatesToSinks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, tokenFile), []byte("persisted"), 0o600))

	store := NewStore(dir)
	sink := &recordingSink{}
	store.Attach(sink)
	store.Restore()

	assert.Equal(t, "persisted", sink.tokens[len(sink.tokens)-1])
}
