package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSSHServer(t *testing.T) *SSHServer {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.Options.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	require.NoError(t, err)
	require.NotNil(t, srv.store)
	return srv
}

func TestSSHServerSavesScoresWhileDraining(t *testing.T) {
	srv := newTestSSHServer(t)
	store := srv.store

	var saveErr error
	err := srv.shutdown(context.Background(), func(ctx context.Context) error {
		// A session finishing its round during the drain
		_, saveErr = store.SaveScore("catcher", "alice", 10, 600)
		return srv.server.Shutdown(ctx)
	})
	require.NoError(t, err)
	assert.NoError(t, saveErr)
	assert.Nil(t, srv.store, "store closed after the drain")

	_, err = store.SaveScore("catcher", "bob", 10, 600)
	assert.Error(t, err)
}

func TestSSHServerShutdownWithoutSessions(t *testing.T) {
	srv := newTestSSHServer(t)

	require.NoError(t, srv.Shutdown())
	assert.Nil(t, srv.store)
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}
