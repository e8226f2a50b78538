package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

type watchEvent struct {
	cfg     *settings.Settings
	summary ChangeSummary
}

// startWatcher runs a watcher with a short debounce against path and
// returns the change event channel plus a cancel func.
func startWatcher(t *testing.T, path string) (<-chan watchEvent, *Watcher) {
	t.Helper()

	events := make(chan watchEvent, 4)
	w, err := NewWatcher(
		NewLoader(path, WithoutEnv()),
		logger.Nop(),
		func(cfg *settings.Settings, summary ChangeSummary) {
			events <- watchEvent{cfg, summary}
		},
	)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = w.Run(ctx) }()
	// give the watcher a moment to register before the first write
	time.Sleep(50 * time.Millisecond)

	return events, w
}

// TestNewWatcher_InitialLoad verifies the watcher holds the loaded
// document before Run starts.
func TestNewWatcher_InitialLoad(t *testing.T) {
	path := writeTempTOML(t, `
[app]
project_name = "watched"
`)

	w, err := NewWatcher(NewLoader(path, WithoutEnv()), logger.Nop(), nil)
	require.NoError(t, err)
	assert.Equal(t, "watched", w.Settings().App.ProjectName)
}

// TestNewWatcher_InvalidInitialDocument verifies construction fails when
// the first load fails.
func TestNewWatcher_InvalidInitialDocument(t *testing.T) {
	path := writeTempTOML(t, `
[embedding]
base_dimension = -1
`)

	_, err := NewWatcher(NewLoader(path, WithoutEnv()), logger.Nop(), nil)
	require.Error(t, err)
}

// TestWatcher_ReloadsOnChange verifies a file edit produces a callback
// with the new document and change summary.
func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := writeTempTOML(t, `
[app]
project_name = "before"
`)
	events, w := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte(`
[app]
project_name = "after"
`), 0o644))

	select {
	case ev := <-events:
		assert.Equal(t, "after", ev.cfg.App.ProjectName)
		assert.Equal(t, []string{"app.project_name"}, ev.summary.ChangedKeys)
		assert.True(t, ev.summary.RestartRequired)
		assert.Equal(t, "after", w.Settings().App.ProjectName)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}
}

// TestWatcher_KeepsLastGoodOnInvalidEdit verifies a broken edit does not
// replace the current document.
func TestWatcher_KeepsLastGoodOnInvalidEdit(t *testing.T) {
	path := writeTempTOML(t, `
[app]
project_name = "good"
`)
	events, w := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte(`[app`+"\n"), 0o644))

	// no callback may arrive for a failed reload
	select {
	case ev := <-events:
		t.Fatalf("unexpected callback for invalid document: %+v", ev.summary)
	case <-time.After(500 * time.Millisecond):
	}
	assert.Equal(t, "good", w.Settings().App.ProjectName)
}

// TestWatcher_NoCallbackWithoutChanges verifies rewriting identical
// content stays silent.
func TestWatcher_NoCallbackWithoutChanges(t *testing.T) {
	content := `
[app]
project_name = "same"
`
	path := writeTempTOML(t, content)
	events, _ := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected callback without changes: %+v", ev.summary)
	case <-time.After(500 * time.Millisecond):
	}
}
