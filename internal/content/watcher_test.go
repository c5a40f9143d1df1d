package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeValid(t *testing.T, path, brand string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("brand: "+brand+"\nhero:\n  title: Hi\n"), 0o644))
}

func TestWatcherDeliversReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	writeValid(t, path, "Before")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	writeValid(t, path, "After")

	select {
	case p := <-w.Pages():
		require.Equal(t, "After", p.Brand)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	writeValid(t, path, "Ok")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Half-saved file: parse fails but the watcher keeps running.
	require.NoError(t, os.WriteFile(path, []byte("brand: [broken"), 0o644))

	select {
	case err := <-w.Errs():
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no parse error delivered")
	}

	// And recovers on the next good save.
	writeValid(t, path, "Recovered")
	select {
	case p := <-w.Pages():
		require.Equal(t, "Recovered", p.Brand)
	case <-time.After(5 * time.Second):
		t.Fatal("no recovery reload delivered")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	writeValid(t, path, "Ok")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))

	select {
	case p := <-w.Pages():
		t.Fatalf("unexpected reload from sibling file: %+v", p)
	case <-time.After(700 * time.Millisecond):
	}
}

func TestWatcherStopIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "page.yaml")
	writeValid(t, path, "Ok")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop() // second call must not panic or block
}
