package mediainfo

import (
	"context"
	"fmt"
)

// Analyze opens path on a fresh MediaInfo, runs fn and releases the file and
// the engine instance on every exit path. It returns an error wrapping
// ErrUnavailable when the engine cannot be created and ErrOpenFailed when the
// file cannot be opened.
//
// The engine has no cancellation of its own, so the work runs on a separate
// goroutine and Analyze stops waiting when ctx is done. An abandoned call
// still finishes in the background and then disposes its instance; fn must
// not retain m.
func Analyze(ctx context.Context, cfg Config, path string, fn func(m *MediaInfo) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- analyze(cfg, path, fn)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("analyze %s: %w", path, ctx.Err())
	}
}

func analyze(cfg Config, path string, fn func(*MediaInfo) error) (err error) {
	m := New(cfg)
	if !m.IsValid() {
		if m.Err() != nil {
			return m.Err()
		}
		return ErrUnavailable
	}
	defer func() {
		if cerr := m.Close(); err == nil {
			err = cerr
		}
	}()

	ok, err := m.OpenFile(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOpenFailed, path)
	}
	defer m.CloseFile()

	return fn(m)
}
