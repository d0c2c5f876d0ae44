package mediainfo

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Config configures a MediaInfo. The zero value uses the native library and
// slog.Default().
type Config struct {
	// Library overrides the engine binding. Nil selects Native().
	Library Library

	// Logger receives load and parse diagnostics.
	Logger *slog.Logger

	// LogLoad logs library loading and version details at construction.
	// Construction failures are logged regardless.
	LogLoad bool
}

// MediaInfo owns exactly one native engine instance.
//
// A MediaInfo must not be used from several goroutines at once: the engine
// keeps the open file and query state on the instance, so interleaved calls
// cross-talk. Create one MediaInfo per concurrent task instead. Calls block
// for as long as the engine takes; see Analyze for a context-bounded wait.
type MediaInfo struct {
	_ noCopy

	lib    Library
	logger *slog.Logger

	handle   Handle
	err      error // construction failure, if any
	disposed bool

	path     string // currently open file
	fileOpen bool
}

// New creates an engine instance. It never fails: when the native library is
// missing or cannot create an instance, the returned MediaInfo is invalid,
// IsValid reports false and Err holds the cause. Callers are expected to
// switch to another analysis method in that case.
//
// On platforms other than Windows the engine is switched to UTF-8 so that
// non-ASCII paths and tags round-trip.
func New(cfg Config) *MediaInfo {
	m := &MediaInfo{
		lib:    cfg.Library,
		logger: cfg.Logger,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}

	if m.lib == nil {
		if cfg.LogLoad {
			m.logger.Info("loading MediaInfo library")
		}
		lib, err := Native()
		if err != nil {
			m.fail(err)
			return m
		}
		m.lib = lib
	}

	h, err := newHandle(m.lib)
	if err != nil {
		m.fail(err)
		return m
	}
	m.handle = h

	if cfg.LogLoad {
		if version, err := staticOption(m.lib, "Info_Version", ""); err == nil {
			m.logger.Info("loaded MediaInfo library", "version", version)
		}
	}
	if runtime.GOOS != "windows" {
		if cfg.LogLoad {
			m.logger.Debug("setting MediaInfo library character set to UTF-8")
		}
		m.lib.Option(m.handle, "setlocale_LC_CTYPE", "UTF-8")
	}

	return m
}

func (m *MediaInfo) fail(err error) {
	m.err = err
	m.logger.Error("error loading MediaInfo library", "error", err)
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		m.logger.Info("make sure libmediainfo and libzen are installed")
	}
}

// IsValid reports whether a native engine instance is held.
func (m *MediaInfo) IsValid() bool {
	return m.handle != 0
}

// Err returns the reason construction failed, or nil.
func (m *MediaInfo) Err() error {
	return m.err
}

// IsOpen reports whether a file is currently open on the instance.
func (m *MediaInfo) IsOpen() bool {
	return m.handle != 0 && m.fileOpen
}

// Dispose destroys the engine instance. Disposing twice, or disposing a
// MediaInfo whose construction failed, is a caller bug and returns an error
// matching ErrInvalidState.
func (m *MediaInfo) Dispose() error {
	if err := m.check(); err != nil {
		return err
	}
	m.lib.Delete(m.handle)
	m.handle = 0
	m.disposed = true
	m.fileOpen = false
	m.path = ""
	return nil
}

// Close implements io.Closer for use with defer. It disposes the instance if
// one is held and is a no-op otherwise.
func (m *MediaInfo) Close() error {
	if m.handle == 0 {
		return nil
	}
	return m.Dispose()
}

// check returns the handle-state error for m, if any.
func (m *MediaInfo) check() error {
	switch {
	case m.handle != 0:
		return nil
	case m.disposed:
		return ErrDisposed
	case m.err != nil:
		return fmt.Errorf("%w: %w", ErrNoHandle, m.err)
	default:
		return ErrNoHandle
	}
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
