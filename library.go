package mediainfo

import (
	"errors"
	"fmt"
	"sync"
)

// Handle is an opaque reference to one native engine instance.
// The zero value means no instance.
type Handle uintptr

// Library is the boundary to the native analysis engine. Each method maps to
// one libmediainfo entry point; strings cross the boundary as wide strings so
// non-ASCII paths and tag values survive in both directions.
//
// Implementations are not required to be safe for concurrent use of the same
// Handle.
type Library interface {
	// New creates an engine instance.
	New() (Handle, error)
	// Delete destroys an engine instance.
	Delete(h Handle)
	// Open analyzes a file. It returns 1 on success and 0 when the file
	// could not be opened or parsed.
	Open(h Handle, path string) int
	// Close releases file-scoped state so another file can be opened.
	Close(h Handle)
	// Inform returns the human-readable report for the open file.
	Inform(h Handle) string
	// Get looks a parameter up by name.
	Get(h Handle, kind StreamKind, streamIndex int, name string, info, search InfoKind) string
	// GetI looks a parameter up by ordinal.
	GetI(h Handle, kind StreamKind, streamIndex, paramIndex int, info InfoKind) string
	// Count returns the number of streams of kind when streamIndex is
	// AllStreams, or the number of parameters of that stream otherwise.
	Count(h Handle, kind StreamKind, streamIndex int) int
	// Option sets or queries an engine option.
	Option(h Handle, name, value string) string
}

// AllStreams is the stream index passed to Count to ask for the number of
// streams of a kind instead of the number of parameters of one stream.
const AllStreams = -1

var (
	// ErrUnavailable reports that the native library could not be loaded or
	// could not create an engine instance. Callers are expected to fall back
	// to another analysis method.
	ErrUnavailable = errors.New("mediainfo: library not available")

	// ErrInvalidState is the parent of every handle-state error.
	ErrInvalidState = errors.New("mediainfo: invalid handle state")

	// ErrNoHandle reports use of a MediaInfo whose construction failed.
	ErrNoHandle = fmt.Errorf("%w: no native handle", ErrInvalidState)

	// ErrDisposed reports use of a MediaInfo after Dispose.
	ErrDisposed = fmt.Errorf("%w: handle disposed", ErrInvalidState)

	// ErrStreamIndex reports a negative stream index other than AllStreams.
	ErrStreamIndex = errors.New("mediainfo: invalid stream index")

	// ErrOpenFailed reports that the engine could not open or parse a file.
	ErrOpenFailed = errors.New("mediainfo: could not open file")
)

var (
	nativeOnce sync.Once
	nativeLib  Library
	nativeErr  error
)

// Native returns the process-wide binding to libmediainfo, loading the
// shared library on first use. The result is cached, including failures.
func Native() (Library, error) {
	nativeOnce.Do(func() {
		nativeLib, nativeErr = loadNative()
		if nativeErr != nil {
			nativeErr = fmt.Errorf("%w: %w", ErrUnavailable, nativeErr)
		}
	})
	return nativeLib, nativeErr
}

// IsAvailable reports whether libmediainfo can be loaded.
func IsAvailable() bool {
	_, err := Native()
	return err == nil
}

// StaticOption queries or sets a process-scoped engine option without a
// per-file handle. A short-lived engine instance is created for the call and
// destroyed before returning.
func StaticOption(name, value string) (string, error) {
	lib, err := Native()
	if err != nil {
		return "", err
	}
	return staticOption(lib, name, value)
}

// Version returns the engine's version string, e.g. "MediaInfoLib - v24.06".
func Version() (string, error) {
	return StaticOption("Info_Version", "")
}

func staticOption(lib Library, name, value string) (string, error) {
	h, err := newHandle(lib)
	if err != nil {
		return "", err
	}
	defer lib.Delete(h)
	return lib.Option(h, name, value), nil
}

// newHandle creates an engine instance, turning a zero handle or a panic in
// the binding into ErrUnavailable.
func newHandle(lib Library) (h Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			h, err = 0, fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()
	h, err = lib.New()
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if h == 0 {
		return 0, fmt.Errorf("%w: engine returned no instance", ErrUnavailable)
	}
	return h, nil
}
