//go:build (darwin || linux) && !cgo

// libmediainfo binding via purego.
//
// The shared library is loaded at runtime, so binaries build with
// CGO_ENABLED=0 and degrade to ErrUnavailable when libmediainfo is missing.

package mediainfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

// libmediainfo function pointers. size_t parameters and results are uintptr,
// C enums are int32 and wide strings are *int32.
var (
	miNew      func() uintptr
	miDelete   func(handle uintptr)
	miOpen     func(handle uintptr, fileName *int32) uintptr
	miClose    func(handle uintptr)
	miInform   func(handle uintptr, reserved uintptr) uintptr
	miGet      func(handle uintptr, streamKind int32, streamNumber uintptr, parameter *int32, infoKind, searchKind int32) uintptr
	miGetI     func(handle uintptr, streamKind int32, streamNumber, parameter uintptr, infoKind int32) uintptr
	miCountGet func(handle uintptr, streamKind int32, streamNumber uintptr) uintptr
	miOption   func(handle uintptr, option, value *int32) uintptr
)

type puregoLibrary struct {
	path string
}

func loadNative() (Library, error) {
	paths := getMediaInfoLibPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			if err := loadMediaInfoSymbols(handle); err != nil {
				purego.Dlclose(handle)
				lastErr = err
				continue
			}
			return &puregoLibrary{path: path}, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, fmt.Errorf("failed to load libmediainfo: %w", lastErr)
	}
	return nil, errors.New("libmediainfo not found in any standard location")
}

func getMediaInfoLibPaths() []string {
	var paths []string

	libNames := []string{"libmediainfo.so.0", "libmediainfo.so"}
	if runtime.GOOS == "darwin" {
		libNames = []string{"libmediainfo.0.dylib", "libmediainfo.dylib"}
	}

	// Environment variable overrides; either a file or a directory.
	if envPath := os.Getenv("MEDIAINFO_LIB_PATH"); envPath != "" {
		if info, err := os.Stat(envPath); err == nil && info.IsDir() {
			for _, name := range libNames {
				paths = append(paths, filepath.Join(envPath, name))
			}
		} else {
			paths = append(paths, envPath)
		}
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		for _, name := range libNames {
			paths = append(paths,
				filepath.Join(exeDir, name),
				filepath.Join(exeDir, "..", "lib", name),
			)
		}
	}

	if root := findModuleRoot(); root != "" {
		for _, name := range libNames {
			paths = append(paths, filepath.Join(root, "build", name))
		}
	}

	// Bare names go through the dynamic loader's own search path.
	paths = append(paths, libNames...)

	switch runtime.GOOS {
	case "darwin":
		for _, name := range libNames {
			paths = append(paths,
				"/opt/homebrew/lib/"+name,
				"/usr/local/lib/"+name,
			)
		}
	case "linux":
		for _, name := range libNames {
			paths = append(paths,
				"/usr/local/lib/"+name,
				"/usr/lib/"+name,
				"/usr/lib/x86_64-linux-gnu/"+name,
				"/usr/lib/aarch64-linux-gnu/"+name,
				"/usr/lib64/"+name,
			)
		}
	}

	return paths
}

func loadMediaInfoSymbols(handle uintptr) (err error) {
	// RegisterLibFunc panics on a missing symbol.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("libmediainfo symbol lookup: %v", r)
		}
	}()

	purego.RegisterLibFunc(&miNew, handle, "MediaInfo_New")
	purego.RegisterLibFunc(&miDelete, handle, "MediaInfo_Delete")
	purego.RegisterLibFunc(&miOpen, handle, "MediaInfo_Open")
	purego.RegisterLibFunc(&miClose, handle, "MediaInfo_Close")
	purego.RegisterLibFunc(&miInform, handle, "MediaInfo_Inform")
	purego.RegisterLibFunc(&miGet, handle, "MediaInfo_Get")
	purego.RegisterLibFunc(&miGetI, handle, "MediaInfo_GetI")
	purego.RegisterLibFunc(&miCountGet, handle, "MediaInfo_Count_Get")
	purego.RegisterLibFunc(&miOption, handle, "MediaInfo_Option")

	return nil
}

func (l *puregoLibrary) New() (Handle, error) {
	h := miNew()
	if h == 0 {
		return 0, fmt.Errorf("MediaInfo_New failed (%s)", l.path)
	}
	return Handle(h), nil
}

func (l *puregoLibrary) Delete(h Handle) {
	miDelete(uintptr(h))
}

func (l *puregoLibrary) Open(h Handle, path string) int {
	name, err := toWide(path)
	if err != nil {
		return 0
	}
	ret := miOpen(uintptr(h), &name[0])
	runtime.KeepAlive(name)
	if ret == 0 {
		return 0
	}
	return 1
}

func (l *puregoLibrary) Close(h Handle) {
	miClose(uintptr(h))
}

func (l *puregoLibrary) Inform(h Handle) string {
	return goStringFromWidePtr(miInform(uintptr(h), 0))
}

func (l *puregoLibrary) Get(h Handle, kind StreamKind, streamIndex int, name string, info, search InfoKind) string {
	param, err := toWide(name)
	if err != nil {
		return ""
	}
	ret := miGet(uintptr(h), int32(kind), uintptr(streamIndex), &param[0], int32(info), int32(search))
	s := goStringFromWidePtr(ret)
	runtime.KeepAlive(param)
	return s
}

func (l *puregoLibrary) GetI(h Handle, kind StreamKind, streamIndex, paramIndex int, info InfoKind) string {
	return goStringFromWidePtr(miGetI(uintptr(h), int32(kind), uintptr(streamIndex), uintptr(paramIndex), int32(info)))
}

func (l *puregoLibrary) Count(h Handle, kind StreamKind, streamIndex int) int {
	// AllStreams wraps to (size_t)-1, the engine's "not set" marker.
	return int(miCountGet(uintptr(h), int32(kind), uintptr(streamIndex)))
}

func (l *puregoLibrary) Option(h Handle, name, value string) string {
	opt, err := toWide(name)
	if err != nil {
		return ""
	}
	val, err := toWide(value)
	if err != nil {
		return ""
	}
	s := goStringFromWidePtr(miOption(uintptr(h), &opt[0], &val[0]))
	runtime.KeepAlive(opt)
	runtime.KeepAlive(val)
	return s
}
