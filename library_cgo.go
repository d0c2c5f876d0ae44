//go:build (darwin || linux) && cgo

// libmediainfo binding via CGO.
//
// This variant links against libmediainfo at build time, avoiding the
// dlopen search of the purego variant.

package mediainfo

/*
#cgo pkg-config: libmediainfo
#include <stdlib.h>
#include <wchar.h>

// C entry points of MediaInfoDLL. Stream and info kinds are C enums.
void* MediaInfo_New(void);
void MediaInfo_Delete(void* handle);
size_t MediaInfo_Open(void* handle, const wchar_t* file);
void MediaInfo_Close(void* handle);
const wchar_t* MediaInfo_Inform(void* handle, size_t reserved);
const wchar_t* MediaInfo_Get(void* handle, int streamKind, size_t streamNumber, const wchar_t* parameter, int infoKind, int searchKind);
const wchar_t* MediaInfo_GetI(void* handle, int streamKind, size_t streamNumber, size_t parameter, int infoKind);
size_t MediaInfo_Count_Get(void* handle, int streamKind, size_t streamNumber);
const wchar_t* MediaInfo_Option(void* handle, const wchar_t* option, const wchar_t* value);
*/
import "C"

import (
	"errors"
	"unsafe"
)

type cgoLibrary struct{}

// loadNative always succeeds with CGO since the library is linked at
// compile time.
func loadNative() (Library, error) {
	return cgoLibrary{}, nil
}

func handlePtr(h Handle) unsafe.Pointer {
	return unsafe.Pointer(uintptr(h))
}

func wideArg(buf []int32) *C.wchar_t {
	return (*C.wchar_t)(unsafe.Pointer(&buf[0]))
}

func goStringFromWide(p *C.wchar_t) string {
	return fromWide(unsafe.Pointer(p))
}

func (cgoLibrary) New() (Handle, error) {
	p := C.MediaInfo_New()
	if p == nil {
		return 0, errors.New("MediaInfo_New failed")
	}
	return Handle(uintptr(p)), nil
}

func (cgoLibrary) Delete(h Handle) {
	C.MediaInfo_Delete(handlePtr(h))
}

func (cgoLibrary) Open(h Handle, path string) int {
	name, err := toWide(path)
	if err != nil {
		return 0
	}
	if C.MediaInfo_Open(handlePtr(h), wideArg(name)) == 0 {
		return 0
	}
	return 1
}

func (cgoLibrary) Close(h Handle) {
	C.MediaInfo_Close(handlePtr(h))
}

func (cgoLibrary) Inform(h Handle) string {
	return goStringFromWide(C.MediaInfo_Inform(handlePtr(h), 0))
}

func (cgoLibrary) Get(h Handle, kind StreamKind, streamIndex int, name string, info, search InfoKind) string {
	param, err := toWide(name)
	if err != nil {
		return ""
	}
	return goStringFromWide(C.MediaInfo_Get(
		handlePtr(h),
		C.int(kind),
		C.size_t(streamIndex),
		wideArg(param),
		C.int(info),
		C.int(search),
	))
}

func (cgoLibrary) GetI(h Handle, kind StreamKind, streamIndex, paramIndex int, info InfoKind) string {
	return goStringFromWide(C.MediaInfo_GetI(
		handlePtr(h),
		C.int(kind),
		C.size_t(streamIndex),
		C.size_t(paramIndex),
		C.int(info),
	))
}

func (cgoLibrary) Count(h Handle, kind StreamKind, streamIndex int) int {
	return int(C.MediaInfo_Count_Get(handlePtr(h), C.int(kind), C.size_t(streamIndex)))
}

func (cgoLibrary) Option(h Handle, name, value string) string {
	opt, err := toWide(name)
	if err != nil {
		return ""
	}
	val, err := toWide(value)
	if err != nil {
		return ""
	}
	return goStringFromWide(C.MediaInfo_Option(handlePtr(h), wideArg(opt), wideArg(val)))
}
