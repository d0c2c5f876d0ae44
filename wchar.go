package mediainfo

import (
	"unsafe"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode/utf32"
)

// wcharSize is sizeof(wchar_t) on darwin and linux, where wchar_t holds one
// UTF-32 code unit in host byte order.
const wcharSize = 4

// maxWideLen caps how far fromWide scans for the terminator. Inform reports
// on large playlists run to a few megabytes.
const maxWideLen = 64 << 20

var wideEncoding encoding.Encoding = utf32.UTF32(hostEndianness(), utf32.IgnoreBOM)

func hostEndianness() utf32.Endianness {
	if cpu.IsBigEndian {
		return utf32.BigEndian
	}
	return utf32.LittleEndian
}

// toWide converts s to a NUL-terminated wchar_t buffer. Invalid UTF-8 is
// replaced with U+FFFD.
func toWide(s string) ([]int32, error) {
	b, err := wideEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	buf := make([]int32, len(b)/wcharSize+1)
	if len(b) > 0 {
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), len(b)), b)
	}
	return buf, nil
}

// fromWide copies a NUL-terminated wchar_t string owned by the engine into a
// Go string. The engine reuses its buffers on the next call, so the result
// must not alias p.
func fromWide(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for n < maxWideLen && *(*int32)(unsafe.Add(p, n*wcharSize)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return wideBytesToString(unsafe.Slice((*byte)(p), n*wcharSize))
}

func wideBytesToString(raw []byte) string {
	out, err := wideEncoding.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}
