package mediainfo

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// =============================================================================
// Fake engine
// =============================================================================

// fakeParam is one row of a fake stream's parameter table.
type fakeParam struct {
	name    string
	value   string
	measure string
	options string
}

type fakeStream []fakeParam

type fakeFile map[StreamKind][]fakeStream

// fakeLibrary is an in-memory Library. Files are registered by path; Open on
// an unknown path fails the way libmediainfo does for a missing file.
type fakeLibrary struct {
	mu sync.Mutex

	files   map[string]fakeFile
	version string

	newErr   error
	newZero  bool
	newPanic bool

	nextHandle Handle
	open       map[Handle]fakeFile
	live       map[Handle]bool

	deleted []Handle
	options []fakeOption
	calls   int

	// block, when set, is received from inside Open.
	block chan struct{}
}

type fakeOption struct {
	handle      Handle
	name, value string
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		files:   make(map[string]fakeFile),
		version: "MediaInfoLib - v24.06",
		open:    make(map[Handle]fakeFile),
		live:    make(map[Handle]bool),
	}
}

func (l *fakeLibrary) addFile(path string, f fakeFile) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.files[path] = f
}

func (l *fakeLibrary) New() (Handle, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch {
	case l.newPanic:
		panic("library vanished")
	case l.newErr != nil:
		return 0, l.newErr
	case l.newZero:
		return 0, nil
	}
	l.nextHandle++
	l.live[l.nextHandle] = true
	return l.nextHandle, nil
}

func (l *fakeLibrary) Delete(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.live[h] {
		panic("delete of dead handle")
	}
	delete(l.live, h)
	delete(l.open, h)
	l.deleted = append(l.deleted, h)
}

func (l *fakeLibrary) Open(h Handle, path string) int {
	l.touch(h)
	if l.block != nil {
		<-l.block
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.files[path]
	if !ok {
		return 0
	}
	l.open[h] = f
	return 1
}

func (l *fakeLibrary) Close(h Handle) {
	l.touch(h)
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.open, h)
}

func (l *fakeLibrary) Inform(h Handle) string {
	l.touch(h)
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.open[h]
	if !ok {
		return ""
	}
	out := ""
	for _, kind := range StreamKinds() {
		for _, s := range f[kind] {
			out += kind.String() + "\n"
			for _, p := range s {
				if p.value != "" {
					out += p.name + " : " + p.value + "\n"
				}
			}
		}
	}
	return out
}

func (l *fakeLibrary) stream(h Handle, kind StreamKind, streamIndex int) (fakeStream, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, ok := l.open[h]
	if !ok {
		return nil, false
	}
	streams := f[kind]
	if streamIndex < 0 || streamIndex >= len(streams) {
		return nil, false
	}
	return streams[streamIndex], true
}

func (p fakeParam) view(info InfoKind) string {
	switch info {
	case InfoName:
		return p.name
	case InfoText:
		return p.value
	case InfoMeasure:
		return p.measure
	case InfoOptions:
		return p.options
	default:
		return ""
	}
}

func (l *fakeLibrary) Get(h Handle, kind StreamKind, streamIndex int, name string, info, search InfoKind) string {
	l.touch(h)
	s, ok := l.stream(h, kind, streamIndex)
	if !ok || search != InfoName {
		return ""
	}
	for _, p := range s {
		if p.name == name {
			return p.view(info)
		}
	}
	return ""
}

func (l *fakeLibrary) GetI(h Handle, kind StreamKind, streamIndex, paramIndex int, info InfoKind) string {
	l.touch(h)
	s, ok := l.stream(h, kind, streamIndex)
	if !ok || paramIndex < 0 || paramIndex >= len(s) {
		return ""
	}
	return s[paramIndex].view(info)
}

func (l *fakeLibrary) Count(h Handle, kind StreamKind, streamIndex int) int {
	l.touch(h)
	if streamIndex == AllStreams {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.open[h][kind])
	}
	s, ok := l.stream(h, kind, streamIndex)
	if !ok {
		return 0
	}
	return len(s)
}

func (l *fakeLibrary) Option(h Handle, name, value string) string {
	l.touch(h)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.options = append(l.options, fakeOption{handle: h, name: name, value: value})
	if name == "Info_Version" {
		return l.version
	}
	return ""
}

// touch fails loudly when a call reaches the engine with a dead handle.
func (l *fakeLibrary) touch(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.live[h] {
		panic("call with dead handle")
	}
	l.calls++
}

func (l *fakeLibrary) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func (l *fakeLibrary) liveCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

var errFakeLoad = errors.New("libmediainfo.so.0: cannot open shared object file")

// sampleFile mirrors a small Matroska file: one H.264 video stream, two
// audio streams and a subtitle track.
func sampleFile() fakeFile {
	return fakeFile{
		StreamGeneral: {
			{
				{name: "Format", value: "Matroska", options: "Y YT"},
				{name: "Duration", value: "5005.000", measure: " ms", options: "Y YF"},
				{name: "OverallBitRate", value: "4193842", measure: " b/s", options: "Y YF"},
				{name: "Title", value: "Ünïcødé 日本語"},
				{name: "FileSize", value: "2623456"},
			},
		},
		StreamVideo: {
			{
				{name: "Format", value: "AVC", options: "Y YT"},
				{name: "Width", value: "1920", measure: " pixel", options: "Y YI"},
				{name: "Height", value: "1080", measure: " pixel", options: "Y YI"},
				{name: "FrameRate", value: "23.976", measure: " FPS", options: "Y YF"},
				{name: "BitDepth", value: "N/A", options: "Y YI"},
				{name: "Delay", value: ""},
			},
		},
		StreamAudio: {
			{
				{name: "Format", value: "AAC"},
				{name: "Channel(s)", value: "2", measure: " channel", options: "Y YI"},
				{name: "SamplingRate", value: "48000", measure: " Hz", options: "Y YF"},
			},
			{
				{name: "Format", value: "AC-3"},
				{name: "Channel(s)", value: "6", measure: " channel"},
				{name: "SamplingRate", value: "48000.0 / 44100.0", measure: " Hz"},
			},
		},
		StreamText: {
			{
				{name: "Format", value: "UTF-8"},
				{name: "Language", value: "fr"},
			},
		},
	}
}

// =============================================================================
// Log capture
// =============================================================================

type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = nil
}

func (h *recordHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

func (h *recordHandler) last() (slog.Record, map[string]string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.records) == 0 {
		return slog.Record{}, nil
	}
	r := h.records[len(h.records)-1]
	attrs := make(map[string]string)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.String()
		return true
	})
	return r, attrs
}

// newTestMediaInfo returns a MediaInfo on a fake library with sampleFile
// registered as "sample.mkv", plus the log capture.
func newTestMediaInfo() (*MediaInfo, *fakeLibrary, *recordHandler) {
	lib := newFakeLibrary()
	lib.addFile("sample.mkv", sampleFile())
	logs := &recordHandler{}
	mi := New(Config{Library: lib, Logger: slog.New(logs)})
	return mi, lib, logs
}
