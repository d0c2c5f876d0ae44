package mediainfo

import (
	"errors"
	"log/slog"
	"runtime"
	"testing"
)

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestNew_Valid(t *testing.T) {
	mi, lib, _ := newTestMediaInfo()
	defer mi.Close()

	if !mi.IsValid() {
		t.Fatalf("IsValid() = false, Err() = %v", mi.Err())
	}
	if mi.Err() != nil {
		t.Errorf("Err() = %v, want nil", mi.Err())
	}
	if mi.IsOpen() {
		t.Error("IsOpen() = true before OpenFile")
	}

	var utf8Calls int
	for _, o := range lib.options {
		if o.name == "setlocale_LC_CTYPE" && o.value == "UTF-8" {
			utf8Calls++
		}
	}
	want := 1
	if runtime.GOOS == "windows" {
		want = 0
	}
	if utf8Calls != want {
		t.Errorf("setlocale_LC_CTYPE calls = %d, want %d", utf8Calls, want)
	}
}

func TestNew_LogLoad(t *testing.T) {
	lib := newFakeLibrary()
	logs := &recordHandler{}
	mi := New(Config{Library: lib, Logger: slog.New(logs), LogLoad: true})
	defer mi.Close()

	var found bool
	logs.mu.Lock()
	for _, r := range logs.records {
		if r.Message != "loaded MediaInfo library" {
			continue
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "version" && a.Value.String() == lib.version {
				found = true
			}
			return true
		})
	}
	logs.mu.Unlock()
	if !found {
		t.Error("version was not logged")
	}
	// The version query uses its own short-lived instance.
	if lib.liveCount() != 1 {
		t.Errorf("live instances = %d, want 1", lib.liveCount())
	}
}

func TestNew_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeLibrary)
	}{
		{"load error", func(l *fakeLibrary) { l.newErr = errFakeLoad }},
		{"zero handle", func(l *fakeLibrary) { l.newZero = true }},
		{"panic", func(l *fakeLibrary) { l.newPanic = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := newFakeLibrary()
			tt.setup(lib)
			logs := &recordHandler{}

			mi := New(Config{Library: lib, Logger: slog.New(logs)})

			if mi.IsValid() {
				t.Fatal("IsValid() = true for failed construction")
			}
			if !errors.Is(mi.Err(), ErrUnavailable) {
				t.Errorf("Err() = %v, want ErrUnavailable", mi.Err())
			}
			if logs.count(slog.LevelError) != 1 {
				t.Errorf("error records = %d, want 1", logs.count(slog.LevelError))
			}

			if _, err := mi.Get(StreamVideo, 0, "Width"); !errors.Is(err, ErrNoHandle) {
				t.Errorf("Get() error = %v, want ErrNoHandle", err)
			}
			if ok, err := mi.OpenFile("sample.mkv"); ok || !errors.Is(err, ErrNoHandle) {
				t.Errorf("OpenFile() = %v, %v, want false, ErrNoHandle", ok, err)
			}
			if _, err := mi.Count(StreamAudio, AllStreams); !errors.Is(err, ErrNoHandle) {
				t.Errorf("Count() error = %v, want ErrNoHandle", err)
			}
			if err := mi.Dispose(); !errors.Is(err, ErrInvalidState) {
				t.Errorf("Dispose() error = %v, want ErrInvalidState", err)
			}
			if err := mi.Close(); err != nil {
				t.Errorf("Close() error = %v, want nil", err)
			}
			if lib.callCount() != 0 {
				t.Errorf("engine calls = %d, want 0", lib.callCount())
			}
		})
	}
}

func TestNew_NoLibrary(t *testing.T) {
	if IsAvailable() {
		t.Skip("libmediainfo is installed")
	}
	mi := New(Config{Logger: slog.New(&recordHandler{})})
	if mi.IsValid() {
		t.Fatal("IsValid() = true without libmediainfo")
	}
	if !errors.Is(mi.Err(), ErrUnavailable) {
		t.Errorf("Err() = %v, want ErrUnavailable", mi.Err())
	}
}

func TestDispose(t *testing.T) {
	mi, lib, _ := newTestMediaInfo()

	if err := mi.Dispose(); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	if mi.IsValid() {
		t.Error("IsValid() = true after Dispose")
	}
	if len(lib.deleted) != 1 {
		t.Errorf("deleted = %d, want 1", len(lib.deleted))
	}

	err := mi.Dispose()
	if !errors.Is(err, ErrDisposed) || !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Dispose() error = %v, want ErrDisposed", err)
	}
	if err := mi.Close(); err != nil {
		t.Errorf("Close() after Dispose error = %v", err)
	}
	if len(lib.deleted) != 1 {
		t.Errorf("deleted = %d after repeat dispose, want 1", len(lib.deleted))
	}
}

func TestClose_Deferred(t *testing.T) {
	lib := newFakeLibrary()
	func() {
		mi := New(Config{Library: lib, Logger: slog.New(&recordHandler{})})
		defer mi.Close()
		if !mi.IsValid() {
			t.Fatal("IsValid() = false")
		}
	}()
	if lib.liveCount() != 0 {
		t.Errorf("live instances = %d after deferred Close, want 0", lib.liveCount())
	}
}

func TestUseAfterDispose(t *testing.T) {
	mi, lib, _ := newTestMediaInfo()
	if ok, err := mi.OpenFile("sample.mkv"); !ok || err != nil {
		t.Fatalf("OpenFile() = %v, %v", ok, err)
	}
	if err := mi.Dispose(); err != nil {
		t.Fatalf("Dispose() error = %v", err)
	}
	calls := lib.callCount()

	checks := map[string]func() error{
		"Get": func() error {
			_, err := mi.Get(StreamVideo, 0, "Width")
			return err
		},
		"GetByIndex": func() error {
			_, err := mi.GetByIndex(StreamVideo, 0, 1)
			return err
		},
		"GetInt64": func() error {
			_, err := mi.GetInt64(StreamVideo, 0, "Width")
			return err
		},
		"GetFloat64": func() error {
			_, err := mi.GetFloat64(StreamVideo, 0, "FrameRate")
			return err
		},
		"Count": func() error {
			_, err := mi.Count(StreamVideo, AllStreams)
			return err
		},
		"Inform": func() error {
			_, err := mi.Inform()
			return err
		},
		"Option": func() error {
			_, err := mi.Option("Info_Version", "")
			return err
		},
		"OpenFile": func() error {
			_, err := mi.OpenFile("sample.mkv")
			return err
		},
		"CloseFile": mi.CloseFile,
		"Lookup": func() error {
			_, err := mi.Lookup(FieldOf(StreamVideo, "Width"), 0)
			return err
		},
	}

	for name, call := range checks {
		t.Run(name, func(t *testing.T) {
			if err := call(); !errors.Is(err, ErrDisposed) {
				t.Errorf("%s() error = %v, want ErrDisposed", name, err)
			}
		})
	}
	if lib.callCount() != calls {
		t.Errorf("engine calls after Dispose = %d, want 0", lib.callCount()-calls)
	}
}

// =============================================================================
// Query Tests
// =============================================================================

func TestOpenFile_MissingThenReuse(t *testing.T) {
	mi, _, _ := newTestMediaInfo()
	defer mi.Close()

	ok, err := mi.OpenFile("/nonexistent/file.mkv")
	if err != nil || ok {
		t.Fatalf("OpenFile(missing) = %v, %v, want false, nil", ok, err)
	}
	if !mi.IsValid() {
		t.Fatal("IsValid() = false after failed open")
	}
	if mi.IsOpen() {
		t.Error("IsOpen() = true after failed open")
	}

	ok, err = mi.OpenFile("sample.mkv")
	if err != nil || !ok {
		t.Fatalf("OpenFile(sample) = %v, %v, want true, nil", ok, err)
	}
	if mi.Path() != "sample.mkv" {
		t.Errorf("Path() = %q", mi.Path())
	}
}

func TestGet(t *testing.T) {
	mi, _, _ := newTestMediaInfo()
	defer mi.Close()
	if ok, _ := mi.OpenFile("sample.mkv"); !ok {
		t.Fatal("OpenFile failed")
	}

	tests := []struct {
		name  string
		kind  StreamKind
		index int
		param string
		want  string
	}{
		{"video width", StreamVideo, 0, "Width", "1920"},
		{"second audio", StreamAudio, 1, "Format", "AC-3"},
		{"non-ascii tag", StreamGeneral, 0, "Title", "Ünïcødé 日本語"},
		{"absent field", StreamVideo, 0, "HDR_Format", ""},
		{"empty field", StreamVideo, 0, "Delay", ""},
		{"absent stream", StreamAudio, 5, "Format", ""},
		{"absent kind", StreamMenu, 0, "Format", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mi.Get(tt.kind, tt.index, tt.param)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	mi, _, _ := newTestMediaInfo()
	defer mi.Close()
	mi.OpenFile("sample.mkv")

	got, err := mi.GetInfo(StreamVideo, 0, "Width", InfoMeasure)
	if err != nil || got != " pixel" {
		t.Errorf("GetInfo(Measure) = %q, %v", got, err)
	}
	got, err = mi.GetWith(StreamVideo, 0, "Width", InfoName, InfoName)
	if err != nil || got != "Width" {
		t.Errorf("GetWith(Name) = %q, %v", got, err)
	}
	if _, err := mi.Get(StreamVideo, -1, "Width"); !errors.Is(err, ErrStreamIndex) {
		t.Errorf("Get(index -1) error = %v, want ErrStreamIndex", err)
	}
}

func TestGetByIndex(t *testing.T) {
	mi, _, _ := newTestMediaInfo()
	defer mi.Close()
	mi.OpenFile("sample.mkv")

	name, err := mi.GetByIndexInfo(StreamVideo, 0, 1, InfoName)
	if err != nil || name != "Width" {
		t.Errorf("GetByIndexInfo(Name) = %q, %v", name, err)
	}
	value, err := mi.GetByIndex(StreamVideo, 0, 1)
	if err != nil || value != "1920" {
		t.Errorf("GetByIndex() = %q, %v", value, err)
	}
	value, err = mi.GetByIndex(StreamVideo, 0, 99)
	if err != nil || value != "" {
		t.Errorf("GetByIndex(out of range) = %q, %v", value, err)
	}
}

func TestCount(t *testing.T) {
	mi, _, _ := newTestMediaInfo()
	defer mi.Close()
	mi.OpenFile("sample.mkv")

	t.Run("streams of kind", func(t *testing.T) {
		tests := map[StreamKind]int{
			StreamGeneral: 1,
			StreamVideo:   1,
			StreamAudio:   2,
			StreamText:    1,
			StreamMenu:    0,
		}
		for kind, want := range tests {
			got, err := mi.Count(kind, AllStreams)
			if err != nil || got != want {
				t.Errorf("Count(%v, AllStreams) = %d, %v, want %d", kind, got, err, want)
			}
		}
	})

	t.Run("parameters of stream", func(t *testing.T) {
		got, err := mi.Count(StreamVideo, 0)
		if err != nil || got != 6 {
			t.Errorf("Count(Video, 0) = %d, %v, want 6", got, err)
		}
		got, err = mi.ParameterCount(StreamAudio, 1)
		if err != nil || got != 3 {
			t.Errorf("ParameterCount(Audio, 1) = %d, %v, want 3", got, err)
		}
	})

	t.Run("stream count matches populated indexes", func(t *testing.T) {
		for _, kind := range StreamKinds() {
			streams, err := mi.StreamCount(kind)
			if err != nil {
				t.Fatal(err)
			}
			populated := 0
			for i := 0; i < streams+2; i++ {
				n, err := mi.ParameterCount(kind, i)
				if err != nil {
					t.Fatal(err)
				}
				if n > 0 {
					populated++
				}
			}
			if populated != streams {
				t.Errorf("%v: StreamCount = %d, populated indexes = %d", kind, streams, populated)
			}
		}
	})

	t.Run("invalid index", func(t *testing.T) {
		if _, err := mi.Count(StreamVideo, -2); !errors.Is(err, ErrStreamIndex) {
			t.Errorf("Count(-2) error = %v, want ErrStreamIndex", err)
		}
		if _, err := mi.ParameterCount(StreamVideo, AllStreams); !errors.Is(err, ErrStreamIndex) {
			t.Errorf("ParameterCount(AllStreams) error = %v, want ErrStreamIndex", err)
		}
	})
}

func TestCloseFile(t *testing.T) {
	mi, _, _ := newTestMediaInfo()
	defer mi.Close()
	mi.OpenFile("sample.mkv")

	if err := mi.CloseFile(); err != nil {
		t.Fatalf("CloseFile() error = %v", err)
	}
	if mi.IsOpen() || mi.Path() != "" {
		t.Error("file still open after CloseFile")
	}
	n, err := mi.StreamCount(StreamVideo)
	if err != nil || n != 0 {
		t.Errorf("StreamCount after CloseFile = %d, %v, want 0", n, err)
	}
	if ok, _ := mi.OpenFile("sample.mkv"); !ok {
		t.Error("reopen after CloseFile failed")
	}
}

func TestInformAndOption(t *testing.T) {
	mi, lib, _ := newTestMediaInfo()
	defer mi.Close()
	mi.OpenFile("sample.mkv")

	report, err := mi.Inform()
	if err != nil || report == "" {
		t.Errorf("Inform() = %q, %v", report, err)
	}

	version, err := mi.Option("Info_Version", "")
	if err != nil || version != lib.version {
		t.Errorf("Option(Info_Version) = %q, %v", version, err)
	}
}

func TestStaticOption(t *testing.T) {
	lib := newFakeLibrary()
	got, err := staticOption(lib, "Info_Version", "")
	if err != nil || got != lib.version {
		t.Fatalf("staticOption() = %q, %v", got, err)
	}
	if lib.liveCount() != 0 {
		t.Errorf("live instances = %d, want 0", lib.liveCount())
	}

	lib.newErr = errFakeLoad
	if _, err := staticOption(lib, "Info_Version", ""); !errors.Is(err, ErrUnavailable) {
		t.Errorf("staticOption() error = %v, want ErrUnavailable", err)
	}
}

// =============================================================================
// Scenario
// =============================================================================

func TestScenario_OpenQueryDispose(t *testing.T) {
	mi, lib, logs := newTestMediaInfo()

	ok, err := mi.OpenFile("sample.mkv")
	if err != nil || !ok {
		t.Fatalf("OpenFile() = %v, %v", ok, err)
	}

	raw, err := mi.Get(StreamVideo, 0, "Width")
	if err != nil || raw == "" {
		t.Fatalf("Get(Width) = %q, %v", raw, err)
	}
	width, err := mi.GetInt64(StreamVideo, 0, "Width")
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := width.Get(); !ok || v != 1920 {
		t.Errorf("GetInt64(Width) = %v, %v, want 1920", v, ok)
	}

	if err := mi.CloseFile(); err != nil {
		t.Fatal(err)
	}
	if err := mi.Dispose(); err != nil {
		t.Fatal(err)
	}
	if _, err := mi.Get(StreamVideo, 0, "Width"); !errors.Is(err, ErrDisposed) {
		t.Errorf("Get after Dispose error = %v, want ErrDisposed", err)
	}
	if lib.liveCount() != 0 {
		t.Errorf("live instances = %d, want 0", lib.liveCount())
	}
	if logs.count(slog.LevelDebug) != 0 {
		t.Errorf("unexpected debug records: %d", logs.count(slog.LevelDebug))
	}
}
