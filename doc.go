// Package mediainfo exposes the metadata extracted by MediaArea's
// libmediainfo (container, video, audio, text, image, menu and other
// streams) through a small Go facade.
//
// Key pieces include:
//   - MediaInfo: owns one native engine instance (New, Dispose/Close)
//   - Generic queries: OpenFile, Get/GetWith, GetByIndex, Count, Option, Inform
//   - Typed accessors: GetInt64/GetFloat64 returning Optional values
//   - Field catalog: Field, LookupField, Fields and MediaInfo.Lookup
//   - Analyze: scoped open/query/release with a context-bounded wait
//
// # Usage
//
//	mi := mediainfo.New(mediainfo.Config{})
//	if !mi.IsValid() {
//		// libmediainfo missing: fall back to another probe
//	}
//	defer mi.Close()
//	if ok, _ := mi.OpenFile("movie.mkv"); ok {
//		width, _ := mi.GetInt64(mediainfo.StreamVideo, 0, "Width")
//		_ = width.Or(0)
//	}
//
// # Native Library
//
// By default the package uses purego (CGO_ENABLED=0) and loads
// libmediainfo at runtime. Set MEDIAINFO_LIB_PATH to the library file or
// the directory containing it to override the search. With CGO enabled it
// links against libmediainfo via pkg-config instead. Other platforms than
// darwin and linux have no binding; New returns an invalid MediaInfo there.
//
// # Concurrency
//
// A MediaInfo is not safe for concurrent use. The engine keeps per-instance
// state for the open file, so use one MediaInfo per goroutine.
package mediainfo
