package mediainfo

import "strings"

// StreamKind identifies a category of stream inside an analyzed file.
// Values match libmediainfo's stream_t.
type StreamKind int32

const (
	StreamGeneral StreamKind = iota // Container-level information
	StreamVideo
	StreamAudio
	StreamText // Subtitles and other timed text
	StreamOther
	StreamImage
	StreamMenu // Chapters
	streamKindCount
)

var streamKindNames = [streamKindCount]string{
	StreamGeneral: "General",
	StreamVideo:   "Video",
	StreamAudio:   "Audio",
	StreamText:    "Text",
	StreamOther:   "Other",
	StreamImage:   "Image",
	StreamMenu:    "Menu",
}

// String returns the engine's name for the stream kind.
func (k StreamKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return streamKindNames[k]
}

// Valid reports whether k is one of the known stream kinds.
func (k StreamKind) Valid() bool { return k >= 0 && k < streamKindCount }

// StreamKinds returns every stream kind in engine order.
func StreamKinds() []StreamKind {
	kinds := make([]StreamKind, streamKindCount)
	for i := range kinds {
		kinds[i] = StreamKind(i)
	}
	return kinds
}

// ParseStreamKind maps a stream kind name to its value. Matching is
// case-insensitive; "container" and "subtitle" are accepted as aliases for
// General and Text.
func ParseStreamKind(name string) (StreamKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "container":
		return StreamGeneral, true
	case "subtitle", "subtitles":
		return StreamText, true
	}
	for k, n := range streamKindNames {
		if strings.ToLower(n) == name {
			return StreamKind(k), true
		}
	}
	return 0, false
}

// InfoKind selects which view of a parameter the engine returns.
// Values match libmediainfo's info_t.
type InfoKind int32

const (
	InfoName        InfoKind = iota // Unique name of the parameter
	InfoText                        // Value of the parameter
	InfoMeasure                     // Unique name of the measure unit
	InfoOptions                     // Capability flags, see InfoOption
	InfoNameText                    // Translated name of the parameter
	InfoMeasureText                 // Translated name of the measure unit
	InfoInfo                        // More information about the parameter
	InfoHowTo                       // How the value is found
	infoKindCount
)

var infoKindNames = [infoKindCount]string{
	InfoName:        "Name",
	InfoText:        "Text",
	InfoMeasure:     "Measure",
	InfoOptions:     "Options",
	InfoNameText:    "Name_Text",
	InfoMeasureText: "Measure_Text",
	InfoInfo:        "Info",
	InfoHowTo:       "HowTo",
}

func (k InfoKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return infoKindNames[k]
}

// Valid reports whether k is one of the known info kinds.
func (k InfoKind) Valid() bool { return k >= 0 && k < infoKindCount }

// InfoOption is a character position in the string returned for InfoOptions.
// Each position holds a flag ('Y'/'N') except OptionTypeOfValue, which holds
// a ValueType letter.
type InfoOption int

const (
	OptionShowInInform    InfoOption = iota // Shown in Inform()
	OptionReserved                          // Reserved for future use
	OptionShowInSupported                   // Shown in Info_Capacities()
	OptionTypeOfValue                       // ValueType of a standard Get()
)

func (o InfoOption) String() string {
	switch o {
	case OptionShowInInform:
		return "ShowInInform"
	case OptionReserved:
		return "Reserved"
	case OptionShowInSupported:
		return "ShowInSupported"
	case OptionTypeOfValue:
		return "TypeOfValue"
	default:
		return "unknown"
	}
}

// ValueType is the declared type of a parameter value. The underlying byte
// is the letter the engine uses at OptionTypeOfValue.
type ValueType byte

const (
	ValueText    ValueType = 'T'
	ValueInteger ValueType = 'I' // Up to 64 bits, base 10
	ValueFloat   ValueType = 'F'
	ValueDate    ValueType = 'D'
	ValueBinary  ValueType = 'B' // Base64
)

func (t ValueType) String() string {
	switch t {
	case ValueText:
		return "text"
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueDate:
		return "date"
	case ValueBinary:
		return "binary"
	default:
		return "unknown"
	}
}
