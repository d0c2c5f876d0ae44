package mediainfo

// OpenFile opens a file and collects information about it. It returns false
// when the engine cannot open or parse the file; that is a normal outcome for
// unsupported or corrupt input and leaves the instance usable for another
// OpenFile. Any file opened before is closed first.
func (m *MediaInfo) OpenFile(path string) (bool, error) {
	if err := m.check(); err != nil {
		return false, err
	}
	if m.fileOpen {
		m.lib.Close(m.handle)
		m.fileOpen = false
		m.path = ""
	}
	if m.lib.Open(m.handle, path) == 0 {
		return false, nil
	}
	m.fileOpen = true
	m.path = path
	return true, nil
}

// CloseFile releases the state of the open file so another file can be
// opened on the same instance.
func (m *MediaInfo) CloseFile() error {
	if err := m.check(); err != nil {
		return err
	}
	m.lib.Close(m.handle)
	m.fileOpen = false
	m.path = ""
	return nil
}

// Path returns the path of the open file, or "" when none is open.
func (m *MediaInfo) Path() string {
	return m.path
}

// Inform returns all details about the open file in one human-readable
// report.
func (m *MediaInfo) Inform() (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	return m.lib.Inform(m.handle), nil
}

// Get returns the text value of the named parameter, e.g. Get(StreamVideo, 0,
// "Width"). Missing or unsupported parameters yield "".
func (m *MediaInfo) Get(kind StreamKind, streamIndex int, name string) (string, error) {
	return m.GetWith(kind, streamIndex, name, InfoText, InfoName)
}

// GetInfo is Get with an explicit view of the parameter.
func (m *MediaInfo) GetInfo(kind StreamKind, streamIndex int, name string, info InfoKind) (string, error) {
	return m.GetWith(kind, streamIndex, name, info, InfoName)
}

// GetWith looks up the parameter name of the streamIndex-th stream of kind.
// search selects how name is matched and info selects which view of the
// parameter is returned (value, measure, help...). The result is never an
// error for an absent parameter: it is "", so callers need not distinguish
// "not present" from "never populated".
func (m *MediaInfo) GetWith(kind StreamKind, streamIndex int, name string, info, search InfoKind) (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	if streamIndex < 0 {
		return "", ErrStreamIndex
	}
	return m.lib.Get(m.handle, kind, streamIndex, name, info, search), nil
}

// GetByIndex returns the text value of the paramIndex-th parameter of a
// stream. Together with ParameterCount it enumerates every parameter of a
// stream without knowing the names up front.
func (m *MediaInfo) GetByIndex(kind StreamKind, streamIndex, paramIndex int) (string, error) {
	return m.GetByIndexInfo(kind, streamIndex, paramIndex, InfoText)
}

// GetByIndexInfo is GetByIndex with an explicit view of the parameter.
func (m *MediaInfo) GetByIndexInfo(kind StreamKind, streamIndex, paramIndex int, info InfoKind) (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	if streamIndex < 0 || paramIndex < 0 {
		return "", ErrStreamIndex
	}
	return m.lib.GetI(m.handle, kind, streamIndex, paramIndex, info), nil
}

// Count has two meanings. With streamIndex == AllStreams it returns the
// number of streams of kind; otherwise it returns the number of parameters
// available on that stream. Negative indexes other than AllStreams are
// rejected with ErrStreamIndex.
func (m *MediaInfo) Count(kind StreamKind, streamIndex int) (int, error) {
	if err := m.check(); err != nil {
		return 0, err
	}
	if streamIndex < AllStreams {
		return 0, ErrStreamIndex
	}
	return m.lib.Count(m.handle, kind, streamIndex), nil
}

// StreamCount returns the number of streams of kind in the open file.
func (m *MediaInfo) StreamCount(kind StreamKind) (int, error) {
	return m.Count(kind, AllStreams)
}

// ParameterCount returns the number of parameters of one stream.
func (m *MediaInfo) ParameterCount(kind StreamKind, streamIndex int) (int, error) {
	if streamIndex == AllStreams {
		return 0, ErrStreamIndex
	}
	return m.Count(kind, streamIndex)
}

// Option configures the instance or queries information about the engine.
// By default "" means no and anything else means yes; some options, such as
// "Info_Version" or "Info_Parameters", return text.
func (m *MediaInfo) Option(name, value string) (string, error) {
	if err := m.check(); err != nil {
		return "", err
	}
	return m.lib.Option(m.handle, name, value), nil
}
