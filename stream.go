package mediainfo

// Parameter is one parameter of a stream as enumerated by ordinal.
type Parameter struct {
	Index   int
	Name    string
	Value   string
	Measure string
}

// Parameters enumerates every parameter of the streamIndex-th stream of kind,
// in engine order. Parameters with an empty value are kept; the engine
// reports the whole parameter table of the stream kind.
func (m *MediaInfo) Parameters(kind StreamKind, streamIndex int) ([]Parameter, error) {
	n, err := m.ParameterCount(kind, streamIndex)
	if err != nil {
		return nil, err
	}
	params := make([]Parameter, 0, n)
	for i := 0; i < n; i++ {
		name, err := m.GetByIndexInfo(kind, streamIndex, i, InfoName)
		if err != nil {
			return nil, err
		}
		value, err := m.GetByIndexInfo(kind, streamIndex, i, InfoText)
		if err != nil {
			return nil, err
		}
		measure, err := m.GetByIndexInfo(kind, streamIndex, i, InfoMeasure)
		if err != nil {
			return nil, err
		}
		params = append(params, Parameter{Index: i, Name: name, Value: value, Measure: measure})
	}
	return params, nil
}

// Streams returns the number of streams of every kind in the open file.
// Kinds without streams are omitted.
func (m *MediaInfo) Streams() (map[StreamKind]int, error) {
	counts := make(map[StreamKind]int)
	for _, kind := range StreamKinds() {
		n, err := m.StreamCount(kind)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			counts[kind] = n
		}
	}
	return counts, nil
}
