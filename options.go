package mediainfo

// FieldOptions is the decoded InfoOptions view of a parameter.
type FieldOptions struct {
	ShowInInform    bool
	ShowInSupported bool
	Type            ValueType // zero when the engine did not say
}

// ParseFieldOptions decodes the flag string the engine returns for
// InfoOptions, one character per InfoOption position ("Y YT", "N NI"...).
// Missing positions decode as false or a zero ValueType.
func ParseFieldOptions(s string) FieldOptions {
	at := func(o InfoOption) byte {
		if int(o) < len(s) {
			return s[o]
		}
		return 0
	}
	opts := FieldOptions{
		ShowInInform:    at(OptionShowInInform) == 'Y',
		ShowInSupported: at(OptionShowInSupported) == 'Y',
	}
	switch t := ValueType(at(OptionTypeOfValue)); t {
	case ValueText, ValueInteger, ValueFloat, ValueDate, ValueBinary:
		opts.Type = t
	}
	return opts
}

// FieldOptions asks the engine for the capabilities of a parameter.
func (m *MediaInfo) FieldOptions(kind StreamKind, streamIndex int, name string) (FieldOptions, error) {
	s, err := m.GetInfo(kind, streamIndex, name, InfoOptions)
	if err != nil {
		return FieldOptions{}, err
	}
	return ParseFieldOptions(s), nil
}
