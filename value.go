package xmpcore

import "strconv"

// Boolean properties use the "True"/"False" spelling on the wire; reading
// also accepts the strconv forms.

func (m *Meta) GetPropertyBool(schemaURI, path string) (bool, error) {
	v, _, err := m.GetProperty(schemaURI, path)
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(v)
}

func (m *Meta) SetPropertyBool(schemaURI, path string, v bool) error {
	s := "False"
	if v {
		s = "True"
	}
	return m.SetProperty(schemaURI, path, s, 0)
}

func (m *Meta) GetPropertyInt(schemaURI, path string) (int64, error) {
	v, _, err := m.GetProperty(schemaURI, path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, 64)
}

func (m *Meta) SetPropertyInt(schemaURI, path string, v int64) error {
	return m.SetProperty(schemaURI, path, strconv.FormatInt(v, 10), 0)
}
