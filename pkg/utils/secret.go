package utils

import "encoding/json"

// Secret is a string that never shows up in formatted output.
type Secret string

func (s *Secret) Reveal() string {
	if s == nil {
		return ""
	} else {
		return string(*s)
	}
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (Secret) String() string {
	return "<secret>"
}

func (Secret) GoString() string {
	return "<secret>"
}
