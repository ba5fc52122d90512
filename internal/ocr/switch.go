package ocr

import (
	"fmt"
)

// Switch is the on/off value of the --OCR flag. Only the exact strings
// "True" and "False" are accepted.
type Switch struct {
	On bool
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Switch) UnmarshalText(b []byte) error {
	switch string(b) {
	case "True":
		s.On = true
	case "False":
		s.On = false
	default:
		return fmt.Errorf("invalid OCR switch %q: must be exactly True or False", string(b))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Switch) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Switch) String() string {
	if s.On {
		return "True"
	}
	return "False"
}
