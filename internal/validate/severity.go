package validate

import "fmt"

// Severity classifies a finding. The zero value is not a valid severity; every
// rule states its severity explicitly.
type Severity uint8

const (
	Fatal Severity = iota + 1
	Warning
)

func (s Severity) String() string {
	switch s {
	case Fatal:
		return "fatal"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// ParseSeverity maps "fatal" or "warning" to a Severity.
func ParseSeverity(value string) (Severity, error) {
	switch value {
	case "fatal":
		return Fatal, nil
	case "warning":
		return Warning, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s != Fatal && s != Warning {
		return nil, fmt.Errorf("invalid severity %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
