package obis

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-sml/sml"
)

// ErrInvalidCode indicates that a string or octet string is not an OBIS code.
var ErrInvalidCode = errors.New("invalid obis code")

// Code is an OBIS object identifier (IEC 62056-61), six value groups A to F.
//
// The textual form is "A-B:C.D.E*F", for example "1-0:1.8.0*255".
type Code [6]byte

// New creates a code from its six value groups.
func New(a, b, c, d, e, f byte) Code {
	return Code{a, b, c, d, e, f}
}

// Parse parses the textual form "A-B:C.D.E*F". The "*F" suffix may be omitted,
// in which case F is 255. A string of twelve hex digits is accepted as well.
func Parse(s string) (Code, error) {
	var code Code

	s = strings.TrimSpace(s)
	if len(s) == 12 && !strings.ContainsAny(s, "-:.*") {
		data, err := hex.DecodeString(s)
		if err != nil {
			return code, fmt.Errorf("%w: %q", ErrInvalidCode, s)
		}
		copy(code[:], data)

		return code, nil
	}

	code[5] = 0xFF
	rest := s
	for i, sep := range []string{"-", ":", ".", ".", "*"} {
		field, next, found := strings.Cut(rest, sep)
		if !found {
			// only the F group is optional
			if i != 4 {
				return Code{}, fmt.Errorf("%w: %q", ErrInvalidCode, s)
			}
			field, next = rest, ""
		}

		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return Code{}, fmt.Errorf("%w: %q", ErrInvalidCode, s)
		}
		code[i] = byte(v)
		rest = next

		if !found {
			return code, nil
		}
	}

	v, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	code[5] = byte(v)

	return code, nil
}

// MustParse is like Parse but panics if s is not a valid code.
func MustParse(s string) Code {
	code, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return code
}

// FromOctetString converts an object name to a code. It returns false unless
// name is exactly six bytes long.
func FromOctetString(name sml.OctetString) (Code, bool) {
	var code Code
	if len(name) != len(code) {
		return code, false
	}
	copy(code[:], name)

	return code, true
}

// OctetString returns the code as a six byte object name.
func (c Code) OctetString() sml.OctetString {
	return sml.OctetString(c[:]).Clone()
}

// Matches reports whether name is this code. The F group is ignored when the
// code's F is 255, as meters commonly report other values there.
func (c Code) Matches(name sml.OctetString) bool {
	other, ok := FromOctetString(name)
	if !ok {
		return false
	}
	if c[5] == 0xFF {
		return [5]byte(c[:5]) == [5]byte(other[:5])
	}

	return c == other
}

// String returns the textual form "A-B:C.D.E*F".
func (c Code) String() string {
	return fmt.Sprintf("%d-%d:%d.%d.%d*%d", c[0], c[1], c[2], c[3], c[4], c[5])
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	code, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = code

	return nil
}
