package timetable

import (
	"fmt"
	"strings"
)

// SessionType classifies a session.
type SessionType int

const (
	// Theory is a lecture session.
	Theory SessionType = iota
	// Practical is a lab session.
	Practical
	// Tutorial is a small-group problem session.
	Tutorial
)

// String returns the lowercase name of the session type.
func (t SessionType) String() string {
	switch t {
	case Theory:
		return "theory"
	case Practical:
		return "practical"
	case Tutorial:
		return "tutorial"
	default:
		return fmt.Sprintf("SessionType(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined session types.
func (t SessionType) Valid() bool {
	return t >= Theory && t <= Tutorial
}

// ParseSessionType parses a session type name. Matching is case-insensitive.
func ParseSessionType(s string) (SessionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "theory":
		return Theory, nil
	case "practical":
		return Practical, nil
	case "tutorial":
		return Tutorial, nil
	default:
		return Theory, fmt.Errorf("%w: %q", ErrUnknownSessionType, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SessionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSessionType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *SessionType) UnmarshalText(text []byte) error {
	parsed, err := ParseSessionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Session is one scheduled class occupying a timetable slot.
type Session struct {
	Subject  string      `json:"subject"`
	Teacher  string      `json:"teacher"`
	Room     string      `json:"room"`
	Branch   string      `json:"branch"`
	Section  string      `json:"section"`
	Type     SessionType `json:"type"`
	Students int         `json:"students"`
}

// SessionPatch is a partial update of a Session. Nil fields are left as-is.
type SessionPatch struct {
	Subject  *string      `json:"subject,omitempty"`
	Teacher  *string      `json:"teacher,omitempty"`
	Room     *string      `json:"room,omitempty"`
	Branch   *string      `json:"branch,omitempty"`
	Section  *string      `json:"section,omitempty"`
	Type     *SessionType `json:"type,omitempty"`
	Students *int         `json:"students,omitempty"`
}

// Apply returns s with every set field of the patch applied.
func (p SessionPatch) Apply(s Session) Session {
	if p.Subject != nil {
		s.Subject = *p.Subject
	}
	if p.Teacher != nil {
		s.Teacher = *p.Teacher
	}
	if p.Room != nil {
		s.Room = *p.Room
	}
	if p.Branch != nil {
		s.Branch = *p.Branch
	}
	if p.Section != nil {
		s.Section = *p.Section
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Students != nil {
		s.Students = *p.Students
	}
	return s
}

// Empty reports whether the patch sets no fields.
func (p SessionPatch) Empty() bool {
	return p == SessionPatch{}
}
