// Package audit models the append-only status transition trail.
package audit

import (
	"fmt"
	"strings"

	"github.com/rescue-ops/backend/internal/domain/shared"
)

// SubjectKind identifies which aggregate an audit record describes.
type SubjectKind string

const (
	SubjectUser     SubjectKind = "user"
	SubjectTeam     SubjectKind = "team"
	SubjectMessage  SubjectKind = "message"
	SubjectIncident SubjectKind = "incident"
)

// SubjectKinds lists every valid kind
var SubjectKinds = []SubjectKind{SubjectUser, SubjectTeam, SubjectMessage, SubjectIncident}

// IsValid reports whether k is a known kind.
func (k SubjectKind) IsValid() bool {
	switch k {
	case SubjectUser, SubjectTeam, SubjectMessage, SubjectIncident:
		return true
	}
	return false
}

// ParseSubjectKind parses a kind name, accepting plural forms used in URLs.
func ParseSubjectKind(s string) (SubjectKind, error) {
	k := SubjectKind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	if !k.IsValid() {
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown audit subject kind %q", s))
	}
	return k, nil
}

// Subject is the single aggregate an audit record belongs to.
// It can only be built through the kind constructors, so a record always
// carries exactly one subject.
type Subject struct {
	kind SubjectKind
	id   int64
}

// UserSubject returns a subject for a user.
func UserSubject(id int64) Subject { return Subject{kind: SubjectUser, id: id} }

// TeamSubject returns a subject for a team.
func TeamSubject(id int64) Subject { return Subject{kind: SubjectTeam, id: id} }

// MessageSubject returns a subject for a message.
func MessageSubject(id int64) Subject { return Subject{kind: SubjectMessage, id: id} }

// IncidentSubject returns a subject for an incident.
func IncidentSubject(id int64) Subject { return Subject{kind: SubjectIncident, id: id} }

// NewSubject builds a subject from a kind and id.
func NewSubject(kind SubjectKind, id int64) (Subject, error) {
	if !kind.IsValid() {
		return Subject{}, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("unknown audit subject kind %q", kind))
	}
	return Subject{kind: kind, id: id}, nil
}

// Kind returns the subject kind
func (s Subject) Kind() SubjectKind { return s.kind }

// ID returns the subject identifier
func (s Subject) ID() int64 { return s.id }

// IsZero reports whether the subject is unset or has no usable identifier.
func (s Subject) IsZero() bool {
	return !s.kind.IsValid() || s.id <= 0
}

func (s Subject) String() string {
	return fmt.Sprintf("%s:%d", s.kind, s.id)
}
