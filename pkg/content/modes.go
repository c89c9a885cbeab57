package content

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode is one of the audience-facing portfolio views.
type Mode string

const (
	// ModeResearch is the research portfolio view.
	ModeResearch Mode = "research"
	// ModeABA is the applied behavior analysis view.
	ModeABA Mode = "aba"
	// ModeBusiness is the business and operations view.
	ModeBusiness Mode = "business"
	// ModeJournalism is the journalism view.
	ModeJournalism Mode = "journalism"
)

// Modes returns every mode in canonical order.
func Modes() (modes []Mode) {
	modes = []Mode{ModeResearch, ModeABA, ModeBusiness, ModeJournalism}
	return modes
}

// ParseMode converts a string to a Mode. Unknown values are an error.
func ParseMode(s string) (mode Mode, err error) {
	for _, m := range Modes() {
		if string(m) == s {
			mode = m
			return mode, err
		}
	}
	err = errors.Errorf("unknown mode %q", s)
	return mode, err
}

// String returns the mode key.
func (m Mode) String() string {
	return string(m)
}

// ModeSet is a set of modes kept in canonical order.
// A nil ModeSet means no modes were declared; a declared set is never empty.
type ModeSet []Mode

// NewModeSet builds a de-duplicated set in canonical order.
func NewModeSet(modes ...Mode) (set ModeSet) {
	set = ModeSet{}
	for _, m := range Modes() {
		for _, candidate := range modes {
			if candidate == m {
				set = append(set, m)
				break
			}
		}
	}
	return set
}

// Declared reports whether the set was present on the record.
func (s ModeSet) Declared() bool {
	return s != nil
}

// Contains reports whether the set holds the mode.
func (s ModeSet) Contains(mode Mode) bool {
	for _, m := range s {
		if m == mode {
			return true
		}
	}
	return false
}

// Union returns a new set holding the modes of both sets.
func (s ModeSet) Union(other ModeSet) (union ModeSet) {
	all := make([]Mode, 0, len(s)+len(other))
	all = append(all, s...)
	all = append(all, other...)
	union = NewModeSet(all...)
	return union
}

// Strings returns the mode keys.
func (s ModeSet) Strings() (keys []string) {
	keys = make([]string, len(s))
	for i, m := range s {
		keys[i] = string(m)
	}
	return keys
}

// String joins the mode keys with commas.
func (s ModeSet) String() string {
	return strings.Join(s.Strings(), ",")
}

// Label returns the display name of the mode.
func (m Mode) Label() (label string) {
	switch m {
	case ModeABA:
		label = "ABA"
	case ModeResearch:
		label = "Research"
	case ModeBusiness:
		label = "Business"
	case ModeJournalism:
		label = "Journalism"
	default:
		label = string(m)
	}
	return label
}
