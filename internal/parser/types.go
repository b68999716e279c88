package parser

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindJob        Kind = "job"
	KindStatus     Kind = "status"
	KindItem       Kind = "item"
	KindBuilding   Kind = "building"
	KindSuperLevel Kind = "super level"
)

// Match describes how a raw name was resolved.
type Match struct {
	Raw        string
	Normalised string
	Canonical  string
	Source     string
	Score      float64
}

// UnknownNameError is returned when a name maps to no catalog entry, or to
// several entries that score the same.
type UnknownNameError struct {
	Kind        Kind
	Name        string
	Ambiguous   bool
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	var b strings.Builder
	if e.Ambiguous {
		fmt.Fprintf(&b, "%s %q is ambiguous", e.Kind, e.Name)
	} else {
		fmt.Fprintf(&b, "unknown %s %q", e.Kind, e.Name)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean: %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}
