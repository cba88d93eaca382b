package samples

import (
	"net/url"
	"path"
	"strings"
)

// Family is the instrument family a sample belongs to.
type Family int

const (
	FamilyOther Family = iota
	FamilyGitarre
	FamilyKlavier
	FamilyWeitere
)

var familyNames = map[string]Family{
	"Gitarre": FamilyGitarre,
	"Klavier": FamilyKlavier,
	"Weitere": FamilyWeitere,
}

func (f Family) String() string {
	switch f {
	case FamilyGitarre:
		return "Gitarre"
	case FamilyKlavier:
		return "Klavier"
	case FamilyWeitere:
		return "Weitere"
	default:
		return "other"
	}
}

// Primary reports whether f is one of the lead families. A selection holds
// at most one primary sample.
func (f Family) Primary() bool {
	return f != FamilyOther
}

// Descriptor identifies one sample in the manifest.
type Descriptor struct {
	ID     string
	Family Family
}

// ParseDescriptor tags id with the family named by the prefix before the first
// '_' of its last path segment. Unknown or missing prefixes map to FamilyOther.
func ParseDescriptor(id string) Descriptor {
	return Descriptor{ID: id, Family: familyOf(id)}
}

func familyOf(id string) Family {
	p := id
	if u, err := url.Parse(id); err == nil && u.Scheme != "" {
		p = u.Path
	}
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	prefix, _, _ := strings.Cut(base, "_")
	return familyNames[prefix]
}

func (d Descriptor) String() string {
	return d.ID
}
