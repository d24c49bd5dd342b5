package grammar

import (
	"fmt"
	"strings"
)

// Verb holds the conjugated forms of one verb. Any form may be nil.
type Verb struct {
	DebugIdent string  `json:"debug_ident" toml:"debug_ident"`
	Infinitive *string `json:"infinitive" toml:"infinitive"`
	Singular1  *string `json:"singular1" toml:"singular1"`
	Singular2  *string `json:"singular2" toml:"singular2"`
	Singular3  *string `json:"singular3" toml:"singular3"`
	Plural1    *string `json:"plural1" toml:"plural1"`
	Plural2    *string `json:"plural2" toml:"plural2"`
	Plural3    *string `json:"plural3" toml:"plural3"`
}

// Form returns the form for p, or false if it is not defined.
func (v Verb) Form(p Person) (string, bool) {
	var f *string
	switch p {
	case FirstSingular:
		f = v.Singular1
	case SecondSingular:
		f = v.Singular2
	case ThirdSingular:
		f = v.Singular3
	case FirstPlural:
		f = v.Plural1
	case SecondPlural:
		f = v.Plural2
	case ThirdPlural:
		f = v.Plural3
	}
	if f == nil {
		return "", false
	}
	return *f, true
}

// FormCount returns how many of the six forms are defined.
func (v Verb) FormCount() int {
	n := 0
	for p := FirstSingular; p <= ThirdPlural; p++ {
		if _, ok := v.Form(p); ok {
			n++
		}
	}
	return n
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}

// String prints the conjugation table.
func (v Verb) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q -- to %s:\n", v.DebugIdent, orNA(v.Infinitive))
	fmt.Fprintf(&sb, "  I %s.\n", orNA(v.Singular1))
	fmt.Fprintf(&sb, "  You %s.\n", orNA(v.Singular2))
	fmt.Fprintf(&sb, "  He/she/it %s.\n", orNA(v.Singular3))
	fmt.Fprintf(&sb, "  We %s.\n", orNA(v.Plural1))
	fmt.Fprintf(&sb, "  You %s.\n", orNA(v.Plural2))
	fmt.Fprintf(&sb, "  They %s.\n", orNA(v.Plural3))
	return sb.String()
}
