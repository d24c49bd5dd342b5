package grammar

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Preset names a built-in pronoun set. The zero value is TheyThem.
type Preset uint8

const (
	TheyThem Preset = iota
	HeHim
	SheHer
	ItIts
	NameAsPronoun
	XeXyr
	CustomSet
)

var presetTags = [...]string{
	TheyThem:       "TheyThem",
	HeHim:          "HeHim",
	SheHer:         "SheHer",
	ItIts:          "ItIts",
	NameAsPronoun:  "Name",
	XeXyr:          "XeXyr",
	CustomSet:      "Custom",
}

func (p Preset) String() string {
	if int(p) < len(presetTags) {
		return presetTags[p]
	}
	return fmt.Sprintf("Preset(%d)", uint8(p))
}

// ParsePreset maps a wire tag to a Preset.
func ParsePreset(tag string) (Preset, bool) {
	for i, t := range presetTags {
		if t == tag {
			return Preset(i), true // #nosec G115 -- small table
		}
	}
	return 0, false
}

// Slot is one pronoun position.
type Slot uint8

const (
	Subjective Slot = iota
	Objective
	PossessiveDeterminer
	Possessive
	Reflexive
)

func (s Slot) String() string {
	switch s {
	case Subjective:
		return "subjective"
	case Objective:
		return "objective"
	case PossessiveDeterminer:
		return "possessive determiner"
	case Possessive:
		return "possessive"
	case Reflexive:
		return "reflexive"
	default:
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
}

// CustomPronouns is a fully spelled-out pronoun set.
type CustomPronouns struct {
	Subjective           string `json:"subjective"`
	Objective            string `json:"objective"`
	PossessiveDeterminer string `json:"possessive_determiner"`
	Possessive           string `json:"possessive"`
	Reflexive            string `json:"reflexive"`
	Person               Person `json:"person"`
}

func (c CustomPronouns) form(slot Slot) string {
	switch slot {
	case Subjective:
		return c.Subjective
	case Objective:
		return c.Objective
	case PossessiveDeterminer:
		return c.PossessiveDeterminer
	case Possessive:
		return c.Possessive
	default:
		return c.Reflexive
	}
}

// Pronouns is either a preset or a custom set. The zero value is they/them.
type Pronouns struct {
	Preset Preset
	Custom *CustomPronouns // non-nil iff Preset == CustomSet
}

// PresetPronouns returns the pronouns for a built-in preset.
func PresetPronouns(p Preset) Pronouns {
	return Pronouns{Preset: p}
}

// Custom returns a custom pronoun set.
func Custom(c CustomPronouns) Pronouns {
	return Pronouns{Preset: CustomSet, Custom: &c}
}

// forms per preset in Slot order; NameAsPronoun is derived from the name.
var presetForms = map[Preset][5]string{
	HeHim:    {"he", "him", "his", "his", "himself"},
	SheHer:   {"she", "her", "her", "hers", "herself"},
	ItIts:    {"it", "it", "its", "its", "itself"},
	TheyThem: {"they", "them", "their", "theirs", "themselves"},
	XeXyr:    {"xe", "xem", "xyr", "xyrs", "xemself"},
}

// Form returns the text for slot. name is used by the name-as-pronoun preset.
// Every preset yields text for every slot.
func (p Pronouns) Form(slot Slot, name string) string {
	switch p.Preset {
	case NameAsPronoun:
		switch slot {
		case Subjective, Objective:
			return name
		case PossessiveDeterminer, Possessive:
			return PossessiveOf(name)
		default:
			// reflexive reuses the possessive rule: "Alfons' self"
			return PossessiveOf(name) + " self"
		}
	case CustomSet:
		if p.Custom == nil {
			return presetForms[TheyThem][slot]
		}
		return p.Custom.form(slot)
	default:
		forms, ok := presetForms[p.Preset]
		if !ok {
			forms = presetForms[TheyThem]
		}
		return forms[slot]
	}
}

// Person returns the person/number the pronouns conjugate with.
func (p Pronouns) Person() Person {
	switch p.Preset {
	case TheyThem:
		return ThirdPlural
	case CustomSet:
		if p.Custom == nil {
			return ThirdPlural
		}
		return p.Custom.Person
	default:
		return ThirdSingular
	}
}

func (p Pronouns) String() string {
	if p.Preset == CustomSet && p.Custom != nil {
		return p.Custom.Subjective + "/" + p.Custom.Objective
	}
	if p.Preset == NameAsPronoun {
		return "name"
	}
	forms, ok := presetForms[p.Preset]
	if !ok {
		return p.Preset.String()
	}
	return forms[Subjective] + "/" + forms[Objective]
}

// PossessiveOf appends "'" when name ends in s or S and "'s" otherwise.
func PossessiveOf(name string) string {
	last, _ := utf8.DecodeLastRuneInString(name)
	if unicode.ToLower(last) == 's' {
		return name + "'"
	}
	return name + "'s"
}
