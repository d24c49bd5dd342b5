package macro

import (
	"encoding/json"
	"fmt"
)

// Kind selects what a macro resolves to.
type Kind uint8

const (
	VerbConjugate Kind = iota
	Name
	TitlePlusName
	SubjectivePronoun
	ObjectivePronoun
	PossessiveDeterminer
	PossessivePronoun
	ReflexivePronoun
	PersonDescriptor
)

var kindTags = [...]string{
	VerbConjugate:        "VerbConjugate",
	Name:                 "Name",
	TitlePlusName:        "TitlePlusName",
	SubjectivePronoun:    "SubjectivePronoun",
	ObjectivePronoun:     "ObjectivePronoun",
	PossessiveDeterminer: "PossessiveDeterminer",
	PossessivePronoun:    "PossessivePronoun",
	ReflexivePronoun:     "ReflexivePronoun",
	PersonDescriptor:     "PersonDescriptor",
}

func (k Kind) String() string {
	if int(k) < len(kindTags) {
		return kindTags[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a wire tag to a Kind. Tags are case-sensitive.
func ParseKind(tag string) (Kind, bool) {
	for i, t := range kindTags {
		if t == tag {
			return Kind(i), true // #nosec G115 -- len(kindTags) < 256
		}
	}
	return 0, false
}

func (k Kind) MarshalJSON() ([]byte, error) {
	if int(k) >= len(kindTags) {
		return nil, fmt.Errorf("invalid macro kind %d", uint8(k))
	}
	return json.Marshal(kindTags[k])
}

// Mod is a case transformation applied after resolution.
type Mod uint8

const (
	Capitalized Mod = iota
	UpperCase
	LowerCase
)

var modTags = [...]string{
	Capitalized: "Capitalized",
	UpperCase:   "UpperCase",
	LowerCase:   "LowerCase",
}

func (m Mod) String() string {
	if int(m) < len(modTags) {
		return modTags[m]
	}
	return fmt.Sprintf("Mod(%d)", uint8(m))
}

// ParseMod maps a wire tag to a Mod.
func ParseMod(tag string) (Mod, bool) {
	for i, t := range modTags {
		if t == tag {
			return Mod(i), true // #nosec G115 -- len(modTags) < 256
		}
	}
	return 0, false
}

func (m Mod) MarshalJSON() ([]byte, error) {
	if int(m) >= len(modTags) {
		return nil, fmt.Errorf("invalid macro modifier %d", uint8(m))
	}
	return json.Marshal(modTags[m])
}
