// Package macro decodes delimited macro spans into descriptors.
//
// A span is a JSON object:
//
//	{"character_id":"pidge","kind":"SubjectivePronoun","data":null,"mods":["Capitalized"]}
//
// The key "_type" is accepted in place of "kind" for dialog files written for
// the older asset format. Decoding never looks at the cast or dictionary.
package macro

import (
	"encoding/json"
)

// Descriptor is a decoded macro. It owns its strings.
type Descriptor struct {
	CharacterID string
	Kind        Kind
	Data        *string
	Mods        []Mod
}

// Arg returns the data argument and whether it was present.
func (d Descriptor) Arg() (string, bool) {
	if d.Data == nil {
		return "", false
	}
	return *d.Data, true
}

type wireDescriptor struct {
	CharacterID string  `json:"character_id"`
	Kind        Kind    `json:"kind"`
	Data        *string `json:"data"`
	Mods        []Mod   `json:"mods"`
}

// MarshalJSON renders the canonical span form; Decode(MarshalJSON(d)) == d.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	mods := d.Mods
	if mods == nil {
		mods = []Mod{}
	}
	return json.Marshal(wireDescriptor{
		CharacterID: d.CharacterID,
		Kind:        d.Kind,
		Data:        d.Data,
		Mods:        mods,
	})
}

// String returns the span text for d.
func (d Descriptor) String() string {
	data, err := d.MarshalJSON()
	if err != nil {
		return "<invalid macro: " + err.Error() + ">"
	}
	return string(data)
}
