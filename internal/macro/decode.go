package macro

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type rawMacro struct {
	CharacterID json.RawMessage `json:"character_id"`
	Kind        json.RawMessage `json:"kind"`
	LegacyKind  json.RawMessage `json:"_type"`
	Data        json.RawMessage `json:"data"`
	Mods        json.RawMessage `json:"mods"`
}

var jsonNull = []byte("null")

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, jsonNull)
}

// Decode parses one delimited span.
func Decode(text string) (Descriptor, error) {
	var raw rawMacro
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Descriptor{}, &DecodeError{Reason: ReasonSyntax, Err: err}
	}

	var d Descriptor

	if absent(raw.CharacterID) {
		return Descriptor{}, &DecodeError{Reason: ReasonNullCharacter, Detail: "character_id is null or missing"}
	}
	if err := json.Unmarshal(raw.CharacterID, &d.CharacterID); err != nil {
		return Descriptor{}, &DecodeError{Reason: ReasonBadField, Detail: "character_id must be a string", Err: err}
	}

	kindRaw := raw.Kind
	if absent(kindRaw) {
		kindRaw = raw.LegacyKind
	}
	if absent(kindRaw) {
		return Descriptor{}, &DecodeError{Reason: ReasonBadField, Detail: "kind is null or missing"}
	}
	var kindTag string
	if err := json.Unmarshal(kindRaw, &kindTag); err != nil {
		return Descriptor{}, &DecodeError{Reason: ReasonBadField, Detail: "kind must be a string", Err: err}
	}
	kind, ok := ParseKind(kindTag)
	if !ok {
		return Descriptor{}, &DecodeError{Reason: ReasonUnknownKind, Detail: fmt.Sprintf("unknown kind %q", kindTag)}
	}
	d.Kind = kind

	if !absent(raw.Data) {
		var data string
		if err := json.Unmarshal(raw.Data, &data); err != nil {
			return Descriptor{}, &DecodeError{Reason: ReasonBadField, Detail: "data must be a string or null", Err: err}
		}
		d.Data = &data
	}

	if !absent(raw.Mods) {
		var tags []string
		if err := json.Unmarshal(raw.Mods, &tags); err != nil {
			return Descriptor{}, &DecodeError{Reason: ReasonBadField, Detail: "mods must be an array of strings", Err: err}
		}
		d.Mods = make([]Mod, 0, len(tags))
		for _, tag := range tags {
			mod, ok := ParseMod(tag)
			if !ok {
				return Descriptor{}, &DecodeError{Reason: ReasonUnknownMod, Detail: fmt.Sprintf("unknown modifier %q", tag)}
			}
			d.Mods = append(d.Mods, mod)
		}
	}

	return d, nil
}
