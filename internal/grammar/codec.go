package grammar

import (
	"encoding/json"
	"fmt"
)

// Pronouns and Title share one decoder for JSON and TOML: both arrive as
// either a bare tag string or a single-key {"Custom": ...} table.

func (p Pronouns) MarshalJSON() ([]byte, error) {
	if p.Preset == CustomSet {
		if p.Custom == nil {
			return nil, fmt.Errorf("custom pronouns without forms")
		}
		return json.Marshal(map[string]CustomPronouns{"Custom": *p.Custom})
	}
	if int(p.Preset) >= len(presetTags) {
		return nil, fmt.Errorf("invalid pronoun preset %d", uint8(p.Preset))
	}
	return json.Marshal(presetTags[p.Preset])
}

func (p *Pronouns) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return p.fromAny(v)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (p *Pronouns) UnmarshalTOML(v any) error {
	return p.fromAny(v)
}

func (p *Pronouns) fromAny(v any) error {
	switch v := v.(type) {
	case string:
		preset, ok := ParsePreset(v)
		if !ok || preset == CustomSet {
			return fmt.Errorf("unknown pronoun preset %q", v)
		}
		*p = Pronouns{Preset: preset}
		return nil
	case map[string]any:
		body, err := customBody(v)
		if err != nil {
			return fmt.Errorf("pronouns: %w", err)
		}
		fields, ok := body.(map[string]any)
		if !ok {
			return fmt.Errorf("pronouns: Custom must be a table, got %T", body)
		}
		c, err := customPronounsFromMap(fields)
		if err != nil {
			return fmt.Errorf("pronouns: %w", err)
		}
		*p = Custom(c)
		return nil
	default:
		return fmt.Errorf("pronouns must be a string or {\"Custom\": {...}}, got %T", v)
	}
}

func customBody(m map[string]any) (any, error) {
	body, ok := m["Custom"]
	if !ok || len(m) != 1 {
		return nil, fmt.Errorf("expected a single \"Custom\" key")
	}
	return body, nil
}

func customPronounsFromMap(m map[string]any) (CustomPronouns, error) {
	var c CustomPronouns
	var err error
	if c.Subjective, err = requiredString(m, "subjective"); err != nil {
		return c, err
	}
	if c.Objective, err = requiredString(m, "objective"); err != nil {
		return c, err
	}
	if c.Possessive, err = requiredString(m, "possessive"); err != nil {
		return c, err
	}
	// older casts had a single possessive form
	if _, ok := m["possessive_determiner"]; ok {
		if c.PossessiveDeterminer, err = requiredString(m, "possessive_determiner"); err != nil {
			return c, err
		}
	} else {
		c.PossessiveDeterminer = c.Possessive
	}
	if c.Reflexive, err = requiredString(m, "reflexive"); err != nil {
		return c, err
	}

	key := "person"
	if _, ok := m[key]; !ok {
		key = "conjugate_case"
	}
	tag, err := requiredString(m, key)
	if err != nil {
		return c, fmt.Errorf("%w (or \"conjugate_case\")", err)
	}
	person, ok := ParsePerson(tag)
	if !ok {
		return c, fmt.Errorf("unknown person %q", tag)
	}
	c.Person = person
	return c, nil
}

func requiredString(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %T", key, raw)
	}
	return s, nil
}

func (t Title) MarshalJSON() ([]byte, error) {
	if t.Kind == CustomTitle {
		return json.Marshal(map[string]string{"Custom": t.Text})
	}
	if int(t.Kind) >= len(titleTags) {
		return nil, fmt.Errorf("invalid title kind %d", uint8(t.Kind))
	}
	return json.Marshal(titleTags[t.Kind])
}

func (t *Title) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return t.fromAny(v)
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *Title) UnmarshalTOML(v any) error {
	return t.fromAny(v)
}

func (t *Title) fromAny(v any) error {
	switch v := v.(type) {
	case string:
		for i, tag := range titleTags {
			if tag == v && TitleKind(i) != CustomTitle { // #nosec G115 -- small table
				*t = Title{Kind: TitleKind(i)} // #nosec G115 -- small table
				return nil
			}
		}
		return fmt.Errorf("unknown title %q", v)
	case map[string]any:
		body, err := customBody(v)
		if err != nil {
			return fmt.Errorf("title: %w", err)
		}
		text, ok := body.(string)
		if !ok {
			return fmt.Errorf("title: Custom must be a string, got %T", body)
		}
		*t = NewCustomTitle(text)
		return nil
	default:
		return fmt.Errorf("title must be a string or {\"Custom\": \"...\"}, got %T", v)
	}
}
