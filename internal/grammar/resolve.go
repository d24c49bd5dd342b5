package grammar

import (
	"fmt"

	"pronouner/internal/macro"
)

// Resolver turns descriptors into text using a cast and a dictionary.
type Resolver struct {
	Cast       *Cast
	Dictionary *Dictionary
}

// Resolve returns the raw replacement text for d, before modifiers.
func (r Resolver) Resolve(d macro.Descriptor) (string, error) {
	ch, ok := r.Cast.Get(d.CharacterID)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownCharacter, d.CharacterID)
	}

	switch d.Kind {
	case macro.Name:
		return ch.Name, nil
	case macro.TitlePlusName:
		return ch.TitlePlusName(), nil
	case macro.SubjectivePronoun:
		return ch.Pronoun(Subjective), nil
	case macro.ObjectivePronoun:
		return ch.Pronoun(Objective), nil
	case macro.PossessiveDeterminer:
		return ch.Pronoun(PossessiveDeterminer), nil
	case macro.PossessivePronoun:
		return ch.Pronoun(Possessive), nil
	case macro.ReflexivePronoun:
		return ch.Pronoun(Reflexive), nil
	case macro.PersonDescriptor:
		return ch.Descriptor(), nil
	case macro.VerbConjugate:
		key, ok := d.Arg()
		if !ok {
			return "", fmt.Errorf("%w: VerbConjugate for %q needs \"data\"", ErrMissingVerbArgument, d.CharacterID)
		}
		return r.Dictionary.Conjugate(key, ch.Person())
	default:
		return "", fmt.Errorf("unhandled macro kind %v", d.Kind)
	}
}
