package grammar_test

import (
	"pronouner/internal/grammar"
)

func strPtr(s string) *string { return &s }

func titlePtr(t grammar.Title) *grammar.Title { return &t }

func testCast() *grammar.Cast {
	cast := grammar.NewCast()
	cast.Insert("pidge", grammar.Character{
		Name:             "Pidge",
		Pronouns:         grammar.PresetPronouns(grammar.TheyThem),
		Title:            titlePtr(grammar.Title{Kind: grammar.NoTitle}),
		PersonDescriptor: strPtr("Person"),
	})
	cast.Insert("alfons", grammar.Character{
		Name:             "Alfons",
		Pronouns:         grammar.PresetPronouns(grammar.NameAsPronoun),
		Title:            titlePtr(grammar.NewCustomTitle("King")),
		PersonDescriptor: strPtr("Man"),
	})
	cast.Insert("tupo", grammar.Character{
		Name:             "Tupo",
		Pronouns:         grammar.PresetPronouns(grammar.XeXyr),
		Title:            titlePtr(grammar.Title{Kind: grammar.NoTitle}),
		PersonDescriptor: strPtr("Laru"),
	})
	cast.Insert("hunk", grammar.Character{
		Name:             "Hunk",
		Pronouns:         grammar.PresetPronouns(grammar.HeHim),
		Title:            titlePtr(grammar.Title{Kind: grammar.Mr}),
		PersonDescriptor: strPtr("Man"),
	})
	cast.Insert("rover", grammar.NewCharacter("Rover", grammar.Custom(grammar.CustomPronouns{
		Subjective:           "ze",
		Objective:            "zir",
		PossessiveDeterminer: "zir",
		Possessive:           "zirs",
		Reflexive:            "zirself",
		Person:               grammar.ThirdSingular,
	})))
	return cast
}

func testDictionary() *grammar.Dictionary {
	dict := grammar.NewDictionary()
	dict.Insert("to be", grammar.Verb{
		DebugIdent: "to be",
		Infinitive: strPtr("be"),
		Singular1:  strPtr("am"),
		Singular2:  strPtr("are"),
		Singular3:  strPtr("is"),
		Plural1:    strPtr("are"),
		Plural2:    strPtr("are"),
		Plural3:    strPtr("are"),
	})
	dict.Insert("to have", grammar.Verb{
		DebugIdent: "to have",
		Infinitive: strPtr("have"),
		Singular1:  strPtr("have"),
		Singular2:  strPtr("have"),
		Singular3:  strPtr("has"),
	})
	return dict
}
