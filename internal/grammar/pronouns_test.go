package grammar_test

import (
	"testing"

	"pronouner/internal/grammar"
)

func TestPresetTable(t *testing.T) {
	tests := []struct {
		preset grammar.Preset
		forms  [5]string
		person grammar.Person
	}{
		{grammar.HeHim, [5]string{"he", "him", "his", "his", "himself"}, grammar.ThirdSingular},
		{grammar.SheHer, [5]string{"she", "her", "her", "hers", "herself"}, grammar.ThirdSingular},
		{grammar.ItIts, [5]string{"it", "it", "its", "its", "itself"}, grammar.ThirdSingular},
		{grammar.TheyThem, [5]string{"they", "them", "their", "theirs", "themselves"}, grammar.ThirdPlural},
		{grammar.XeXyr, [5]string{"xe", "xem", "xyr", "xyrs", "xemself"}, grammar.ThirdSingular},
		{grammar.NameAsPronoun, [5]string{"Pidge", "Pidge", "Pidge's", "Pidge's", "Pidge's self"}, grammar.ThirdSingular},
	}

	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			p := grammar.PresetPronouns(tt.preset)
			for slot := grammar.Subjective; slot <= grammar.Reflexive; slot++ {
				if got := p.Form(slot, "Pidge"); got != tt.forms[slot] {
					t.Errorf("%s: got %q, want %q", slot, got, tt.forms[slot])
				}
			}
			if got := p.Person(); got != tt.person {
				t.Errorf("Person() = %v, want %v", got, tt.person)
			}
		})
	}
}

func TestZeroPronounsAreTheyThem(t *testing.T) {
	var p grammar.Pronouns
	if got := p.Form(grammar.Subjective, "x"); got != "they" {
		t.Errorf("zero pronouns subjective = %q", got)
	}
	if p.Person() != grammar.ThirdPlural {
		t.Errorf("zero pronouns person = %v", p.Person())
	}
}

func TestPossessiveOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alfons", "Alfons'"},
		{"JAMES", "JAMES'"},
		{"Pidge", "Pidge's"},
		{"Łukasz", "Łukasz's"},
		{"Thomaś", "Thomaś's"},
		{"", "'s"},
	}
	for _, tt := range tests {
		if got := grammar.PossessiveOf(tt.name); got != tt.want {
			t.Errorf("PossessiveOf(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNameReflexive(t *testing.T) {
	p := grammar.PresetPronouns(grammar.NameAsPronoun)
	if got := p.Form(grammar.Reflexive, "Alfons"); got != "Alfons' self" {
		t.Errorf("got %q", got)
	}
}

func TestCustomPronouns(t *testing.T) {
	p := grammar.Custom(grammar.CustomPronouns{
		Subjective:           "fae",
		Objective:            "faer",
		PossessiveDeterminer: "faer",
		Possessive:           "faers",
		Reflexive:            "faerself",
		Person:               grammar.ThirdPlural,
	})
	want := [5]string{"fae", "faer", "faer", "faers", "faerself"}
	for slot := grammar.Subjective; slot <= grammar.Reflexive; slot++ {
		if got := p.Form(slot, "ignored"); got != want[slot] {
			t.Errorf("%s = %q, want %q", slot, got, want[slot])
		}
	}
	if p.Person() != grammar.ThirdPlural {
		t.Errorf("Person() = %v", p.Person())
	}
}

func TestTitles(t *testing.T) {
	tests := []struct {
		title *grammar.Title
		want  string
	}{
		{nil, "Pidge"},
		{titlePtr(grammar.Title{}), "Mx. Pidge"},
		{titlePtr(grammar.Title{Kind: grammar.Mr}), "Mr. Pidge"},
		{titlePtr(grammar.Title{Kind: grammar.Ms}), "Ms. Pidge"},
		{titlePtr(grammar.Title{Kind: grammar.Mrs}), "Mrs. Pidge"},
		{titlePtr(grammar.Title{Kind: grammar.NoTitle}), "Pidge"},
		{titlePtr(grammar.NewCustomTitle("King")), "King Pidge"},
	}
	for _, tt := range tests {
		ch := grammar.Character{Name: "Pidge", Title: tt.title}
		if got := ch.TitlePlusName(); got != tt.want {
			t.Errorf("TitlePlusName(%v) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDescriptorDefault(t *testing.T) {
	if got := (grammar.Character{Name: "x"}).Descriptor(); got != "person" {
		t.Errorf("default descriptor = %q", got)
	}
	if got := (grammar.Character{PersonDescriptor: strPtr("Laru")}).Descriptor(); got != "Laru" {
		t.Errorf("descriptor = %q", got)
	}
}
