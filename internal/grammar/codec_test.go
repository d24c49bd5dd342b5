package grammar_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"pronouner/internal/grammar"
)

func TestCastMarshalJSON(t *testing.T) {
	cast := testCast()
	cast.Remove("rover")
	data, err := json.Marshal(cast)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"map":{` +
		`"alfons":{"name":"Alfons","pronouns":"Name","title":{"Custom":"King"},"person_descriptor":"Man"},` +
		`"hunk":{"name":"Hunk","pronouns":"HeHim","title":"Mr","person_descriptor":"Man"},` +
		`"pidge":{"name":"Pidge","pronouns":"TheyThem","title":"NoTitle","person_descriptor":"Person"},` +
		`"tupo":{"name":"Tupo","pronouns":"XeXyr","title":"NoTitle","person_descriptor":"Laru"}}}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestCastUnmarshalJSON(t *testing.T) {
	src := `{"map":{
		"pidge":{"name":"Pidge","pronouns":"TheyThem","title":null,"person_descriptor":null},
		"rover":{"name":"Rover","pronouns":{"Custom":{"subjective":"ze","objective":"zir","possessive":"zirs","reflexive":"zirself","conjugate_case":"ThirdSingular"}},"title":{"Custom":"Sir"}}
	}}`
	cast := grammar.NewCast()
	if err := json.Unmarshal([]byte(src), cast); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cast.Len() != 2 {
		t.Fatalf("Len() = %d", cast.Len())
	}
	pidge, _ := cast.Get("pidge")
	if pidge.Title != nil || pidge.PersonDescriptor != nil {
		t.Errorf("pidge optional fields should be nil: %+v", pidge)
	}
	rover, _ := cast.Get("rover")
	if rover.Pronouns.Preset != grammar.CustomSet {
		t.Fatalf("rover preset = %v", rover.Pronouns.Preset)
	}
	if got := rover.Pronoun(grammar.PossessiveDeterminer); got != "zirs" {
		t.Errorf("determiner falls back to possessive, got %q", got)
	}
	if rover.Person() != grammar.ThirdSingular {
		t.Errorf("person = %v", rover.Person())
	}
	if rover.TitlePlusName() != "Sir Rover" {
		t.Errorf("title = %q", rover.TitlePlusName())
	}
}

func TestPronounsJSONErrors(t *testing.T) {
	tests := []string{
		`"ZeZir"`,
		`"Custom"`,
		`42`,
		`{"Custom":{"subjective":"a"}}`,
		`{"Custom":{"subjective":"a","objective":"b","possessive":"c","reflexive":"d","person":"Fourth"}}`,
		`{"Other":{}}`,
	}
	for _, src := range tests {
		var p grammar.Pronouns
		if err := json.Unmarshal([]byte(src), &p); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", src)
		}
	}
}

func TestCustomPronounsRoundTrip(t *testing.T) {
	orig := testCast()
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back := grammar.NewCast()
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want, _ := orig.Get("rover")
	got, _ := back.Get("rover")
	if *got.Pronouns.Custom != *want.Pronouns.Custom {
		t.Errorf("custom pronouns: got %+v, want %+v", *got.Pronouns.Custom, *want.Pronouns.Custom)
	}
}

func TestCastTOML(t *testing.T) {
	src := `
[map.hunk]
name = "Hunk"
pronouns = "HeHim"
title = "Mr"

[map.rover]
name = "Rover"
title = { Custom = "Sir" }
person_descriptor = "dog"

[map.rover.pronouns.Custom]
subjective = "ze"
objective = "zir"
possessive_determiner = "zir"
possessive = "zirs"
reflexive = "zirself"
person = "ThirdSingular"
`
	var doc struct {
		Map map[string]grammar.Character `toml:"map"`
	}
	if _, err := toml.Decode(src, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	cast := grammar.NewCastFrom(doc.Map)
	hunk, ok := cast.Get("hunk")
	if !ok || hunk.TitlePlusName() != "Mr. Hunk" || hunk.Pronoun(grammar.Objective) != "him" {
		t.Errorf("hunk = %+v", hunk)
	}
	rover, ok := cast.Get("rover")
	if !ok {
		t.Fatal("rover missing")
	}
	if rover.Pronoun(grammar.PossessiveDeterminer) != "zir" || rover.Descriptor() != "dog" {
		t.Errorf("rover = %+v", rover)
	}
	if rover.TitlePlusName() != "Sir Rover" {
		t.Errorf("rover title = %q", rover.TitlePlusName())
	}
}

func TestVerbString(t *testing.T) {
	v := grammar.Verb{
		DebugIdent: "to be",
		Singular1:  strPtr("am"),
		Singular2:  strPtr("are"),
		Singular3:  strPtr("is"),
		Plural2:    strPtr("are"),
		Plural3:    strPtr("are"),
	}
	got := v.String()
	for _, line := range []string{`"to be" -- to N/A:`, "  I am.", "  He/she/it is.", "  We N/A.", "  They are."} {
		if !strings.Contains(got, line) {
			t.Errorf("String() missing %q:\n%s", line, got)
		}
	}
	if v.FormCount() != 5 {
		t.Errorf("FormCount() = %d", v.FormCount())
	}
}

func TestDictionaryJSON(t *testing.T) {
	src := `{"map":{"to be":{"debug_ident":"to be","infinitive":"be","singular1":"am","singular2":"are","singular3":"is","plural1":"are","plural2":"are","plural3":"are"}}}`
	dict := grammar.NewDictionary()
	if err := json.Unmarshal([]byte(src), dict); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, err := dict.Conjugate("to be", grammar.FirstSingular)
	if err != nil || got != "am" {
		t.Errorf("Conjugate = %q, %v", got, err)
	}
	if keys := dict.Keys(); len(keys) != 1 || keys[0] != "to be" {
		t.Errorf("Keys() = %v", keys)
	}
}
