package fuzztests

import (
	"errors"
	"testing"

	"pronouner/internal/compiler"
	"pronouner/internal/diag"
	"pronouner/internal/grammar"
	"pronouner/internal/macro"
	"pronouner/internal/source"
)

func fuzzCompiler() *compiler.Compiler {
	cast := grammar.NewCast()
	cast.Insert("pidge", grammar.NewCharacter("Pidge", grammar.PresetPronouns(grammar.TheyThem)))
	cast.Insert("hunk", grammar.NewCharacter("Hunk", grammar.PresetPronouns(grammar.HeHim)))
	cast.Insert("alfons", grammar.NewCharacter("Alfons", grammar.PresetPronouns(grammar.NameAsPronoun)))

	be := func(s string) *string { return &s }
	dict := grammar.NewDictionary()
	dict.Insert("to be", grammar.Verb{
		DebugIdent: "to be",
		Singular3:  be("is"),
		Plural3:    be("are"),
	})
	return compiler.New(cast, dict)
}

// FuzzCompileMatchesCheck: Compile fails exactly when Check reports errors,
// and both agree on the output otherwise.
func FuzzCompileMatchesCheck(f *testing.F) {
	addCorpusSeeds(f)
	c := fuzzCompiler()
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.xyr", input))

		out, err := c.CompileFile(file)
		if err != nil {
			var ce *compiler.Error
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not *compiler.Error: %v", err, err)
			}
		}

		bag := diag.NewBag(0)
		checked, n := c.Check(file, diag.BagReporter{Bag: bag})
		if (err != nil) != (n > 0) {
			t.Fatalf("Compile err = %v but Check reported %d errors", err, n)
		}
		if err == nil && checked != out {
			t.Fatalf("Check output %q differs from Compile output %q", checked, out)
		}
	})
}

func FuzzMacroDecode(f *testing.F) {
	f.Add(`{"character_id":"pidge","kind":"Name"}`)
	f.Add(`{"character_id":null,"kind":"Name"}`)
	f.Add(`{"_type":"VerbConjugate","character_id":"x","data":"to be","mods":["LowerCase"]}`)
	f.Add(`{"character_id":"x","kind":"Name","mods":null,"extra":[1,2,{}]}`)
	f.Add(`{`)
	f.Fuzz(func(t *testing.T, text string) {
		d, err := macro.Decode(text)
		if err != nil {
			if !errors.Is(err, macro.ErrMalformedMacroLiteral) {
				t.Fatalf("error %v does not match ErrMalformedMacroLiteral", err)
			}
			return
		}
		// декодированное значение должно переживать повторный круг
		again, err := macro.Decode(d.String())
		if err != nil {
			t.Fatalf("re-decode of %s: %v", d.String(), err)
		}
		if again.String() != d.String() {
			t.Fatalf("round trip changed %s into %s", d.String(), again.String())
		}
	})
}
