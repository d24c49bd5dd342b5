package grammar

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Dictionary maps verb keys to verbs.
type Dictionary struct {
	verbs map[string]Verb
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{verbs: make(map[string]Verb)}
}

// NewDictionaryFrom copies verbs into a new dictionary.
func NewDictionaryFrom(verbs map[string]Verb) *Dictionary {
	d := NewDictionary()
	maps.Copy(d.verbs, verbs)
	return d
}

func (d *Dictionary) Get(key string) (Verb, bool) {
	if d == nil {
		return Verb{}, false
	}
	v, ok := d.verbs[key]
	return v, ok
}

// Insert stores v under key and returns the verb it replaced, if any.
func (d *Dictionary) Insert(key string, v Verb) (Verb, bool) {
	if d.verbs == nil {
		d.verbs = make(map[string]Verb)
	}
	prev, ok := d.verbs[key]
	d.verbs[key] = v
	return prev, ok
}

func (d *Dictionary) Remove(key string) (Verb, bool) {
	if d == nil {
		return Verb{}, false
	}
	prev, ok := d.verbs[key]
	delete(d.verbs, key)
	return prev, ok
}

func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.verbs)
}

// Keys returns the verb keys in sorted order.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.verbs))
}

// Conjugate returns the form of verb key for person p.
// Errors wrap ErrUnknownVerbKey or ErrUndefinedConjugationForm.
func (d *Dictionary) Conjugate(key string, p Person) (string, error) {
	v, ok := d.Get(key)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownVerbKey, key)
	}
	form, ok := v.Form(p)
	if !ok {
		return "", fmt.Errorf("%w: verb %q has no %s form", ErrUndefinedConjugationForm, key, p)
	}
	return form, nil
}

type dictionaryDocument struct {
	Map map[string]Verb `json:"map"`
}

func (d *Dictionary) MarshalJSON() ([]byte, error) {
	verbs := map[string]Verb{}
	if d != nil && d.verbs != nil {
		verbs = d.verbs
	}
	return json.Marshal(dictionaryDocument{Map: verbs})
}

func (d *Dictionary) UnmarshalJSON(data []byte) error {
	var doc dictionaryDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*d = *NewDictionaryFrom(doc.Map)
	return nil
}
