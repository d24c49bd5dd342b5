package grammar

import (
	"fmt"
)

// Person is the grammatical person/number used to pick a verb form.
type Person uint8

const (
	FirstSingular Person = iota
	SecondSingular
	ThirdSingular
	FirstPlural
	SecondPlural
	ThirdPlural
)

var personTags = [...]string{
	FirstSingular:  "FirstSingular",
	SecondSingular: "SecondSingular",
	ThirdSingular:  "ThirdSingular",
	FirstPlural:    "FirstPlural",
	SecondPlural:   "SecondPlural",
	ThirdPlural:    "ThirdPlural",
}

func (p Person) String() string {
	if int(p) < len(personTags) {
		return personTags[p]
	}
	return fmt.Sprintf("Person(%d)", uint8(p))
}

// ParsePerson maps a wire tag to a Person.
func ParsePerson(tag string) (Person, bool) {
	for i, t := range personTags {
		if t == tag {
			return Person(i), true // #nosec G115 -- small table
		}
	}
	return 0, false
}

func (p Person) MarshalText() ([]byte, error) {
	if int(p) >= len(personTags) {
		return nil, fmt.Errorf("invalid person %d", uint8(p))
	}
	return []byte(personTags[p]), nil
}

func (p *Person) UnmarshalText(text []byte) error {
	v, ok := ParsePerson(string(text))
	if !ok {
		return fmt.Errorf("unknown person %q", string(text))
	}
	*p = v
	return nil
}
