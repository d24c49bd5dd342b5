package grammar

// Character is one member of a cast.
type Character struct {
	Name             string   `json:"name" toml:"name"`
	Pronouns         Pronouns `json:"pronouns" toml:"pronouns"`
	Title            *Title   `json:"title" toml:"title"`
	PersonDescriptor *string  `json:"person_descriptor" toml:"person_descriptor"`
}

// NewCharacter builds a character without title or descriptor.
func NewCharacter(name string, pronouns Pronouns) Character {
	return Character{Name: name, Pronouns: pronouns}
}

// Pronoun returns the text for slot.
func (c Character) Pronoun(slot Slot) string {
	return c.Pronouns.Form(slot, c.Name)
}

// TitlePlusName joins title and name, or returns the name alone when the
// title is absent or NoTitle.
func (c Character) TitlePlusName() string {
	if c.Title == nil || c.Title.Kind == NoTitle {
		return c.Name
	}
	return c.Title.String() + " " + c.Name
}

// Descriptor returns the person descriptor, defaulting to "person".
func (c Character) Descriptor() string {
	if c.PersonDescriptor == nil {
		return "person"
	}
	return *c.PersonDescriptor
}

// Person returns the person/number used for verb conjugation.
func (c Character) Person() Person {
	return c.Pronouns.Person()
}
