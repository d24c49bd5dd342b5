package grammar

import (
	"encoding/json"
	"maps"
	"slices"
)

// Cast maps character ids to characters.
type Cast struct {
	chars map[string]Character
}

// NewCast returns an empty cast.
func NewCast() *Cast {
	return &Cast{chars: make(map[string]Character)}
}

// NewCastFrom copies chars into a new cast.
func NewCastFrom(chars map[string]Character) *Cast {
	c := NewCast()
	maps.Copy(c.chars, chars)
	return c
}

// Get looks up id. A nil cast holds nobody.
func (c *Cast) Get(id string) (Character, bool) {
	if c == nil {
		return Character{}, false
	}
	ch, ok := c.chars[id]
	return ch, ok
}

// Insert stores ch under id and returns the character it replaced, if any.
func (c *Cast) Insert(id string, ch Character) (Character, bool) {
	if c.chars == nil {
		c.chars = make(map[string]Character)
	}
	prev, ok := c.chars[id]
	c.chars[id] = ch
	return prev, ok
}

// Remove deletes id and returns the removed character.
func (c *Cast) Remove(id string) (Character, bool) {
	if c == nil {
		return Character{}, false
	}
	prev, ok := c.chars[id]
	delete(c.chars, id)
	return prev, ok
}

func (c *Cast) Len() int {
	if c == nil {
		return 0
	}
	return len(c.chars)
}

// IDs returns the character ids in sorted order.
func (c *Cast) IDs() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.chars))
}

// Clone returns a shallow copy that can be extended without touching c.
func (c *Cast) Clone() *Cast {
	if c == nil {
		return NewCast()
	}
	return NewCastFrom(c.chars)
}

type castDocument struct {
	Map map[string]Character `json:"map"`
}

func (c *Cast) MarshalJSON() ([]byte, error) {
	chars := map[string]Character{}
	if c != nil && c.chars != nil {
		chars = c.chars
	}
	return json.Marshal(castDocument{Map: chars})
}

func (c *Cast) UnmarshalJSON(data []byte) error {
	var doc castDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*c = *NewCastFrom(doc.Map)
	return nil
}
