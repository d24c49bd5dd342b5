package token

// Kind represents the category of a dialog segment.
type Kind uint8

const (
	// Invalid indicates a segment the scanner could not classify.
	Invalid Kind = iota
	// EOF marks the end of the dialog source.
	EOF
	// Text is a literal run without delimiters.
	Text
	// EscapedOpen is "{{", standing for one literal '{'.
	EscapedOpen
	// EscapedClose is "}}", standing for one literal '}'.
	EscapedClose
	// Macro is a balanced "{...}" span.
	Macro
	// StrayClose is a single '}' in literal text.
	StrayClose
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Text:         "Text",
	EscapedOpen:  "EscapedOpen",
	EscapedClose: "EscapedClose",
	Macro:        "Macro",
	StrayClose:   "StrayClose",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
