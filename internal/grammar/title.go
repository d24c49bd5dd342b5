package grammar

import "fmt"

// TitleKind is the honorific selector. The zero value is Mx.
type TitleKind uint8

const (
	Mx TitleKind = iota
	Mr
	Ms
	Mrs
	NoTitle
	CustomTitle
)

var titleTags = [...]string{
	Mx:          "Mx",
	Mr:          "Mr",
	Ms:          "Ms",
	Mrs:         "Mrs",
	NoTitle:     "NoTitle",
	CustomTitle: "Custom",
}

func (k TitleKind) String() string {
	if int(k) < len(titleTags) {
		return titleTags[k]
	}
	return fmt.Sprintf("TitleKind(%d)", uint8(k))
}

// Title is an honorific; Text is used only by CustomTitle.
type Title struct {
	Kind TitleKind
	Text string
}

// NewCustomTitle returns a title rendered verbatim.
func NewCustomTitle(text string) Title {
	return Title{Kind: CustomTitle, Text: text}
}

// String renders the title as it appears before a name.
func (t Title) String() string {
	switch t.Kind {
	case Mr:
		return "Mr."
	case Ms:
		return "Ms."
	case Mrs:
		return "Mrs."
	case Mx:
		return "Mx."
	case NoTitle:
		return ""
	default:
		return t.Text
	}
}
