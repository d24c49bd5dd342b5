package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Сканер
	ScnInfo                      Code = 1000
	ScnUnmatchedClosingDelimiter Code = 1001

	// Разбор макросов
	MacInfo             Code = 2000
	MacMalformedLiteral Code = 2001
	MacUnknownKind      Code = 2002
	MacUnknownMod       Code = 2003
	MacNullCharacter    Code = 2004
	MacBadField         Code = 2005
	MacUnterminated     Code = 2006

	// Грамматика
	GrmInfo                     Code = 3000
	GrmUnknownCharacter         Code = 3001
	GrmMissingVerbArgument      Code = 3002
	GrmUnknownVerbKey           Code = 3003
	GrmUndefinedConjugationForm Code = 3004

	// Ввод-вывод
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Проект и ассеты
	PrjManifestInvalid   Code = 5001
	PrjCastInvalid       Code = 5002
	PrjDictionaryInvalid Code = 5003
)

var codeDescription = map[Code]string{
	UnknownCode:                  "Unknown error",
	ScnInfo:                      "Scanner information",
	ScnUnmatchedClosingDelimiter: "Unmatched closing delimiter",
	MacInfo:                      "Macro information",
	MacMalformedLiteral:          "Malformed macro literal",
	MacUnknownKind:               "Unknown macro kind",
	MacUnknownMod:                "Unknown macro modifier",
	MacNullCharacter:             "Missing character id",
	MacBadField:                  "Invalid macro field",
	MacUnterminated:              "Unterminated macro",
	GrmInfo:                      "Grammar information",
	GrmUnknownCharacter:          "Unknown character",
	GrmMissingVerbArgument:       "Missing verb argument",
	GrmUnknownVerbKey:            "Unknown verb key",
	GrmUndefinedConjugationForm:  "Undefined conjugation form",
	IOLoadFileError:              "Failed to load file",
	IOWriteFileError:             "Failed to write file",
	PrjManifestInvalid:           "Invalid project manifest",
	PrjCastInvalid:               "Invalid cast document",
	PrjDictionaryInvalid:         "Invalid dictionary document",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("MAC%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("GRM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
