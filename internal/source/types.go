package source

type (
	// FileID uniquely identifies a dialog file within a FileSet.
	FileID uint32
	// FileFlags encodes how the file content was obtained and normalized.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (tests, stdin, inline strings).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds one dialog source together with its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based human position. Col counts bytes, not runes.
type LineCol struct {
	Line uint32
	Col  uint32
}
