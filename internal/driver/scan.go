package driver

import (
	"pronouner/internal/diag"
	"pronouner/internal/scanner"
	"pronouner/internal/source"
	"pronouner/internal/token"
)

type ScanResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // EOF included
	Bag     *diag.Bag
}

// Scan splits a dialog file into segments without decoding macros.
func Scan(path string, maxDiagnostics int) (*ScanResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	toks := scanner.All(file, scanner.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &ScanResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}, nil
}
