package driver

import (
	"context"
	"errors"
	"fmt"

	"pronouner/internal/compiler"
	"pronouner/internal/diag"
	"pronouner/internal/grammar"
	"pronouner/internal/observ"
	"pronouner/internal/source"
	"pronouner/internal/textmod"
	"pronouner/internal/trace"
)

// CompileRequest describes one dialog file to compile.
type CompileRequest struct {
	Path           string
	Assets         AssetPaths
	Player         *grammar.Character // added as "player" when set
	Normalize      textmod.Normalization
	MaxDiagnostics int
}

// CompileResult holds the output or the diagnostic that stopped compilation.
type CompileResult struct {
	Output  string
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	Timing  observ.Report
}

// Compile loads assets and compiles one file. Compile failures end up in
// Bag; the error return is for failures to load anything at all.
func Compile(ctx context.Context, req CompileRequest) (*CompileResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "compile")
	defer span.End("")

	timer := observ.NewTimer()
	fs := source.NewFileSet()
	res := &CompileResult{FileSet: fs, Bag: diag.NewBag(req.MaxDiagnostics)}

	var loaded *Assets
	if err := timer.Measure("load assets", func() error {
		var err error
		loaded, err = LoadAssets(ctx, req.Assets)
		return err
	}); err != nil {
		res.Timing = timer.Report()
		return res, err
	}
	if req.Player != nil {
		loaded = loaded.WithPlayer(*req.Player)
	}

	idx := timer.Begin("load source")
	fileID, err := fs.Load(req.Path)
	timer.End(idx, "")
	if err != nil {
		res.Timing = timer.Report()
		return res, fmt.Errorf("%s: %w", diag.IOLoadFileError.ID(), err)
	}
	res.File = fs.Get(fileID)

	c := compiler.New(loaded.Cast, loaded.Dictionary, compiler.WithNormalization(req.Normalize))
	idx = timer.Begin("compile")
	out, err := c.CompileFile(res.File)
	timer.End(idx, fmt.Sprintf("%d bytes", len(res.File.Content)))
	if err != nil {
		addCompileError(res.Bag, err)
		trace.Error(ctx, trace.ScopeDriver, "compile", err)
	} else {
		res.Output = out
	}
	res.Timing = timer.Report()
	return res, nil
}

// addCompileError records err as a diagnostic.
func addCompileError(bag *diag.Bag, err error) {
	var ce *compiler.Error
	if errors.As(err, &ce) {
		bag.Add(ce.Diagnostic())
		return
	}
	bag.Add(diag.NewError(diag.UnknownCode, source.Span{}, err.Error()))
}
