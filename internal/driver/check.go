package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pronouner/internal/compiler"
	"pronouner/internal/diag"
	"pronouner/internal/source"
	"pronouner/internal/textmod"
	"pronouner/internal/trace"
)

// CheckRequest describes a diagnostics run over several dialog files.
type CheckRequest struct {
	Paths          []string // files or directories
	Assets         AssetPaths
	Normalize      textmod.Normalization
	MaxDiagnostics int
	Jobs           int
}

// CheckFileResult содержит результат проверки одного файла
type CheckFileResult struct {
	Path   string
	FileID source.FileID
	Errors int
	Bag    *diag.Bag
	Err    error // файл не удалось прочитать
}

// Check reports every failure in every file instead of stopping at the first.
// Files are checked in parallel; results keep the sorted path order.
func Check(ctx context.Context, req CheckRequest) (*source.FileSet, []CheckFileResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "check")
	defer span.End("")

	files, err := ExpandPaths(req.Paths)
	if err != nil {
		return nil, nil, err
	}
	loaded, err := LoadAssets(ctx, req.Assets)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	results := make([]CheckFileResult, len(files))
	for i, path := range files {
		results[i].Path = path
		results[i].FileID, results[i].Err = fileSet.Load(path)
	}
	if len(files) == 0 {
		return fileSet, results, nil
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	c := compiler.New(loaded.Cast, loaded.Dictionary, compiler.WithNormalization(req.Normalize))

	// индексы уникальны для каждой горутины, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fspan, _ := trace.BeginCtx(gctx, trace.ScopeFile, results[i].Path)
			bag := diag.NewBag(req.MaxDiagnostics)
			_, n := c.Check(fileSet.Get(results[i].FileID), diag.BagReporter{Bag: bag})
			bag.Sort()
			results[i].Bag = bag
			results[i].Errors = n
			fspan.End("")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
