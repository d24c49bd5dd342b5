package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"pronouner/internal/compiler"
	"pronouner/internal/diag"
	"pronouner/internal/observ"
	"pronouner/internal/project"
	"pronouner/internal/source"
	"pronouner/internal/textmod"
	"pronouner/internal/trace"
)

// BuildRequest describes a project build.
type BuildRequest struct {
	DialogsDir string
	OutDir     string
	Assets     AssetPaths
	Normalize  textmod.Normalization
	Jobs       int        // <= 0 means GOMAXPROCS
	Cache      *DiskCache // nil disables caching
	Sink       ProgressSink
}

// BuildFileResult is the outcome for one dialog file.
type BuildFileResult struct {
	Path   string
	Rel    string // relative to DialogsDir, slash separated
	Out    string
	FileID source.FileID
	Status Status
	Err    error
}

// BuildResult collects per-file outcomes in sorted path order.
type BuildResult struct {
	FileSet *source.FileSet
	Files   []BuildFileResult
	Bag     *diag.Bag
	Timing  observ.Report
}

// Counts returns how many files ended in each status.
func (r *BuildResult) Counts() map[Status]int {
	out := make(map[Status]int, 4)
	for i := range r.Files {
		out[r.Files[i].Status]++
	}
	return out
}

// FileError is the first file that failed a build.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }

func (e *FileError) Unwrap() error { return e.Err }

// Build compiles every dialog under DialogsDir into OutDir/<rel>.txt.
// Files run in parallel up to Jobs. The first failure cancels files that
// have not started yet; they end as StatusSkipped. The returned error is
// the first failure, as a *FileError or *AssetError.
func Build(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "build")
	defer span.End("")

	sink := sinkOrNop(req.Sink)
	timer := observ.NewTimer()
	res := &BuildResult{FileSet: source.NewFileSetWithBase(req.DialogsDir), Bag: diag.NewBag(0)}
	defer func() { res.Timing = timer.Report() }()

	sink.OnEvent(Event{Stage: StageLoad, Status: StatusWorking})
	idx := timer.Begin("load")
	loaded, err := LoadAssets(ctx, req.Assets)
	if err != nil {
		timer.End(idx, "")
		sink.OnEvent(Event{Stage: StageLoad, Status: StatusError, Err: err})
		return res, err
	}
	paths, err := listDialogFiles(req.DialogsDir)
	if err != nil {
		timer.End(idx, "")
		sink.OnEvent(Event{Stage: StageLoad, Status: StatusError, Err: err})
		return res, fmt.Errorf("%s: %w", diag.IOLoadFileError.ID(), err)
	}
	res.Files = make([]BuildFileResult, len(paths))
	for i, path := range paths {
		f := &res.Files[i]
		f.Path = path
		if f.Rel, f.Out, err = outputPath(req.DialogsDir, req.OutDir, path); err != nil {
			timer.End(idx, "")
			return res, err
		}
		if f.FileID, err = res.FileSet.Load(path); err != nil {
			f.Status, f.Err = StatusError, err
			timer.End(idx, "")
			sink.OnEvent(Event{File: f.Rel, Stage: StageLoad, Status: StatusError, Err: err})
			return res, &FileError{Path: f.Rel, Err: fmt.Errorf("%s: %w", diag.IOLoadFileError.ID(), err)}
		}
		f.Status = StatusQueued
		sink.OnEvent(Event{File: f.Rel, Stage: StageLoad, Status: StatusQueued})
	}
	timer.End(idx, fmt.Sprintf("%d files", len(paths)))
	sink.OnEvent(Event{Stage: StageLoad, Status: StatusDone})
	if len(paths) == 0 {
		return res, nil
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	b := &builder{
		req:      req,
		sink:     sink,
		fileSet:  res.FileSet,
		compiler: compiler.New(loaded.Cast, loaded.Dictionary, compiler.WithNormalization(req.Normalize)),
		optsKey:  project.StringDigest("normalize=" + req.Normalize.String()),
		assets:   loaded,
		bags:     make([]*diag.Bag, len(paths)),
	}

	idx = timer.Begin("compile")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i := range res.Files {
		g.Go(func() error { return b.run(gctx, i, &res.Files[i]) })
	}
	err = g.Wait()
	timer.End(idx, fmt.Sprintf("%d jobs", min(jobs, len(paths))))

	for _, bag := range b.bags {
		res.Bag.Merge(bag)
	}
	res.Bag.Sort()
	if err != nil {
		sink.OnEvent(Event{Stage: StageCompile, Status: StatusError, Err: err})
		return res, err
	}
	sink.OnEvent(Event{Stage: StageWrite, Status: StatusDone})
	return res, nil
}

type builder struct {
	req      BuildRequest
	sink     ProgressSink
	fileSet  *source.FileSet
	compiler *compiler.Compiler
	optsKey  project.Digest
	assets   *Assets
	bags     []*diag.Bag // index = file, written by one goroutine each
}

func (b *builder) run(ctx context.Context, i int, f *BuildFileResult) error {
	if ctx.Err() != nil {
		f.Status = StatusSkipped
		b.sink.OnEvent(Event{File: f.Rel, Stage: StageCompile, Status: StatusSkipped})
		return nil
	}
	span, ctx := trace.BeginCtx(ctx, trace.ScopeFile, f.Rel)
	started := time.Now()
	status, err := b.buildFile(ctx, i, f)
	f.Status, f.Err = status, err
	span.End(string(status))

	evt := Event{File: f.Rel, Stage: StageWrite, Status: status, Err: err, Elapsed: time.Since(started)}
	if status == StatusError {
		evt.Stage = StageCompile
		var ferr *FileError
		if errors.As(err, &ferr) && errors.Is(ferr.Err, errWrite) {
			evt.Stage = StageWrite
		}
	}
	b.sink.OnEvent(evt)
	return err
}

var errWrite = errors.New(diag.IOWriteFileError.ID())

func (b *builder) buildFile(ctx context.Context, i int, f *BuildFileResult) (Status, error) {
	file := b.fileSet.Get(f.FileID)
	key := project.Combine(project.Digest(file.Hash), b.assets.CastDigest, b.assets.DictionaryDigest, b.optsKey)

	if entry, ok, err := b.req.Cache.Get(key); err != nil {
		// битый кэш не мешает сборке
		trace.Error(ctx, trace.ScopeFile, "cache get", err)
	} else if ok {
		if err := writeOutput(f.Out, entry.Output); err != nil {
			return StatusError, &FileError{Path: f.Rel, Err: fmt.Errorf("%w: %w", errWrite, err)}
		}
		return StatusCached, nil
	}

	b.sink.OnEvent(Event{File: f.Rel, Stage: StageCompile, Status: StatusWorking})
	out, err := b.compiler.CompileFile(file)
	if err != nil {
		bag := diag.NewBag(0)
		addCompileError(bag, err)
		b.bags[i] = bag
		trace.Error(ctx, trace.ScopeFile, "compile", err)
		return StatusError, &FileError{Path: f.Rel, Err: err}
	}

	b.sink.OnEvent(Event{File: f.Rel, Stage: StageWrite, Status: StatusWorking})
	if err := writeOutput(f.Out, out); err != nil {
		return StatusError, &FileError{Path: f.Rel, Err: fmt.Errorf("%w: %w", errWrite, err)}
	}
	if err := b.req.Cache.Put(key, &CacheEntry{SourcePath: f.Rel, SourceHash: project.Digest(file.Hash), Output: out, Stored: time.Now()}); err != nil {
		trace.Error(ctx, trace.ScopeFile, "cache put", err)
	}
	return StatusDone, nil
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	// #nosec G306 -- compiled dialogs are meant to be read by other tools
	return os.WriteFile(path, []byte(content), 0o644)
}
