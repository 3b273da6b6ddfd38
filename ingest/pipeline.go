package ingest

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gogpu/fontpreview/identity"
	"github.com/gogpu/fontpreview/internal/logger"
	"github.com/gogpu/fontpreview/internal/parallel"
	"github.com/gogpu/fontpreview/parse"
	"github.com/gogpu/fontpreview/record"
	"github.com/gogpu/fontpreview/resource"
	"github.com/gogpu/fontpreview/style"
)

// DefaultSubfamily is used when a font has no subfamily name.
const DefaultSubfamily = "Regular"

// Ticket identifies one batch load. Tickets increase monotonically; only
// the most recent ticket may register its results.
type Ticket uint64

// Pipeline turns batches of font files into registered font records.
//
// Files of a batch are loaded concurrently, each independently: a file that
// fails to read or parse is recorded as a failure and never aborts the
// batch. Records keep the input order regardless of completion order, and
// the whole set is registered with the resource manager in one call.
//
// Pipeline is safe for concurrent use. When a newer batch starts before an
// older one finishes, the older batch's results are discarded.
type Pipeline struct {
	resources *resource.Manager
	cfg       config
	parser    parse.FontParser

	mu      sync.Mutex
	current Ticket
}

// New creates a Pipeline registering into resources.
func New(resources *resource.Manager, opts ...Option) *Pipeline {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	parser := cfg.parser
	if parser == nil {
		parser = parse.Get(cfg.parserName)
	}
	return &Pipeline{
		resources: resources,
		cfg:       cfg,
		parser:    parser,
	}
}

// Extensions returns the recognised file extensions.
func (p *Pipeline) Extensions() []string {
	out := make([]string, len(p.cfg.extensions))
	copy(out, p.cfg.extensions)
	return out
}

// Recognized reports whether name has a recognised font extension,
// ignoring case.
func (p *Pipeline) Recognized(name string) bool {
	ext := filepath.Ext(name)
	for _, want := range p.cfg.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Begin issues a new ticket, superseding every earlier one.
func (p *Pipeline) Begin() Ticket {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current++
	return p.current
}

// IsCurrent reports whether t is the most recently issued ticket.
func (p *Pipeline) IsCurrent(t Ticket) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return t == p.current
}

// Ingest loads files as a new batch. It is Run with a fresh ticket.
func (p *Pipeline) Ingest(ctx context.Context, files []File) (*Batch, error) {
	return p.Run(ctx, p.Begin(), files)
}

// Run loads files as the batch identified by t.
//
// It returns *NoValidFilesError without parsing anything when no file has a
// recognised extension, ErrSuperseded when a newer ticket was issued while
// the files loaded, and the context's error if ctx ended first. Otherwise
// it returns the batch; per-file failures are listed in Batch.Failures and
// summarised by Batch.Outcome.
//
// When the batch has records they are registered with the resource manager
// exactly once, before Run returns. A current batch without records clears
// the previously registered fonts instead.
func (p *Pipeline) Run(ctx context.Context, t Ticket, files []File) (*Batch, error) {
	start := time.Now()
	log := logger.Get().With(slog.Uint64("ticket", uint64(t)))

	valid := make([]File, 0, len(files))
	for _, f := range files {
		if p.Recognized(f.Name) {
			valid = append(valid, f)
		}
	}
	if len(valid) == 0 {
		log.Info("ingest: no recognised font files", slog.Int("inputs", len(files)))
		if err := p.commit(&Batch{Ticket: t}); err != nil {
			return nil, err
		}
		return nil, &NoValidFilesError{Total: len(files), Extensions: p.Extensions()}
	}

	epoch := p.nextEpoch()

	pool := parallel.NewWorkerPool(min(p.workers(), len(valid)))
	defer pool.Close()

	results, err := parallel.Collect(ctx, pool, len(valid), func(i int) loadResult {
		return p.load(ctx, valid[i], i, epoch)
	})

	batch := &Batch{
		Ticket:     t,
		Epoch:      epoch,
		Recognized: len(valid),
		Inputs:     len(files),
	}
	for i, res := range results {
		switch {
		case res.record != nil:
			batch.Records = append(batch.Records, res.record)
		default:
			batch.Failures = append(batch.Failures, valid[i].Name)
			if res.err != nil {
				log.Debug("ingest: file failed", slog.String("file", valid[i].Name), slog.Any("error", res.err))
			}
		}
	}

	if err != nil {
		batch.Release()
		// A cancelled load still replaces what was registered before it.
		_ = p.commit(&Batch{Ticket: t})
		return nil, err
	}

	if err := p.commit(batch); err != nil {
		batch.Release()
		if errors.Is(err, ErrSuperseded) {
			log.Info("ingest: discarded superseded batch", slog.Int("records", len(batch.Records)))
		}
		return nil, err
	}

	log.Info("ingest: batch loaded",
		slog.Int("records", len(batch.Records)),
		slog.Int("failures", len(batch.Failures)),
		slog.Duration("elapsed", time.Since(start)))
	return batch, nil
}

// commit registers the batch if its ticket is still current. The check and
// the registration happen under the same lock as Begin, so a batch that
// loses the race never touches the registration block.
func (p *Pipeline) commit(b *Batch) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if b.Ticket != p.current {
		return ErrSuperseded
	}
	if len(b.Records) == 0 {
		p.resources.Clear()
		return nil
	}
	regs := make([]resource.Registrant, len(b.Records))
	for i, r := range b.Records {
		regs[i] = r
	}
	return p.resources.RegisterBatch(regs)
}

func (p *Pipeline) workers() int {
	if p.cfg.workers > 0 {
		return p.cfg.workers
	}
	return parallel.DefaultWorkers()
}

func (p *Pipeline) nextEpoch() identity.Epoch {
	if p.cfg.assigner != nil {
		return p.cfg.assigner.NextEpoch()
	}
	return identity.NextEpoch()
}

type loadResult struct {
	record *record.FontRecord
	err    error
}

// load reads, parses and binds one file. index is the file's position among
// the batch's recognised files.
func (p *Pipeline) load(ctx context.Context, f File, index int, epoch identity.Epoch) loadResult {
	data, err := f.Read(ctx)
	if err != nil {
		return loadResult{err: err}
	}

	parsed, err := parse.ExtractWith(p.parser, p.cfg.parserName, data)
	if err != nil {
		return loadResult{err: err}
	}

	family, ok := parsed.FamilyName()
	if !ok {
		family = fallbackFamily(f.Name, index)
	}
	subfamily, ok := parsed.SubfamilyName()
	if !ok {
		subfamily = DefaultSubfamily
	}

	inferred := style.Infer(subfamily)
	id := identity.Assign(family, subfamily, index, epoch)

	return loadResult{record: record.New(record.Fields{
		ID:           id.ID,
		Family:       family,
		Subfamily:    subfamily,
		RenderFamily: id.RenderFamily,
		Weight:       inferred.Weight,
		Style:        inferred.Style,
		Handle:       p.resources.Bind(data),
		Metadata:     parsed,
		FileName:     f.Name,
		Index:        index,
	})}
}

// fallbackFamily derives a family name from the file name, or numbers the
// font when the name has nothing left after removing the extension.
func fallbackFamily(name string, index int) string {
	base := strings.TrimSpace(strings.TrimSuffix(name, filepath.Ext(name)))
	if base != "" {
		return base
	}
	return "Unnamed Font " + strconv.Itoa(index)
}
