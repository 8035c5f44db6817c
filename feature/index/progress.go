package index

import "go.uber.org/zap"

// Asset kinds reported to a Progress.
const (
	KindItems      = "items"
	KindBlueprints = "blueprints"
)

// Progress receives indexing progress for one walk.
type Progress interface {
	// Found is called once with the number of candidate files.
	Found(kind string, total int)
	// Step is called after each candidate, parsed or skipped.
	Step(kind string)
	// Done is called with the number of rows produced.
	Done(kind string, rows int)
}

// NopProgress discards progress.
type NopProgress struct{}

func (NopProgress) Found(string, int) {}
func (NopProgress) Step(string)       {}
func (NopProgress) Done(string, int)  {}

// LogProgress reports progress through zap, every Every steps at debug level.
type LogProgress struct {
	Logger *zap.Logger
	Every  int

	steps map[string]int
}

// NewLogProgress creates a LogProgress logging every 500 files.
func NewLogProgress(logger *zap.Logger) *LogProgress {
	return &LogProgress{Logger: logger, Every: 500, steps: make(map[string]int)}
}

func (p *LogProgress) Found(kind string, total int) {
	p.init()
	p.steps[kind] = 0
	p.Logger.Info("Found asset files", zap.String("kind", kind), zap.Int("files", total))
}

func (p *LogProgress) Step(kind string) {
	p.init()
	p.steps[kind]++
	if p.Every > 0 && p.steps[kind]%p.Every == 0 {
		p.Logger.Debug("Indexing", zap.String("kind", kind), zap.Int("processed", p.steps[kind]))
	}
}

func (p *LogProgress) Done(kind string, rows int) {
	p.Logger.Info("Indexed assets", zap.String("kind", kind), zap.Int("rows", rows), zap.Int("processed", p.steps[kind]))
}

func (p *LogProgress) init() {
	if p.steps == nil {
		p.steps = make(map[string]int)
	}
}
