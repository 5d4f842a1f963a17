package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/jumpviz/internal/config"
	"github.com/san-kum/jumpviz/internal/export"
	"github.com/san-kum/jumpviz/internal/motion"
	"github.com/san-kum/jumpviz/internal/render"
	"github.com/san-kum/jumpviz/internal/storage"
)

var (
	ErrUnknownAction = errors.New("automation: unknown action")
	ErrUnknownPreset = errors.New("automation: unknown preset")
	ErrNoSteps       = errors.New("automation: scenario has no steps")
)

const (
	ActionFrame   = "frame"
	ActionFrames  = "frames"
	ActionCompare = "compare"
	ActionCSV     = "csv"
	ActionJSON    = "json"
	ActionReport  = "report"
)

const defaultCompareCount = 5

// Scenario is a scripted batch of renders and exports.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Preset      string `yaml:"preset"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single output of a scenario. Condition is ignored by compare and
// report, which always use both conditions of Jump.
type Step struct {
	Action    string `yaml:"action"`
	Condition string `yaml:"condition"`
	Jump      string `yaml:"jump"`
	Frame     int    `yaml:"frame"`
	Every     int    `yaml:"every"`
	Count     int    `yaml:"count"`
	Out       string `yaml:"out"`
}

// Result describes what a step produced.
type Result struct {
	Step   int
	Action string
	Out    string
	Files  int
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, ErrNoSteps
	}

	return &scenario, nil
}

// Runner executes scenarios against one data directory.
type Runner struct {
	store  *storage.Store
	render config.RenderConfig
	log    zerolog.Logger
	cache  map[motion.Key]*motion.Series
}

func NewRunner(store *storage.Store, cfg config.RenderConfig) *Runner {
	return &Runner{store: store, render: cfg, log: zerolog.Nop()}
}

func (r *Runner) WithLogger(l zerolog.Logger) *Runner {
	r.log = l.With().Str("component", "automation").Logger()
	return r
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the results of the steps that completed.
func (r *Runner) RunScenario(ctx context.Context, scenario *Scenario) ([]Result, error) {
	cfg := r.render
	if scenario.Preset != "" {
		p := config.GetPreset(scenario.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, scenario.Preset)
		}
		cfg = *p
	}
	renderer := render.New(cfg).WithLogger(r.log)
	r.cache = make(map[motion.Key]*motion.Series)

	results := make([]Result, 0, len(scenario.Steps))
	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r.log.Info().Int("step", i+1).Int("of", len(scenario.Steps)).Str("action", step.Action).Msg("running step")

		res, err := r.runStep(renderer, step)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		res.Step = i + 1
		res.Action = step.Action
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runStep(renderer *render.Renderer, step Step) (Result, error) {
	switch step.Action {
	case ActionFrame:
		s, err := r.series(step.Condition, step.Jump)
		if err != nil {
			return Result{}, err
		}
		if err := renderer.SaveFrame(s, step.Frame, step.Out); err != nil {
			return Result{}, err
		}
		return Result{Out: step.Out, Files: 1}, nil

	case ActionFrames:
		s, err := r.series(step.Condition, step.Jump)
		if err != nil {
			return Result{}, err
		}
		n, err := renderer.SaveFrames(s, step.Out, step.Every)
		if err != nil {
			return Result{}, err
		}
		return Result{Out: step.Out, Files: n}, nil

	case ActionCompare:
		pair, err := r.pair(step.Jump)
		if err != nil {
			return Result{}, err
		}
		count := step.Count
		if count <= 0 {
			count = defaultCompareCount
		}
		if err := renderer.SaveComparison(pair, count, step.Out); err != nil {
			return Result{}, err
		}
		return Result{Out: step.Out, Files: 1}, nil

	case ActionCSV, ActionJSON:
		s, err := r.series(step.Condition, step.Jump)
		if err != nil {
			return Result{}, err
		}
		write := export.CSV
		if step.Action == ActionJSON {
			write = export.JSON
		}
		if err := writeFile(step.Out, func(w io.Writer) error { return write(w, s) }); err != nil {
			return Result{}, err
		}
		return Result{Out: step.Out, Files: 1}, nil

	case ActionReport:
		pair, err := r.pair(step.Jump)
		if err != nil {
			return Result{}, err
		}
		opt := export.ReportOptions{Title: fmt.Sprintf("%s jump: good vs bad", step.Jump)}
		if err := writeFile(step.Out, func(w io.Writer) error { return export.Report(w, opt, pair...) }); err != nil {
			return Result{}, err
		}
		return Result{Out: step.Out, Files: 1}, nil
	}

	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
}

// series loads (condition, jump) once per scenario run.
func (r *Runner) series(condition, jump string) (*motion.Series, error) {
	c, err := motion.ParseCondition(condition)
	if err != nil {
		return nil, err
	}
	j, err := motion.ParseJumpType(jump)
	if err != nil {
		return nil, err
	}
	key := motion.Key{Condition: c, JumpType: j}
	if s, ok := r.cache[key]; ok {
		return s, nil
	}
	s, err := r.store.Load(c, j)
	if err != nil {
		return nil, err
	}
	r.cache[key] = s
	return s, nil
}

// pair returns the good and bad recordings of jump, good first.
func (r *Runner) pair(jump string) ([]*motion.Series, error) {
	out := make([]*motion.Series, 0, 2)
	for _, c := range motion.Conditions() {
		s, err := r.series(string(c), jump)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return err
	}
	return f.Close()
}
