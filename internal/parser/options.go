package parser

import "go.uber.org/zap"

// Goal selects the context a script body is parsed in.
type Goal int

const (
	// GoalScript parses top-level script code.
	GoalScript Goal = iota
	// GoalGenerator parses the body of a generator function.
	GoalGenerator
	// GoalAsync parses the body of an async function.
	GoalAsync
	// GoalAsyncGenerator parses the body of an async generator function.
	GoalAsyncGenerator
)

var goalNames = map[string]Goal{
	"script":          GoalScript,
	"generator":       GoalGenerator,
	"async":           GoalAsync,
	"async-generator": GoalAsyncGenerator,
}

// ParseGoal maps a goal name as accepted on the command line to its Goal.
func ParseGoal(name string) (Goal, bool) {
	goal, ok := goalNames[name]
	return goal, ok
}

func (goal Goal) String() string {
	for name, g := range goalNames {
		if g == goal {
			return name
		}
	}
	return "unknown"
}

func (goal Goal) params() (AllowYield, AllowAwait, AllowReturn) {
	switch goal {
	case GoalGenerator:
		return true, false, true
	case GoalAsync:
		return false, true, true
	case GoalAsyncGenerator:
		return true, true, true
	}
	return false, false, false
}

type config struct {
	logger   *zap.Logger
	maxDepth int
	goal     Goal
}

// Option configures a Parser or a Cursor.
type Option func(*config)

// WithLogger traces productions at debug level to the given logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMaxDepth overrides DefaultMaxDepth. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(cfg *config) {
		if depth > 0 {
			cfg.maxDepth = depth
		}
	}
}

func WithGoal(goal Goal) Option {
	return func(cfg *config) {
		cfg.goal = goal
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: zap.NewNop(), maxDepth: DefaultMaxDepth, goal: GoalScript}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
