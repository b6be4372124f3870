package retro

import (
	"fmt"

	"github.com/turtacn/retrosynth/internal/config"
	"github.com/turtacn/retrosynth/internal/platform/logging"
	"github.com/turtacn/retrosynth/pkg/errors"
)

// Engine owns one search DAG and drives rollouts against it. It is not safe
// for concurrent use: BuildTree, GetBuyablePaths, and Clear must not be
// called from more than one goroutine at a time, matching the single-writer
// discipline of the underlying Graph.
type Engine struct {
	cfg        config.EngineConfig
	configured bool

	adapter    ChemistryAdapter
	logger     logging.Logger
	rewardFunc RewardFunc

	graph   *Graph
	root    string
	built   bool
	rollout int
}

// NewEngine constructs an Engine around adapter. Configure must be called
// before BuildTree.
func NewEngine(adapter ChemistryAdapter, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Engine{
		adapter: adapter,
		logger:  logger,
		graph:   NewGraph(),
	}
}

// SetRewardFunc installs an optional reward source consulted at the end of
// every rollout (see reward.go). Must be called before BuildTree to affect
// that run; safe to leave unset, in which case only visit counts update.
func (e *Engine) SetRewardFunc(fn RewardFunc) {
	e.rewardFunc = fn
}

// Configure validates cfg, fills any zero-valued field with the documented
// default (mirroring internal/config.ApplyDefaults), and stores it for the
// next BuildTree call.
func (e *Engine) Configure(cfg config.EngineConfig) error {
	applyEngineDefaults(&cfg)
	if err := validateEngineConfig(cfg); err != nil {
		return err
	}
	e.cfg = cfg
	e.configured = true
	return nil
}

func applyEngineDefaults(cfg *config.EngineConfig) {
	if cfg.TemplateMaxCount == 0 {
		cfg.TemplateMaxCount = config.DefaultTemplateMaxCount
	}
	if cfg.TemplateMaxCumProb == 0 {
		cfg.TemplateMaxCumProb = config.DefaultTemplateMaxCumProb
	}
	if cfg.FastFilterThreshold == 0 {
		cfg.FastFilterThreshold = config.DefaultFastFilterThreshold
	}
	if cfg.MaxBranching == 0 {
		cfg.MaxBranching = config.DefaultMaxBranching
	}
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = config.DefaultMaxDepth
	}
	if cfg.ExplorationWeight == 0 {
		cfg.ExplorationWeight = config.DefaultExplorationWeight
	}
	if cfg.MaxPPG == 0 {
		cfg.MaxPPG = config.DefaultMaxPPG
	}
	if cfg.ExpansionTime == 0 {
		cfg.ExpansionTime = config.DefaultExpansionTime
	}
	// MaxChemicals / MaxReactions: 0 is itself "no cap" and is never
	// overwritten, matching internal/config.ApplyDefaults.
}

func validateEngineConfig(cfg config.EngineConfig) error {
	if cfg.TemplateMaxCount < 1 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("template_max_count must be >= 1, got %d", cfg.TemplateMaxCount))
	}
	if cfg.TemplateMaxCumProb <= 0 || cfg.TemplateMaxCumProb > 1 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("template_max_cum_prob must be in (0, 1], got %f", cfg.TemplateMaxCumProb))
	}
	if cfg.FastFilterThreshold < 0 || cfg.FastFilterThreshold > 1 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("fast_filter_threshold must be in [0, 1], got %f", cfg.FastFilterThreshold))
	}
	if cfg.MaxBranching < 1 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("max_branching must be >= 1, got %d", cfg.MaxBranching))
	}
	if cfg.MaxDepth < 1 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("max_depth must be >= 1, got %d", cfg.MaxDepth))
	}
	if cfg.ExplorationWeight < 0 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("exploration_weight must be >= 0, got %f", cfg.ExplorationWeight))
	}
	if cfg.MaxPPG <= 0 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("max_ppg must be > 0, got %f", cfg.MaxPPG))
	}
	if cfg.ExpansionTime <= 0 {
		return errors.New(errors.CodeInvalidParam, fmt.Sprintf("expansion_time must be > 0, got %s", cfg.ExpansionTime))
	}
	return nil
}

// Graph exposes the underlying DAG store, mainly for callers that export it
// (internal/infrastructure/graphexport) or inspect it in tests.
func (e *Engine) Graph() *Graph {
	return e.graph
}

// Clear discards the current search DAG so the Engine can be reused for a
// different target.
func (e *Engine) Clear() {
	e.graph = NewGraph()
	e.root = ""
	e.built = false
	e.rollout = 0
}

// IsDone reports whether the search has reached a stopping condition: the
// root chemical is done, or a configured resource cap has been hit.
func (e *Engine) IsDone() bool {
	root, ok := e.graph.GetChemical(e.root)
	if !ok {
		return false
	}
	if root.Done {
		return true
	}
	if e.cfg.MaxChemicals > 0 && uint(e.graph.ChemicalCount()) >= e.cfg.MaxChemicals {
		return true
	}
	if e.cfg.MaxReactions > 0 && uint(e.graph.ReactionCount()) >= e.cfg.MaxReactions {
		return true
	}
	return false
}

// RolloutCount returns the number of select->expand->back-update cycles run
// by the most recent BuildTree call.
func (e *Engine) RolloutCount() int {
	return e.rollout
}

// PrintStats renders a human-readable one-line summary of the current DAG,
// in the spirit of the teacher's admin/debug endpoints.
func (e *Engine) PrintStats() string {
	nodes := e.graph.NodeCount()
	edges := e.graph.EdgeCount()
	chemicals := e.graph.ChemicalCount()
	reactions := e.graph.ReactionCount()
	avgDegree := 0.0
	if nodes > 0 {
		avgDegree = float64(edges) / float64(nodes)
	}
	rootDone := false
	if root, ok := e.graph.GetChemical(e.root); ok {
		rootDone = root.Done
	}
	return fmt.Sprintf(
		"rollouts=%d nodes=%d (chemicals=%d, reactions=%d) edges=%d avg_degree=%.2f root_done=%t",
		e.rollout, nodes, chemicals, reactions, edges, avgDegree, rootDone,
	)
}

//Personal.AI order the ending
