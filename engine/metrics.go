package engine

import (
	"time"

	"quoridor/game"
)

// DecisionMetric describes how an agent reached one action.
type DecisionMetric struct {
	Duration     time.Duration
	LegalActions int
	Evaluation   float64 // Score of the position faced by the mover
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Action game.Action
	DecisionMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	WallsPlaced    int
}

type Collector interface {
	Start(state *game.State, legal int)
	Complete() DecisionMetric
}

type collector struct {
	evaluate   game.Evaluate
	startTime  time.Time
	legal      int
	evaluation float64
}

func NewCollector(evaluate game.Evaluate) Collector {
	if evaluate == nil {
		evaluate = game.EvaluatePaths
	}
	return &collector{evaluate: evaluate}
}

func (m *collector) Start(state *game.State, legal int) {
	m.startTime = time.Now()
	m.legal = legal
	m.evaluation = m.evaluate(state)
}

func (m *collector) Complete() DecisionMetric {
	return DecisionMetric{
		Duration:     time.Since(m.startTime),
		LegalActions: m.legal,
		Evaluation:   m.evaluation,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(state *game.State, legal int) {}
func (m *dummyCollector) Complete() DecisionMetric           { return DecisionMetric{} }
