package engine

import (
	"fmt"
	"time"

	"quoridor/agent"
	"quoridor/game"
	"quoridor/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine owns the state of one game and drives two agents through it.
type Engine struct {
	ID     string
	State  *game.State
	Agents []agent.Agent

	strict    bool
	maxTurns  int
	observer  func(Update)
	collector Collector
	turn      int
}

// Update is sent to the observer after every applied action.
type Update struct {
	GameID string
	Turn   int
	Player game.Player
	Action game.Action
	State  game.State
	Status Status
}

// WithStrict toggles the legal-set check in Apply. Strict is the default.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithState resumes from a copy of state instead of the initial position.
func WithState(state *game.State) Option {
	return func(e *Engine) {
		if state != nil {
			e.State = state.Copy()
		}
	}
}

func WithObserver(observer func(Update)) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithMetrics records decision time, legal action count and a position
// score for every move. A nil evaluate uses game.EvaluatePaths.
func WithMetrics(evaluate game.Evaluate) Option {
	return func(e *Engine) {
		e.collector = NewCollector(evaluate)
	}
}

func WithID(id string) Option {
	return func(e *Engine) {
		if id != "" {
			e.ID = id
		}
	}
}

func LocalEngine(agents []agent.Agent, options ...Option) *Engine {
	if len(agents) != 2 {
		panic(fmt.Sprintf("need exactly two agents, got %d", len(agents)))
	}

	e := &Engine{ // Default values
		ID:        uuid.NewString(),
		State:     game.New(),
		Agents:    agents,
		strict:    true,
		maxTurns:  meta.MAX_TURNS,
		collector: NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Status() Status {
	return StatusOf(e.State)
}

// LegalActions returns the sorted legal actions of the current player.
func (e *Engine) LegalActions() []game.Action {
	return e.State.LegalActions()
}

// Apply plays action for the current player. On error the state and the
// turn are left untouched.
func (e *Engine) Apply(action game.Action) (Status, error) {
	if e.State.IsTerminal() {
		return e.Status(), ErrGameOver
	}
	player := e.State.CurrentPlayer
	if e.strict && !e.State.IsLegal(action) {
		log.Warn().Str("game", e.ID).Stringer("player", player).Int("action", int(action)).Msg("rejected illegal action")
		return InProgress, fmt.Errorf("%w: %s (%d) is not legal for %s", game.ErrInvalidAction, action, int(action), player)
	}

	next, err := e.State.Play(action)
	if err != nil {
		log.Warn().Str("game", e.ID).Stringer("player", player).Int("action", int(action)).Err(err).Msg("rejected action")
		return InProgress, err
	}
	e.State = next
	e.turn++

	status := e.Status()
	log.Debug().Str("game", e.ID).Int("turn", e.turn).Stringer("player", player).Stringer("action", action).Msg("applied action")
	if e.observer != nil {
		e.observer(Update{
			GameID: e.ID,
			Turn:   e.turn,
			Player: player,
			Action: action,
			State:  *next,
			Status: status,
		})
	}
	return status, nil
}

// Step asks the current agent for an action and applies it.
func (e *Engine) Step() (Status, MoveMetric, error) {
	if e.State.IsTerminal() {
		return e.Status(), MoveMetric{}, ErrGameOver
	}
	player := e.State.CurrentPlayer
	legal := e.LegalActions()

	e.collector.Start(e.State, len(legal))
	action, err := e.Agents[player-1].ChooseAction(legal, *e.State)
	if err != nil {
		return InProgress, MoveMetric{}, fmt.Errorf("%s failed to choose an action: %w", player, err)
	}
	decision := e.collector.Complete()

	status, err := e.Apply(action)
	if err != nil {
		return status, MoveMetric{}, fmt.Errorf("%s chose a rejected action: %w", player, err)
	}
	return status, MoveMetric{
		Step:           e.turn,
		Player:         player,
		Action:         action,
		DecisionMetric: decision,
	}, nil
}

// Run executes the entire game loop until a winner is found or the turn
// limit is reached.
func (e *Engine) Run() (GameMetric, []MoveMetric, error) {
	gameMetric := GameMetric{
		ID:             e.ID,
		StartingPlayer: e.State.CurrentPlayer,
		StartTime:      time.Now(),
	}
	var moveMetrics []MoveMetric

	log.Info().Msgf("game %s: %s is starting", e.ID, e.State.CurrentPlayer)

	status := e.Status()
	for status == InProgress && e.turn < e.maxTurns {
		var metric MoveMetric
		var err error
		status, metric, err = e.Step()
		if err != nil {
			return e.complete(gameMetric, moveMetrics), moveMetrics, err
		}
		moveMetrics = append(moveMetrics, metric)
	}

	if status == InProgress {
		log.Info().Msgf("game %s: stopped after %d turns without a winner", e.ID, e.turn)
	} else {
		log.Info().Msgf("game %s: %s wins after %d turns", e.ID, e.State.Winner(), e.turn)
	}
	return e.complete(gameMetric, moveMetrics), moveMetrics, nil
}

func (e *Engine) complete(gameMetric GameMetric, moveMetrics []MoveMetric) GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = e.State.Winner()
	gameMetric.TotalMoves = len(moveMetrics)
	for _, m := range moveMetrics {
		if m.Action.IsWall() {
			gameMetric.WallsPlaced++
		}
	}
	return gameMetric
}
