// meta/meta.go
package meta

// GAMES defines the number of games played by one run.
const GAMES = 1

// MAX_TURNS defines the turn limit of a single game.
const MAX_TURNS = 500

// SEED defines the default seed of random agents.
const SEED = 1

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"
