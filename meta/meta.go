// meta/meta.go
package meta

// GO_ROUTINES defines the number of games played in parallel.
const GO_ROUTINES = 8

// GAMES defines the number of games per match up.
const GAMES = 20

// MAX_TURNS caps the moves of a single game; some positions cycle forever.
const MAX_TURNS = 300

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/records"
