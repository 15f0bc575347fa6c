/*
Package rcv implements ranked choice voting (instant runoff) tabulation.

Rather than vote for a single candidate, a voter ranks all the candidates on
their ballot in preference order. First choice votes are tallied, and if any
candidate holds more than 50% of the votes, that candidate wins. Otherwise
the candidate(s) with the fewest votes are eliminated and their ballots are
reassigned to the next ranked choice still in the race. Rounds continue until
a candidate wins outright or all remaining candidates are tied.
*/
package rcv

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PackageVersion of the current rcv implementation
const PackageVersion = "0.1.0"

// Version returns the package version string for results and CLI output.
func Version() string {
	return PackageVersion
}

// New creates a Tabulator, the top level object that loads an election
// definition from disk, runs the tabulation, and reports the winners. The
// configuration is loaded from defaults, a configuration file, and the
// environment, then updated with any options passed in.
func New(options *Config) (*Tabulator, error) {
	config := new(Config)
	if err := config.Load(); err != nil {
		return nil, err
	}

	if err := config.Update(options); err != nil {
		return nil, err
	}

	// Set the global logging level from the configuration
	zerolog.SetGlobalLevel(config.GetLogLevel())

	return &Tabulator{config: config, metrics: NewMetrics()}, nil
}

// Tabulator wires the election definition loader, the election itself, and
// the metrics observer together on behalf of the command line program. The
// core algorithm lives on Election; the Tabulator is the surrounding system
// that feeds it candidates and ballots.
type Tabulator struct {
	config  *Config
	metrics *Metrics
}

// Metrics returns the tabulation metrics collected so far.
func (t *Tabulator) Metrics() *Metrics {
	return t.metrics
}

// Tabulate loads the election definition at the specified path, replays it
// through an Election, and returns the winner name(s) in the order the
// candidates were defined. In strict mode an invalid ballot aborts the
// tabulation; otherwise invalid ballots are logged and skipped.
func (t *Tabulator) Tabulate(path string) (winners []string, err error) {
	var defn *Definition
	if defn, err = LoadDefinition(path); err != nil {
		return nil, err
	}

	var election *Election
	if election, err = t.Replay(defn); err != nil {
		return nil, err
	}

	winners = election.SelectWinner()

	// Write the metrics to disk if a metrics path is configured
	if t.config.Metrics != "" {
		extra := map[string]interface{}{"definition": path, "winners": winners}
		if err = t.metrics.Dump(t.config.Metrics, extra); err != nil {
			return nil, err
		}
	}

	return winners, nil
}

// Replay creates an election from the definition, registering the metrics
// observer before any ballots are cast so that every event is counted.
func (t *Tabulator) Replay(defn *Definition) (*Election, error) {
	election := NewElection(len(defn.Candidates))
	election.Register(t.metrics.Observe)

	for _, name := range defn.Candidates {
		election.AddCandidate(name)
	}

	for i, ranks := range defn.Ballots {
		if err := election.AddBallot(ranks); err != nil {
			if t.config.Strict {
				return nil, fmt.Errorf("ballot %d: %w", i+1, err)
			}
			log.Warn().Int("ballot", i+1).Err(err).Msg("ballot rejected")
		}
	}

	return election, nil
}
