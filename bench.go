package rcv

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// NewBenchmark generates a random election with the specified number of
// candidates and ballots, tabulates it, and records the results. Each
// ballot is an independent uniform random permutation drawn from the given
// seed so that benchmark runs are reproducible.
func NewBenchmark(candidates, ballots uint, seed int64) (*Benchmark, error) {
	bench := &Benchmark{candidates: candidates, ballots: ballots, seed: seed}
	if err := bench.Run(); err != nil {
		return nil, err
	}
	return bench, nil
}

// Benchmark measures the throughput of the tabulation algorithm over a
// randomly generated election. A single benchmark is executed once and
// stores its internal results to be saved to disk as CSV or JSON rows.
type Benchmark struct {
	candidates uint          // the number of candidates in the generated election
	ballots    uint          // the number of ballots cast in the generated election
	seed       int64         // the random seed used to generate the ballots
	rounds     int           // the number of elimination rounds performed
	winners    []string      // the winner(s) of the generated election
	started    time.Time     // the time the tabulation was started
	duration   time.Duration // the duration of the tabulation
}

// Run the benchmark by generating the random ballots, then timing how long
// the assignment and winner selection takes. Ballot generation is excluded
// from the measured duration. May be called again to rerun the benchmark.
func (b *Benchmark) Run() error {
	if b.candidates == 0 {
		return errors.New("cannot benchmark an election with no candidates")
	}

	// Generate the ballots first so that it's not part of throughput.
	random := rand.New(rand.NewSource(b.seed))
	ballots := make([][]int, 0, b.ballots)
	for i := uint(0); i < b.ballots; i++ {
		ranks := make([]int, b.candidates)
		for idx, rank := range random.Perm(int(b.candidates)) {
			ranks[idx] = rank + 1
		}
		ballots = append(ballots, ranks)
	}

	election := NewElection(int(b.candidates))
	for i := uint(0); i < b.candidates; i++ {
		election.AddCandidate(fmt.Sprintf("candidate-%d", i+1))
	}

	// Execute the tabulation, including ballot validation in the timing.
	b.started = time.Now()
	for _, ranks := range ballots {
		if err := election.AddBallot(ranks); err != nil {
			return err
		}
	}
	b.winners = election.SelectWinner()
	b.duration = time.Since(b.started)
	b.rounds = election.Rounds()

	return nil
}

// Complete returns true if the benchmark has been run.
func (b *Benchmark) Complete() bool {
	return b.duration > 0
}

// Throughput computes the number of ballots tabulated by the total duration
// of the benchmark, e.g. the ballots per second.
func (b *Benchmark) Throughput() float64 {
	if b.duration == 0 {
		return 0.0
	}

	return float64(b.ballots) / b.duration.Seconds()
}

// Winners returns the winner(s) of the generated election.
func (b *Benchmark) Winners() []string {
	return b.winners
}

// CSV returns a results row delimited by commas as:
//
//	candidates,ballots,rounds,duration,throughput,seed,version
//
// If header is specified then string contains two rows with the header first.
func (b *Benchmark) CSV(header bool) (string, error) {
	if !b.Complete() {
		return "", errors.New("benchmark has not been run yet")
	}

	row := fmt.Sprintf(
		"%d,%d,%d,%s,%0.4f,%d,%s",
		b.candidates, b.ballots, b.rounds, b.duration, b.Throughput(), b.seed, Version(),
	)

	if header {
		return fmt.Sprintf("candidates,ballots,rounds,duration,throughput,seed,version\n%s", row), nil
	}

	return row, nil
}

// JSON returns a results row as a json object, formatted with or without the
// number of spaces specified by indent. Use no indent for JSON lines format.
func (b *Benchmark) JSON(indent int) ([]byte, error) {
	data := b.serialize()

	if indent > 0 {
		indent := strings.Repeat(" ", indent)
		return json.MarshalIndent(data, "", indent)
	}

	return json.Marshal(data)
}

// serialize converts the benchmark into a map[string]interface{} -- useful
// for dumping the benchmark as JSON.
func (b *Benchmark) serialize() map[string]interface{} {
	data := make(map[string]interface{})

	data["candidates"] = b.candidates
	data["ballots"] = b.ballots
	data["rounds"] = b.rounds
	data["winners"] = b.winners
	data["duration"] = b.duration.String()
	data["throughput"] = b.Throughput()
	data["seed"] = b.seed
	data["version"] = Version()

	return data
}
