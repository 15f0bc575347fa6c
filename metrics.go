package rcv

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bbengfort/x/stats"
)

// NewMetrics creates the metrics data store
func NewMetrics() *Metrics {
	return &Metrics{
		eliminations: new(stats.Statistics),
	}
}

// Metrics tracks the measurable statistics of a tabulation over time --
// e.g. how many ballots were cast, rejected, or exhausted and how many
// elimination rounds were required to decide the election. Register the
// Observe method on an election to collect events as tabulation runs.
type Metrics struct {
	sync.RWMutex
	started      time.Time         // The time of the first ballot cast
	finished     time.Time         // The time the winner was declared
	cast         uint64            // Number of ballots admitted to the election
	rejected     uint64            // Number of ballots rejected as invalid
	reassigned   uint64            // Number of ballot transfers between candidates
	exhausted    uint64            // Number of ballots that ran out of candidates
	eliminated   uint64            // Number of candidates eliminated from the race
	rounds       uint64            // Number of elimination rounds performed
	eliminations *stats.Statistics // Track the size of per-round eliminations
}

// Observe is a Callback that updates the metrics from tabulation events.
func (m *Metrics) Observe(e Event) error {
	m.Lock()
	defer m.Unlock()

	switch e.Type() {
	case BallotCastEvent:
		m.cast++
		if m.started.IsZero() {
			m.started = time.Now()
		}
	case BallotRejectedEvent:
		m.rejected++
	case BallotReassignedEvent:
		m.reassigned++
	case BallotExhaustedEvent:
		m.exhausted++
	case CandidateEliminatedEvent:
		m.eliminated++
	case RoundCompleteEvent:
		m.rounds++
		if n, ok := e.Value().(int); ok {
			m.eliminations.Update(float64(n))
		}
	case WinnerDeclaredEvent:
		m.finished = time.Now()
	}

	return nil
}

// Dump the metrics to JSON
func (m *Metrics) Dump(path string, extra map[string]interface{}) (err error) {
	m.RLock()
	defer m.RUnlock()

	data := make(map[string]interface{})

	// Append extra information
	for key, val := range extra {
		data[key] = val
	}

	data["metric"] = "tabulation"
	data["version"] = PackageVersion
	data["started"] = m.started.Format(time.RFC3339Nano)
	data["finished"] = m.finished.Format(time.RFC3339Nano)
	data["cast"] = m.cast
	data["rejected"] = m.rejected
	data["reassigned"] = m.reassigned
	data["exhausted"] = m.exhausted
	data["eliminated"] = m.eliminated
	data["rounds"] = m.rounds
	data["duration"] = m.duration().String()
	data["eliminations"] = m.eliminations.Serialize()

	return appendJSON(path, data)
}

// String returns a summary of the tabulation metrics
func (m *Metrics) String() string {
	m.RLock()
	defer m.RUnlock()

	return fmt.Sprintf(
		"%d ballots cast, %d rejected, %d exhausted in %d rounds (%s)",
		m.cast, m.rejected, m.exhausted, m.rounds, m.duration(),
	)
}

// Duration computes the amount of time the tabulation took. If no winner
// has been declared yet, the duration runs to the current time.
func (m *Metrics) duration() time.Duration {
	if m.started.IsZero() {
		return 0
	}
	if m.finished.IsZero() {
		return time.Since(m.started)
	}
	return m.finished.Sub(m.started)
}

// appendJSON marshals the data and appends it to the file at the specified
// path as a single JSON line, creating the file if it does not exist.
func appendJSON(path string, data map[string]interface{}) (err error) {
	var encoded []byte
	if encoded, err = json.Marshal(data); err != nil {
		return err
	}

	var f *os.File
	if f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(append(encoded, '\n')); err != nil {
		return err
	}
	return nil
}
