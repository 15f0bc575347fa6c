package rcv

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
)

// Tabulation phases of an election
const (
	Setup Phase = iota // setup should be the zero value and default
	Tallying
	Decided
)

// Names of the phases for serialization
var phaseStrings = [...]string{
	"setup", "tallying", "decided",
}

//===========================================================================
// Phase Enumeration
//===========================================================================

// Phase is an enumeration of the possible status of an election.
type Phase uint8

// String returns a human readable representation of the phase.
func (p Phase) String() string {
	return phaseStrings[p]
}

//===========================================================================
// Election
//===========================================================================

// NewElection creates an election with a fixed candidate capacity.
// Initially, there are no candidates or votes.
func NewElection(numCandidates int) *Election {
	return &Election{
		candidates: make([]*Candidate, numCandidates),
		eliminated: make(map[int]bool),
	}
}

// Election owns the candidates running for office and orchestrates ballot
// validation, assignment, and the instant runoff rounds that determine the
// winner(s). Once setup completes the candidate set is immutable in
// membership; only vote counts and ballot assignment change during
// tabulation. All candidates stay in the candidates array even after they
// are eliminated from the race.
//
// Note that the election is not thread-safe and is not intended to be
// accessed from multiple go routines. Tabulation is a synchronous, pure
// in-memory computation maintained by a single caller.
type Election struct {
	candidates    []*Candidate // all candidates in the order they were added
	nextCandidate int          // the next slot in the candidates array to fill
	eliminated    map[int]bool // candidate indexes removed from the race
	phase         Phase        // the current tabulation phase
	rounds        int          // number of elimination rounds performed
	dispatcher    *Dispatcher  // dispatches tabulation events to observers
}

// Register a callback to receive tabulation events. Observers such as the
// metrics collector use events to track the progress of the tabulation.
// Dispatch is synchronous on the tabulating goroutine.
func (e *Election) Register(callback Callback) {
	if e.dispatcher == nil {
		e.dispatcher = NewDispatcher(e)
	}
	e.dispatcher.Register(callback)
}

// AddCandidate appends a candidate to the election. The caller must not add
// more candidates than the declared capacity; doing so is a precondition
// violation that fails loudly with an out of bounds panic rather than
// silently corrupting state.
func (e *Election) AddCandidate(name string) {
	e.candidates[e.nextCandidate] = NewCandidate(name, e.nextCandidate)
	e.nextCandidate++
}

// AddBallot validates and admits a completed ballot to the election. A
// correctly formulated ballot has exactly one entry with a rank of 1,
// exactly one entry with a rank of 2, and so on: if there are n candidates
// the ranks must be some permutation of the numbers 1 to n. On success the
// ballot is assigned to the candidate it ranks first; on failure
// ErrInvalidBallot is returned and no state changes (atomic validate then
// admit). Returns ErrElectionDecided if the winner has already been
// selected.
func (e *Election) AddBallot(ranks []int) error {
	if e.phase == Decided {
		return ErrElectionDecided
	}

	if !e.isBallotValid(ranks) {
		e.dispatch(BallotRejectedEvent, ranks)
		return ErrInvalidBallot
	}

	ballot := NewBallot(ranks)
	candidate, _ := e.assign(ballot)
	e.setPhase(Tallying)
	e.dispatch(BallotCastEvent, candidate)
	return nil
}

// isBallotValid checks that the ballot is the right length and contains a
// permutation of the numbers 1 to n, where n is the number of candidates.
func (e *Election) isBallotValid(ranks []int) bool {
	if len(ranks) != len(e.candidates) {
		return false
	}

	sorted := make([]int, len(ranks))
	copy(sorted, ranks)
	sort.Ints(sorted)

	for i, rank := range sorted {
		if rank != i+1 {
			return false
		}
	}
	return true
}

// Candidates returns a read-only snapshot of all candidates in the order
// they were added, including any that have been eliminated.
func (e *Election) Candidates() []*Candidate {
	return e.candidates[:e.nextCandidate]
}

// Rounds returns the number of elimination rounds performed so far.
func (e *Election) Rounds() int {
	return e.rounds
}

// Phase returns the current tabulation phase of the election.
func (e *Election) Phase() Phase {
	return e.phase
}

// assign determines which candidate is the top remaining choice on the
// ballot and gives the ballot to that candidate, skipping over any
// candidates that have been eliminated from the race. If every ranked
// candidate has been eliminated the ballot is exhausted: it is assigned to
// no one and contributes to no vote count thereafter.
func (e *Election) assign(ballot *Ballot) (*Candidate, error) {
	for {
		top, err := ballot.TopCandidate()
		if err != nil {
			e.dispatch(BallotExhaustedEvent, ballot)
			return nil, err
		}

		if e.eliminated[top] {
			ballot.EliminateCandidate(top)
			continue
		}

		candidate := e.candidates[top]
		candidate.AddBallot(ballot)
		return candidate, nil
	}
}

//===========================================================================
// Winner Selection
//===========================================================================

// SelectWinner applies the ranked choice voting algorithm to identify the
// winner, returning the winner name(s) in the order the candidates were
// added. If there is a single winner the list contains just that winner's
// name; if there is a tie the list contains the names of all tied
// candidates; if the election has no candidates the list is empty.
//
// Selecting the winner is the terminal operation on an election: no further
// ballots are accepted afterward.
func (e *Election) SelectWinner() []string {
	winners := make([]string, 0, e.nextCandidate)
	candidates := e.Candidates()

	switch {
	case len(candidates) == 0:
		// no candidates, no winners
	case len(candidates) == 1:
		// a lone candidate wins outright, even with zero votes
		winners = append(winners, candidates[0].Name())
	case VotesEqual(candidates):
		// all candidates received an equal number of votes
		for _, candidate := range candidates {
			winners = append(winners, candidate.Name())
		}
	default:
		if leader := VotesMoreThanHalf(candidates); leader != nil {
			// a candidate received more than 50% of the first choice votes
			winners = append(winners, leader.Name())
		} else {
			// eliminate and reassign until a stopping condition holds
			for _, candidate := range e.reassign(candidates) {
				winners = append(winners, candidate.Name())
			}
		}
	}

	e.setPhase(Decided)
	e.dispatch(WinnerDeclaredEvent, winners)
	return winners
}

// reassign recursively eliminates the candidates with the fewest votes and
// redistributes their ballots to the next ranked choice still in the race.
// It stops when only one candidate is left, when the remaining candidates
// all hold an equal number of votes, or when one candidate holds more than
// 50% of the votes still live in the race. The candidate list strictly
// shrinks each round, so the recursion terminates in at most n-1 calls.
func (e *Election) reassign(candidates []*Candidate) []*Candidate {
	// base cases
	if len(candidates) == 1 {
		return candidates
	}
	if VotesEqual(candidates) {
		return candidates
	}
	if leader := VotesMoreThanHalf(candidates); leader != nil {
		return []*Candidate{leader}
	}

	e.rounds++

	// find the lowest number of votes in the race
	minVotes := candidates[0].Votes()
	for _, candidate := range candidates[1:] {
		if candidate.Votes() < minVotes {
			minVotes = candidate.Votes()
		}
	}

	// eliminate every candidate holding the minimum in the same round,
	// collecting their released ballots for redistribution
	released := make([]*Ballot, 0)
	remaining := make([]*Candidate, 0, len(candidates))

	for _, candidate := range candidates {
		if candidate.Votes() == minVotes {
			e.eliminated[candidate.Index()] = true
			released = append(released, candidate.Eliminate()...)

			log.Debug().
				Str("candidate", candidate.Name()).
				Int("round", e.rounds).
				Int("votes", minVotes).
				Msg("candidate eliminated")
			e.dispatch(CandidateEliminatedEvent, candidate)
		} else {
			remaining = append(remaining, candidate)
		}
	}

	// transfer each released ballot to its new top remaining choice; ballots
	// with no remaining choices are exhausted and counted for no one
	for _, ballot := range released {
		if candidate, err := e.assign(ballot); err == nil {
			e.dispatch(BallotReassignedEvent, candidate)
		}
	}

	log.Debug().
		Int("round", e.rounds).
		Int("eliminated", len(candidates)-len(remaining)).
		Int("remaining", len(remaining)).
		Msg("elimination round complete")
	e.dispatch(RoundCompleteEvent, len(candidates)-len(remaining))

	return e.reassign(remaining)
}

// setPhase updates the phase of the election, logging the transition.
func (e *Election) setPhase(phase Phase) {
	if phase == e.phase {
		return
	}
	log.Debug().Str("from", e.phase.String()).Str("to", phase.String()).Msg("election phase changed")
	e.phase = phase
}

// dispatch sends an event to the registered observers if there are any.
func (e *Election) dispatch(etype EventType, value interface{}) {
	if e.dispatcher == nil {
		return
	}
	if err := e.dispatcher.Dispatch(etype, value); err != nil {
		log.Error().Err(err).Str("event", etype.String()).Msg("could not dispatch event")
	}
}

//===========================================================================
// Vote Count Helpers
//===========================================================================

// VotesEqual checks whether every candidate in the list holds the same
// number of votes. A pure function of the current vote counts: repeated
// calls on the same snapshot return the same result.
func VotesEqual(candidates []*Candidate) bool {
	for _, candidate := range candidates {
		if candidate.Votes() != candidates[0].Votes() {
			return false
		}
	}
	return true
}

// VotesMoreThanHalf returns the candidate holding more than 50% of the
// votes held by the candidates in the list, or nil if no candidate does.
// The denominator is the sum of the listed candidates' live vote counts,
// not the original total ballot count, so it must be recomputed fresh for
// every round. A pure function of the current vote counts.
func VotesMoreThanHalf(candidates []*Candidate) *Candidate {
	var leader *Candidate
	total := 0

	for _, candidate := range candidates {
		if leader == nil || candidate.Votes() > leader.Votes() {
			leader = candidate
		}
		total += candidate.Votes()
	}

	if leader != nil && 2*leader.Votes() > total {
		return leader
	}
	return nil
}

// String returns a summary of the election state.
func (e *Election) String() string {
	return fmt.Sprintf("%s election with %d of %d candidates", e.phase, e.nextCandidate, len(e.candidates))
}
