package rcv

//===========================================================================
// Ballot
//===========================================================================

// NewBallot creates a ballot from the specified rank array. The caller must
// have already validated that ranks is a permutation of 1 to n where n is
// the number of candidates in the election; constructing a ballot from
// unvalidated input is a programming error. The ranks are copied so that the
// ballot cannot be modified through the original slice.
func NewBallot(ranks []int) *Ballot {
	ballot := &Ballot{
		ranks:      make([]int, len(ranks)),
		eliminated: make(map[int]bool),
	}
	copy(ballot.ranks, ranks)
	return ballot
}

// Ballot is one voter's complete ranked preference order over all of the
// candidates in the election. The value at ranks[i] is the 1-based rank the
// voter gave to candidate i, rank 1 being the most preferred. As candidates
// are eliminated from the race their indexes are added to the eliminated
// set, moving the ballot's top choice down its preference order. A ballot is
// held by exactly one candidate at a time and is transferred, never copied,
// during reassignment.
type Ballot struct {
	ranks      []int        // ranks[i] is the rank assigned to candidate i
	eliminated map[int]bool // candidate indexes no longer in the race
}

// TopCandidate returns the index of the candidate with the lowest rank on
// the ballot among the candidates that have not been eliminated. Because
// ranks are distinct by the validity invariant, the result is deterministic
// and unique. Returns ErrExhaustedBallot if every ranked candidate has been
// eliminated.
func (b *Ballot) TopCandidate() (int, error) {
	top := -1
	for idx, rank := range b.ranks {
		if b.eliminated[idx] {
			continue
		}
		if top < 0 || rank < b.ranks[top] {
			top = idx
		}
	}

	if top < 0 {
		return -1, ErrExhaustedBallot
	}
	return top, nil
}

// EliminateCandidate marks the candidate index as removed from the race on
// this ballot. The ballot itself is not reassigned; the election is
// responsible for re-deriving the new top candidate and transferring the
// ballot to it.
func (b *Ballot) EliminateCandidate(idx int) {
	b.eliminated[idx] = true
}

// Exhausted returns true if every candidate ranked on the ballot has been
// eliminated, e.g. the ballot can no longer contribute to any vote count.
func (b *Ballot) Exhausted() bool {
	return len(b.eliminated) >= len(b.ranks)
}

// Ranks returns a copy of the ballot's rank array for inspection.
func (b *Ballot) Ranks() []int {
	ranks := make([]int, len(b.ranks))
	copy(ranks, b.ranks)
	return ranks
}
