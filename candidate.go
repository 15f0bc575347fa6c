package rcv

//===========================================================================
// Candidate
//===========================================================================

// NewCandidate creates a candidate with the given name at the specified
// position in the election's candidate array. Candidates start with no
// ballots assigned to them.
func NewCandidate(name string, index int) *Candidate {
	return &Candidate{name: name, index: index}
}

// Candidate is a named contestant in the election. Each candidate holds the
// ballots for which it is currently the top remaining choice, so a
// candidate's vote count is always exactly the number of ballots it holds.
// Candidates are created once at election setup and are never destroyed;
// an eliminated candidate simply holds zero ballots for the remainder of
// the tabulation.
type Candidate struct {
	name    string    // immutable identity used for output
	index   int       // position in the election's candidate array
	ballots []*Ballot // the ballots currently assigned to this candidate
}

// Name returns the candidate's immutable identity.
func (c *Candidate) Name() string {
	return c.name
}

// Index returns the candidate's position in the election's candidate array,
// which is also the index voters rank the candidate by on their ballots.
func (c *Candidate) Index() int {
	return c.index
}

// Votes returns the current number of ballots held by the candidate.
func (c *Candidate) Votes() int {
	return len(c.ballots)
}

// AddBallot assigns a ballot to the candidate, increasing its vote count by
// one. The election guarantees the candidate is the ballot's top remaining
// choice before assignment.
func (c *Candidate) AddBallot(ballot *Ballot) {
	c.ballots = append(c.ballots, ballot)
}

// Eliminate removes the candidate from the race, releasing all of the
// ballots it holds for redistribution and clearing its own holdings to
// zero. This is the only operation that releases ballots; a candidate never
// loses ballots individually while still in the race.
func (c *Candidate) Eliminate() []*Ballot {
	released := c.ballots
	c.ballots = nil
	return released
}
