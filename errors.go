package rcv

import "errors"

// Standard errors for primary operations
var (
	ErrInvalidBallot   = errors.New("invalid ballot: ranks must be a permutation of 1 to the number of candidates")
	ErrExhaustedBallot = errors.New("exhausted ballot: all ranked candidates have been eliminated")
	ErrElectionDecided = errors.New("election has already been decided, no more ballots accepted")
)
