package rcv_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/bbengfort/rcv"
)

var _ = Describe("Candidate", func() {

	var candidate *Candidate

	BeforeEach(func() {
		candidate = NewCandidate("Lizzo", 0)
	})

	It("should have an immutable name and index", func() {
		Ω(candidate.Name()).Should(Equal("Lizzo"))
		Ω(candidate.Index()).Should(Equal(0))
	})

	It("should count one vote per assigned ballot", func() {
		Ω(candidate.Votes()).Should(BeZero())

		for i := 0; i < 4; i++ {
			candidate.AddBallot(NewBallot([]int{1, 2, 3}))
			Ω(candidate.Votes()).Should(Equal(i + 1))
		}
	})

	It("should release all ballots on elimination", func() {
		ballots := make([]*Ballot, 0, 3)
		for i := 0; i < 3; i++ {
			ballot := NewBallot([]int{1, 2, 3})
			ballots = append(ballots, ballot)
			candidate.AddBallot(ballot)
		}

		released := candidate.Eliminate()
		Ω(released).Should(HaveLen(3))
		Ω(released).Should(ConsistOf(ballots[0], ballots[1], ballots[2]))
		Ω(candidate.Votes()).Should(BeZero())
	})

	It("should release nothing when eliminated with no ballots", func() {
		Ω(candidate.Eliminate()).Should(BeEmpty())
		Ω(candidate.Votes()).Should(BeZero())
	})

})
