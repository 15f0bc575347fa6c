package rcv_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/bbengfort/rcv"
)

var _ = Describe("Tabulator", func() {

	It("should tabulate an election definition from disk", func() {
		tabulator, err := New(nil)
		Ω(err).ShouldNot(HaveOccurred())

		winners, err := tabulator.Tabulate(filepath.Join("testdata", "election.json"))
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winners).Should(Equal([]string{"Beyonce"}))
	})

	It("should tabulate the same winners from the CSV definition", func() {
		tabulator, err := New(nil)
		Ω(err).ShouldNot(HaveOccurred())

		winners, err := tabulator.Tabulate(filepath.Join("testdata", "election.csv"))
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winners).Should(Equal([]string{"Beyonce"}))
	})

	It("should skip invalid ballots by default", func() {
		tabulator, err := New(nil)
		Ω(err).ShouldNot(HaveOccurred())

		winners, err := tabulator.Tabulate(filepath.Join("testdata", "invalid.json"))
		Ω(err).ShouldNot(HaveOccurred())
		Ω(winners).Should(Equal([]string{"Beyonce"}))
	})

	It("should abort on invalid ballots in strict mode", func() {
		tabulator, err := New(&Config{Strict: true})
		Ω(err).ShouldNot(HaveOccurred())

		_, err = tabulator.Tabulate(filepath.Join("testdata", "invalid.json"))
		Ω(err).Should(MatchError(ErrInvalidBallot))
	})

	It("should error when the definition cannot be loaded", func() {
		tabulator, err := New(nil)
		Ω(err).ShouldNot(HaveOccurred())

		_, err = tabulator.Tabulate(filepath.Join("testdata", "missing.json"))
		Ω(err).Should(HaveOccurred())
	})

})
