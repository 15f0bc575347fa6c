package rcv_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/bbengfort/rcv"
)

var _ = Describe("Loader", func() {

	expected := &Definition{
		Candidates: []string{"Lizzo", "Beyonce", "Ariana"},
		Ballots: [][]int{
			{2, 1, 3}, {3, 1, 2}, {3, 2, 1}, {2, 3, 1}, {1, 2, 3},
		},
	}

	It("should load an election definition from JSON", func() {
		defn, err := LoadDefinition(filepath.Join("testdata", "election.json"))
		Ω(err).ShouldNot(HaveOccurred())
		Ω(defn).Should(Equal(expected))
	})

	It("should load an election definition from CSV", func() {
		defn, err := LoadDefinition(filepath.Join("testdata", "election.csv"))
		Ω(err).ShouldNot(HaveOccurred())
		Ω(defn).Should(Equal(expected))
	})

	It("should error on an unknown definition format", func() {
		_, err := LoadDefinition(filepath.Join("testdata", "election.txt"))
		Ω(err).Should(HaveOccurred())
	})

	It("should error when the definition does not exist", func() {
		_, err := LoadDefinition(filepath.Join("testdata", "missing.json"))
		Ω(err).Should(HaveOccurred())
	})

})
