package rcv_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/bbengfort/rcv"
)

var _ = Describe("Benchmark", func() {

	It("should tabulate a reproducible random election", func() {
		bench, err := NewBenchmark(5, 500, 42)
		Ω(err).ShouldNot(HaveOccurred())
		Ω(bench.Complete()).Should(BeTrue())
		Ω(bench.Throughput()).Should(BeNumerically(">", 0))

		again, err := NewBenchmark(5, 500, 42)
		Ω(err).ShouldNot(HaveOccurred())
		Ω(again.Winners()).Should(Equal(bench.Winners()))
	})

	It("should not benchmark an election with no candidates", func() {
		_, err := NewBenchmark(0, 100, 42)
		Ω(err).Should(HaveOccurred())
	})

	It("should report results as CSV", func() {
		bench, err := NewBenchmark(3, 100, 42)
		Ω(err).ShouldNot(HaveOccurred())

		row, err := bench.CSV(true)
		Ω(err).ShouldNot(HaveOccurred())

		lines := strings.Split(row, "\n")
		Ω(lines).Should(HaveLen(2))
		Ω(lines[0]).Should(Equal("candidates,ballots,rounds,duration,throughput,seed,version"))
		Ω(strings.Split(lines[1], ",")).Should(HaveLen(7))
	})

	It("should report results as JSON", func() {
		bench, err := NewBenchmark(3, 100, 42)
		Ω(err).ShouldNot(HaveOccurred())

		data, err := bench.JSON(0)
		Ω(err).ShouldNot(HaveOccurred())

		results := make(map[string]interface{})
		Ω(json.Unmarshal(data, &results)).Should(Succeed())
		Ω(results["candidates"]).Should(Equal(float64(3)))
		Ω(results["ballots"]).Should(Equal(float64(100)))
		Ω(results["version"]).Should(Equal(PackageVersion))
	})

})
