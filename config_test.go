package rcv_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	. "github.com/bbengfort/rcv"
)

var _ = Describe("Config", func() {

	It("should validate a correct configuration", func() {
		conf := &Config{
			Seed:     42,
			LogLevel: "debug",
			Strict:   true,
			Metrics:  "metrics.json",
			Uptime:   "15m",
		}
		Ω(conf.Validate()).Should(Succeed())
	})

	It("should not validate an unparseable log level", func() {
		conf := &Config{LogLevel: "shouting"}
		Ω(conf.Validate()).ShouldNot(Succeed())
	})

	It("should be valid with loaded defaults", func() {
		conf := new(Config)

		confPath, err := conf.GetPath()
		Ω(confPath).Should(BeZero())
		Ω(err).Should(HaveOccurred())

		Ω(conf.Load()).Should(Succeed())

		// Validate configuration defaults
		Ω(conf.LogLevel).Should(Equal("info"))
		Ω(conf.GetLogLevel()).Should(Equal(zerolog.InfoLevel))

		// Validate non configurations
		Ω(conf.Seed).Should(BeZero())
		Ω(conf.Strict).Should(BeFalse())
		Ω(conf.Metrics).Should(BeZero())
		Ω(conf.Uptime).Should(BeZero())
	})

	It("should update from another configuration", func() {
		conf := new(Config)
		Ω(conf.Load()).Should(Succeed())

		Ω(conf.Update(&Config{Seed: 7, LogLevel: "warn"})).Should(Succeed())
		Ω(conf.Seed).Should(Equal(int64(7)))
		Ω(conf.GetLogLevel()).Should(Equal(zerolog.WarnLevel))
	})

	It("should be able to parse durations", func() {
		conf := &Config{Uptime: "10s"}

		duration, err := conf.GetUptime()
		Ω(err).ShouldNot(HaveOccurred())
		Ω(duration).Should(Equal(10 * time.Second))
	})

})
