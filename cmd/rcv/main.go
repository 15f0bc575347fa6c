package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bbengfort/rcv"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load the .env file if it exists
	godotenv.Load()

	app := cli.NewApp()
	app.Name = "rcv"
	app.Version = rcv.Version()
	app.Usage = "tabulate ranked choice voting elections"
	app.Commands = []*cli.Command{
		{
			Name:      "tabulate",
			Usage:     "tabulate the winner(s) of an election definition",
			ArgsUsage: "definition.json|definition.csv",
			Action:    tabulate,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "strict",
					Aliases: []string{"s"},
					Usage:   "abort on the first invalid ballot instead of skipping it",
				},
				&cli.StringFlag{
					Name:    "metrics",
					Aliases: []string{"m"},
					Usage:   "location to write tabulation metrics to disk",
				},
			},
		},
		{
			Name:      "validate",
			Usage:     "check the ballots in an election definition without tabulating",
			ArgsUsage: "definition.json|definition.csv",
			Action:    validate,
		},
		{
			Name:   "bench",
			Usage:  "tabulate a randomly generated election and report throughput",
			Action: bench,
			Flags: []cli.Flag{
				&cli.UintFlag{
					Name:    "candidates",
					Aliases: []string{"c"},
					Usage:   "number of candidates in the generated election",
					Value:   8,
				},
				&cli.UintFlag{
					Name:    "ballots",
					Aliases: []string{"b"},
					Usage:   "number of ballots in the generated election",
					Value:   10000,
				},
				&cli.Int64Flag{
					Name:    "seed",
					Aliases: []string{"S"},
					Usage:   "random seed for ballot generation",
					Value:   42,
				},
				&cli.BoolFlag{
					Name:    "csv",
					Aliases: []string{"C"},
					Usage:   "write results as a CSV row instead of JSON",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func tabulate(c *cli.Context) (err error) {
	if c.NArg() != 1 {
		return cli.Exit("specify the path to a single election definition", 1)
	}

	options := &rcv.Config{
		Strict:  c.Bool("strict"),
		Metrics: c.String("metrics"),
	}

	var tabulator *rcv.Tabulator
	if tabulator, err = rcv.New(options); err != nil {
		return cli.Exit(err, 1)
	}

	var winners []string
	if winners, err = tabulator.Tabulate(c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	switch len(winners) {
	case 0:
		fmt.Println("no winner: the election had no candidates")
	case 1:
		fmt.Printf("winner: %s\n", winners[0])
	default:
		fmt.Printf("tie between %s\n", strings.Join(winners, ", "))
	}

	return nil
}

func validate(c *cli.Context) (err error) {
	if c.NArg() != 1 {
		return cli.Exit("specify the path to a single election definition", 1)
	}

	var tabulator *rcv.Tabulator
	if tabulator, err = rcv.New(nil); err != nil {
		return cli.Exit(err, 1)
	}

	var defn *rcv.Definition
	if defn, err = rcv.LoadDefinition(c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}

	if _, err = tabulator.Replay(defn); err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Println(tabulator.Metrics())
	return nil
}

func bench(c *cli.Context) (err error) {
	var benchmark *rcv.Benchmark
	if benchmark, err = rcv.NewBenchmark(c.Uint("candidates"), c.Uint("ballots"), c.Int64("seed")); err != nil {
		return cli.Exit(err, 1)
	}

	if c.Bool("csv") {
		var row string
		if row, err = benchmark.CSV(true); err != nil {
			return cli.Exit(err, 1)
		}
		fmt.Println(row)
		return nil
	}

	var data []byte
	if data, err = benchmark.JSON(2); err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Println(string(data))
	return nil
}
