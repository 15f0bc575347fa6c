package rcv

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

//===========================================================================
// Election Definition Loader
//===========================================================================

// Definition is an election as read from disk: the candidate names in ballot
// order and the rank rows of every ballot cast. The definition is the
// external representation consumed by the surrounding system; the core
// election never performs I/O itself.
type Definition struct {
	Candidates []string `json:"candidates"`
	Ballots    [][]int  `json:"ballots"`
}

// LoadDefinition reads an election definition from the file at the given
// path, selecting the parser by extension. JSON files contain a definition
// object; CSV files contain the candidate names as a header row followed by
// one row of ranks per ballot.
func LoadDefinition(path string) (*Definition, error) {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		return loadJSON(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unknown election definition format '%s'", ext)
	}
}

func loadJSON(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	defn := new(Definition)
	if err = json.NewDecoder(f).Decode(defn); err != nil {
		return nil, fmt.Errorf("could not parse %s: %s", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("candidates", len(defn.Candidates)).
		Int("ballots", len(defn.Ballots)).
		Msg("election definition loaded")
	return defn, nil
}

func loadCSV(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %s", path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no candidate header found in %s", path)
	}

	defn := new(Definition)
	for _, name := range rows[0] {
		defn.Candidates = append(defn.Candidates, strings.TrimSpace(name))
	}

	for i, row := range rows[1:] {
		ranks := make([]int, 0, len(row))
		for _, field := range row {
			rank, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("could not parse rank on ballot %d: %s", i+1, err)
			}
			ranks = append(ranks, rank)
		}
		defn.Ballots = append(defn.Ballots, ranks)
	}

	log.Debug().
		Str("path", path).
		Int("candidates", len(defn.Candidates)).
		Int("ballots", len(defn.Ballots)).
		Msg("election definition loaded")
	return defn, nil
}
