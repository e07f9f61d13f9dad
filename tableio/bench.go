// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableio

import (
	"bufio"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/aclements/go-gg/table"
)

// A benchResult is one result line of a Go benchmark file.
type benchResult struct {
	// name omits the "Benchmark" prefix, the "/key:value"
	// configuration and the "-N" GOMAXPROCS suffix.
	name   string
	iters  int
	config map[string]string
	units  map[string]float64
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// ReadBench reads Go benchmark results, as printed by "go test
// -bench", into a table with one row per result line.
//
// The table has a "name" column, an "iterations" column, a column for
// each configuration key and a column for each unit. Configuration
// comes from "key: value" lines, from "/key:value" parts of benchmark
// names and from the "-N" GOMAXPROCS suffix, which is reported as
// "gomaxprocs". Dashes in keys and units become spaces. The "ns/op"
// unit is reported as a "time/op" column of durations.
//
// A configuration column is numeric if every value parses as a
// number, a duration column if every value parses as a duration, and
// text otherwise. Rows without a value for a key or unit get NaN or
// "".
func ReadBench(r io.Reader) (*table.Table, error) {
	results, err := parseBench(r)
	if err != nil {
		return nil, err
	}
	return benchTable(results), nil
}

func parseBench(r io.Reader) ([]*benchResult, error) {
	var results []*benchResult
	block := map[string]string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := configRe.FindStringSubmatch(line); m != nil {
			block[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if b := parseBenchLine(line, block); b != nil {
				results = append(results, b)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// parseBenchLine parses a benchmark result line, or returns nil if
// line is not one.
func parseBenchLine(line string, block map[string]string) *benchResult {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil
		}
	}
	iters, err := strconv.Atoi(f[1])
	if err != nil || iters <= 0 {
		return nil
	}

	b := &benchResult{
		iters:  iters,
		config: make(map[string]string, len(block)+1),
		units:  make(map[string]float64),
	}
	for k, v := range block {
		b.config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			b.config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	b.name = parts[0]
	for _, part := range parts[1:] {
		if i := strings.Index(part, ":"); i >= 0 {
			b.config[part[:i]] = part[i+1:]
		}
	}
	if _, ok := b.config["gomaxprocs"]; !ok {
		b.config["gomaxprocs"] = "1"
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		b.units[f[i+1]] = val
	}
	return b
}

func benchTable(results []*benchResult) *table.Table {
	n := len(results)
	names := make([]string, n)
	iters := make([]int, n)
	configKeys, units := map[string]bool{}, map[string]bool{}
	for i, b := range results {
		names[i], iters[i] = b.name, b.iters
		for k := range b.config {
			configKeys[k] = true
		}
		for k := range b.units {
			units[k] = true
		}
	}

	tab := new(table.Builder).Add("name", names).Add("iterations", iters)
	for _, key := range sortedKeys(configKeys) {
		raw := make([]string, n)
		for i, b := range results {
			raw[i] = b.config[key]
		}
		tab.Add(niceKey(key), configColumn(raw))
	}
	for _, unit := range sortedKeys(units) {
		vals := make([]float64, n)
		for i, b := range results {
			v, ok := b.units[unit]
			if !ok {
				v = math.NaN()
			}
			vals[i] = v
		}
		if unit == "ns/op" {
			durations := make([]time.Duration, n)
			for i, v := range vals {
				durations[i] = time.Duration(v)
			}
			tab.Add("time/op", durations)
			continue
		}
		tab.Add(niceKey(unit), vals)
	}
	return tab.Done()
}

// configColumn converts the raw values of one configuration key to
// the most specific column type that holds all of them. Empty values
// are missing.
func configColumn(raw []string) interface{} {
	if xs, ok := parseFloats(raw); ok {
		return xs
	}
	ds := make([]time.Duration, len(raw))
	found := false
	for i, s := range raw {
		if s == "" {
			continue
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return raw
		}
		ds[i], found = d, true
	}
	if !found {
		return raw
	}
	return ds
}

func niceKey(key string) string {
	return strings.Replace(key, "-", " ", -1)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
