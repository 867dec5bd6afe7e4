// Copyright 2026 go-cursorsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command csort-bench measures cursor-convergence sorting against the
// standard library on generated or file-provided data.
//
// Usage:
//
//	csort-bench -n 10000 -pattern random -runs 5
//	csort-bench -n 4096 -pattern sorted            # worst case
//	csort-bench -pattern nan -n 1000 -descending
//	csort-bench -input values.txt -stdlib          # whitespace-separated numbers
//
// Patterns: random, sorted, reversed, sawtooth, organpipe, equal, fewuniques,
// nan.
// The tool reports wall time, comparison and swap counts, and verifies the
// output ordering after every run.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-cursorsort/csort"
)

var (
	size       = flag.Int("n", 10000, "Number of elements to generate")
	pattern    = flag.String("pattern", "random", "Input pattern (random, sorted, reversed, sawtooth, organpipe, equal, fewuniques, nan)")
	runs       = flag.Int("runs", 3, "Number of timed runs")
	seed       = flag.Int64("seed", 1, "Random seed for generated data")
	descending = flag.Bool("descending", false, "Sort into descending order")
	stdlib     = flag.Bool("stdlib", false, "Also time slices.Sort on the same data")
	inputFile  = flag.String("input", "", "Read whitespace-separated numbers from file instead of generating")
)

func main() {
	flag.Parse()

	data, err := loadOrGenerate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(data) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no input data\n")
		os.Exit(1)
	}

	direction := "ascending"
	if *descending {
		direction = "descending"
	}
	fmt.Printf("%s/%s  avx2=%v avx512=%v neon=%v\n", runtime.GOOS, runtime.GOARCH,
		cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.ARM64.HasASIMD)
	fmt.Printf("elements: %s  pattern: %s  order: %s\n",
		humanize.Comma(int64(len(data))), *pattern, direction)

	for run := 1; run <= *runs; run++ {
		work := make([]float64, len(data))
		copy(work, data)
		counter := &countingSlice{data: work}

		start := time.Now()
		if *descending {
			csort.SortDescending(counter)
		} else {
			csort.Sort(counter)
		}
		elapsed := time.Since(start)

		if err := verify(work, *descending); err != nil {
			fmt.Fprintf(os.Stderr, "Error: run %d: %v\n", run, err)
			os.Exit(1)
		}

		rate := float64(len(work)) / elapsed.Seconds()
		fmt.Printf("run %d: %12v  compares=%s  swaps=%s  (%selem/s)\n",
			run, elapsed,
			humanize.Comma(int64(counter.compares)),
			humanize.Comma(int64(counter.swaps)),
			humanize.SI(rate, ""))
	}

	if *stdlib {
		work := make([]float64, len(data))
		best := time.Duration(math.MaxInt64)
		for run := 0; run < *runs; run++ {
			copy(work, data)
			start := time.Now()
			stdlibSort(work, *descending)
			if elapsed := time.Since(start); elapsed < best {
				best = elapsed
			}
		}
		fmt.Printf("slices.Sort best of %d: %v\n", *runs, best)
	}
}

// countingSlice adapts []float64 to csort.Interface while tallying the work
// performed.
type countingSlice struct {
	data     []float64
	compares int
	swaps    int
}

func (c *countingSlice) Len() int { return len(c.data) }

func (c *countingSlice) Compare(i, j int) csort.Ordering {
	c.compares++
	return csort.PartialCompare(c.data[i], c.data[j])
}

func (c *countingSlice) Swap(i, j int) {
	c.swaps++
	c.data[i], c.data[j] = c.data[j], c.data[i]
}

func loadOrGenerate() ([]float64, error) {
	if *inputFile != "" {
		return readNumbers(*inputFile)
	}
	if *size < 0 {
		return nil, errors.Errorf("-n must be non-negative, got %d", *size)
	}
	return generate(*pattern, *size, *seed)
}

func generate(name string, n int, seed int64) ([]float64, error) {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, n)
	switch name {
	case "random":
		for i := range data {
			data[i] = rng.Float64() * 1e6
		}
	case "sorted":
		for i := range data {
			data[i] = float64(i)
		}
	case "reversed":
		for i := range data {
			data[i] = float64(n - i)
		}
	case "sawtooth":
		for i := range data {
			data[i] = float64(i % 101)
		}
	case "organpipe":
		for i := range data {
			if i < n/2 {
				data[i] = float64(i)
			} else {
				data[i] = float64(n - i)
			}
		}
	case "equal":
		for i := range data {
			data[i] = 42
		}
	case "fewuniques":
		for i := range data {
			data[i] = float64(rng.Intn(4))
		}
	case "nan":
		for i := range data {
			if rng.Intn(10) == 0 {
				data[i] = math.NaN()
			} else {
				data[i] = rng.NormFloat64() * 1000
			}
		}
	default:
		return nil, errors.Errorf("unknown pattern %q", name)
	}
	return data, nil
}

func readNumbers(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	fields := strings.Fields(string(raw))
	data := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		data = append(data, v)
	}
	return data, nil
}

// verify checks every adjacent comparable pair; incomparable neighbors (NaN)
// are allowed anywhere.
func verify(data []float64, descending bool) error {
	var ok bool
	if descending {
		ok = csort.IsSortedDescending(csort.Slice[float64](data))
	} else {
		ok = csort.IsSortedSlice(data)
	}
	if !ok {
		return errors.New("output failed order verification")
	}
	return nil
}

func stdlibSort(data []float64, descending bool) {
	slices.Sort(data)
	if descending {
		slices.Reverse(data)
	}
}
