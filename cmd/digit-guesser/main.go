// Command digit-guesser trains a feed-forward network on painted bitmap
// samples and classifies a drawing.
//
// Samples are text grids ('#' painted, '.' empty) in a directory; each file
// name starts with its digit label, e.g. 3_curvy.txt. The network is trained
// on the samples and then asked to guess the given pattern:
//
//	digit-guesser -rounds 2000 -hidden 16 samples/ drawing.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/balmanth/digit-guesser/internal/bitmap"
	"github.com/balmanth/digit-guesser/internal/nn"
	"github.com/balmanth/digit-guesser/internal/worker"
)

func main() {
	var (
		hidden  = flag.String("hidden", "16", "comma-separated hidden layer sizes")
		rate    = flag.Float64("rate", nn.DefaultRate, "learning rate")
		rounds  = flag.Int("rounds", 1000, "training rounds over the sample set")
		classes = flag.Int("classes", 10, "number of output classes")
		seed    = flag.Int64("seed", 1, "random seed for weight initialization")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <samples-dir> <pattern-file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	log.SetFlags(0)
	if *classes <= 0 {
		log.Fatalf("class count must be positive, got %d", *classes)
	}

	samples, gridSize, err := loadSamples(flag.Arg(0), *classes)
	if err != nil {
		log.Fatal(err)
	}

	pattern, err := loadPattern(flag.Arg(1), gridSize)
	if err != nil {
		log.Fatal(err)
	}

	sizes, err := topology(gridSize, *hidden, *classes)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	net := nn.FromRandom[float64](rng, sizes, nn.Config{Rate: *rate})

	trainer := worker.New(net)
	defer trainer.Close()
	ctx := context.Background()

	log.Printf("training %v on %d samples for %d rounds", sizes, len(samples), *rounds)
	for r := 0; r < *rounds; r++ {
		for _, s := range samples {
			if err := trainer.Train(ctx, s.Input, s.Expected); err != nil {
				log.Fatal(err)
			}
		}
	}

	scores, err := trainer.Predict(ctx, pattern)
	if err != nil {
		log.Fatal(err)
	}

	best := 0
	for class, score := range scores {
		fmt.Printf("%d: %.4f\n", class, score)
		if score > scores[best] {
			best = class
		}
	}
	fmt.Printf("guess: %d\n", best)
}

// loadSamples reads every *.txt grid in dir; the leading digit of the file
// name is the class label. All grids must share one size, which is returned
// as the input-vector length.
func loadSamples(dir string, classes int) ([]nn.Sample[float64], int, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, 0, err
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, 0, fmt.Errorf("no *.txt samples in %s", dir)
	}

	var samples []nn.Sample[float64]
	gridSize := 0
	for _, name := range names {
		class, err := strconv.Atoi(filepath.Base(name)[:1])
		if err != nil {
			return nil, 0, fmt.Errorf("sample %s: file name must start with its digit label", name)
		}
		text, err := os.ReadFile(name)
		if err != nil {
			return nil, 0, err
		}
		grid, err := bitmap.Parse(string(text))
		if err != nil {
			return nil, 0, fmt.Errorf("sample %s: %w", name, err)
		}
		if gridSize == 0 {
			gridSize = grid.Size()
		} else if grid.Size() != gridSize {
			return nil, 0, fmt.Errorf("sample %s: grid has %d pixels, expected %d", name, grid.Size(), gridSize)
		}
		expected, err := bitmap.OneHot(class, classes)
		if err != nil {
			return nil, 0, fmt.Errorf("sample %s: %w", name, err)
		}
		samples = append(samples, nn.Sample[float64]{Input: grid.Vector(), Expected: expected})
	}
	return samples, gridSize, nil
}

func loadPattern(name string, gridSize int) ([]float64, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	grid, err := bitmap.Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", name, err)
	}
	if grid.Size() != gridSize {
		return nil, fmt.Errorf("pattern %s: grid has %d pixels, samples have %d", name, grid.Size(), gridSize)
	}
	return grid.Vector(), nil
}

func topology(gridSize int, hidden string, classes int) ([]int, error) {
	sizes := []int{gridSize}
	for _, part := range strings.Split(hidden, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid hidden layer size %q", part)
		}
		sizes = append(sizes, n)
	}
	return append(sizes, classes), nil
}
