// Command perft runs the movegen package's perft/divide node counter
// against a FEN position, grounded on the teacher's cmd/perft/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"kestrel/movegen"
)

var variantNames = map[string]movegen.Variant{
	"standard":   movegen.Standard,
	"anti":       movegen.Anti,
	"atomic":     movegen.Atomic,
	"crazyhouse": movegen.Crazyhouse,
	"horde":      movegen.Horde,
	"losers":     movegen.Losers,
	"race":       movegen.Race,
	"relay":      movegen.Relay,
}

func main() {
	fen := flag.String("fen", "", "FEN string (defaults to the variant's start position)")
	variantFlag := flag.String("variant", "standard", "standard|anti|atomic|crazyhouse|horde|losers|race|relay")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	parallel := flag.Bool("parallel", false, "Compute divide's per-move counts across goroutines, one per root move")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}
	variant, ok := variantNames[*variantFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -variant %q\n", *variantFlag)
		os.Exit(2)
	}

	fenStr := *fen
	if fenStr == "" {
		fenStr = startFENFor(variant)
	}
	pos, err := movegen.ParseFEN(fenStr, variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		var div map[movegen.Move]uint64
		if *parallel {
			div, err = parallelDivide(pos, *depth)
			if err != nil {
				fmt.Fprintf(os.Stderr, "parallel divide: %v\n", err)
				os.Exit(1)
			}
		} else {
			div = movegen.PerftDivide(pos, *depth)
		}
		printDivide(div)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += movegen.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

func startFENFor(v movegen.Variant) string {
	switch v {
	case movegen.Horde:
		return movegen.HordeStartFEN
	case movegen.Crazyhouse:
		return movegen.CrazyhouseStartFEN
	case movegen.Race:
		return movegen.RaceStartFEN
	default:
		return movegen.StartFEN
	}
}

// parallelDivide mirrors PerftDivide but fans out one goroutine per root
// move via errgroup, cloning the position before each goroutine makes its
// root move so no two goroutines ever share mutable state — the caller-side
// concurrency pattern SPEC_FULL.md's Concurrency section calls for.
func parallelDivide(pos *movegen.Position, depth int) (map[movegen.Move]uint64, error) {
	roots := pos.GenerateLegal(make([]movegen.Move, 0, movegen.MaxMoves))
	results := make([]uint64, len(roots))

	g, _ := errgroup.WithContext(context.Background())
	for i, m := range roots {
		i, m := i, m
		g.Go(func() error {
			clone := pos.Clone()
			clone.MakeMove(m)
			results[i] = movegen.Perft(clone, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	div := make(map[movegen.Move]uint64, len(roots))
	for i, m := range roots {
		div[m] = results[i]
	}
	return div, nil
}

func printDivide(div map[movegen.Move]uint64) {
	type kv struct {
		m movegen.Move
		n uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		arr = append(arr, kv{m, n})
		sum += n
	}
	slices.SortFunc(arr, func(a, b kv) int { return strings.Compare(a.m.String(), b.m.String()) })
	for _, x := range arr {
		fmt.Printf("%s: %d\n", x.m.String(), x.n)
	}
	fmt.Printf("Total: %d\n", sum)
}
