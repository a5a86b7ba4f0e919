// Command uci is a thin UCI-subset driver over the movegen package: it
// replays "position" commands, answers "go perft", and prints a board dump
// on "d". It does not search or evaluate — there is no engine behind it,
// only the move generator, grounded on the teacher's uci.go command loop
// shape (bufio.Scanner, per-token switch, a moves-replay loop matching UCI
// strings) trimmed down to what a pure generator driver needs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"kestrel/movegen"
)

func main() {
	variantFlag := flag.String("variant", "standard", "standard|anti|atomic|crazyhouse|horde|losers|race|relay")
	flag.Parse()

	variant, ok := variantNames[*variantFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -variant %q\n", *variantFlag)
		os.Exit(2)
	}

	noColor := !isatty.IsTerminal(os.Stdout.Fd())
	check := color.New(color.FgRed, color.Bold)
	if noColor {
		color.NoColor = true
	}

	pos, err := movegen.ParseFEN(startFENFor(variant), variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Println("id name Kestrel movegen driver")
			fmt.Println("id author kestrel")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			pos, _ = movegen.ParseFEN(startFENFor(variant), variant)
		case "quit":
			return
		case "position":
			p, err := applyPosition(variant, tokens[1:])
			if err != nil {
				fmt.Printf("info string %v\n", err)
				continue
			}
			pos = p
		case "go":
			handleGo(pos, tokens[1:])
		case "d":
			printBoard(pos, check)
		}
	}
}

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

// applyPosition replays a "position startpos|fen <fen> [moves ...]" command,
// matching each move token against the legal set by its UCI string, mirroring
// the teacher's position-replay loop in uci.go.
func applyPosition(v movegen.Variant, tokens []string) (*movegen.Position, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("malformed position command")
	}

	var pos *movegen.Position
	var err error
	idx := 1
	switch strings.ToLower(tokens[0]) {
	case "startpos":
		pos, err = movegen.ParseFEN(startFENFor(v), v)
	case "fen":
		end := len(tokens)
		for i := 1; i < len(tokens); i++ {
			if strings.ToLower(tokens[i]) == "moves" {
				end = i
				break
			}
		}
		if end <= 1 {
			return nil, fmt.Errorf("invalid fen position")
		}
		pos, err = movegen.ParseFEN(strings.Join(tokens[1:end], " "), v)
		idx = end
	default:
		return nil, fmt.Errorf("invalid position subcommand %q", tokens[0])
	}
	if err != nil {
		return nil, err
	}

	if idx >= len(tokens) || strings.ToLower(tokens[idx]) != "moves" {
		return pos, nil
	}
	for _, moveStr := range tokens[idx+1:] {
		moveStr = strings.ToLower(moveStr)
		legal := pos.GenerateLegal(make([]movegen.Move, 0, movegen.MaxMoves))
		found := false
		for _, m := range legal {
			if m.UCI() == moveStr {
				pos.MakeMove(m)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("illegal move in position command: %s", moveStr)
		}
	}
	return pos, nil
}

// handleGo only understands "go perft N"; search/evaluation are out of
// scope collaborators this driver never had.
func handleGo(pos *movegen.Position, tokens []string) {
	if len(tokens) < 2 || strings.ToLower(tokens[0]) != "perft" {
		fmt.Println("info string only 'go perft <depth>' is supported")
		return
	}
	depth, err := strconv.Atoi(tokens[1])
	if err != nil || depth <= 0 {
		fmt.Println("info string invalid perft depth")
		return
	}
	div := movegen.PerftDivide(pos, depth)
	var total uint64
	for m, n := range div {
		fmt.Printf("%s: %d\n", m.UCI(), n)
		total += n
	}
	fmt.Printf("Nodes searched: %d\n", total)
}

func printBoard(pos *movegen.Position, check *color.Color) {
	fmt.Print(pos.Draw())
	fmt.Printf("Fen: %s\n", pos.FEN())
	fmt.Printf("Key: %X\n", pos.Hash())
	if pos.HasCheckConcept() && pos.Checkers() != 0 {
		check.Println("Side to move is in check")
	}
}
