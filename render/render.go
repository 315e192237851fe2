package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/clue/game"
)

var (
	paintYes      = color.New(color.FgHiGreen).SprintFunc()
	paintNo       = color.New(color.FgHiRed).SprintFunc()
	paintMaybe    = color.New(color.FgHiYellow).SprintFunc()
	paintSolution = color.New(color.FgHiMagenta, color.Bold).SprintFunc()
	paintHeader   = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	paintError    = color.New(color.FgHiRed, color.Bold).SprintFunc()
)

var symbols = map[game.Status]string{
	game.Unknown: "",
	game.Yes:     "Y",
	game.No:      "-",
	game.Maybe:   "?",
}

func paint(s game.Status, cell string) string {
	switch s {
	case game.Yes:
		return paintYes(cell)
	case game.No:
		return paintNo(cell)
	case game.Maybe:
		return paintMaybe(cell)
	}
	return cell
}

// Board prints the belief matrix, one row per card and one column per player.
func Board(w io.Writer, state *game.BeliefState) error {
	vocab := state.Vocabulary()
	players := state.Players()

	cardWidth := 0
	for _, c := range vocab.Cards() {
		if len(c.Name) > cardWidth {
			cardWidth = len(c.Name)
		}
	}
	cardWidth += 4
	widths := make([]int, len(players))
	for i, p := range players {
		widths[i] = len(p) + 2
		if widths[i] < 5 {
			widths[i] = 5
		}
	}

	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-*s", cardWidth, ""))
	for i, p := range players {
		buf.WriteString(fmt.Sprintf("%-*s", widths[i], p))
	}
	buf.WriteString("\n")

	for _, category := range card.Categories() {
		buf.WriteString(paintHeader(category.String()))
		buf.WriteString("\n")
		start, _ := vocab.Range(category)
		for i, cd := range vocab.InCategory(category) {
			c := start + i
			name := fmt.Sprintf("  %-*s", cardWidth-2, cd.Name)
			solved := state.Unheld(c)
			if solved {
				name = paintSolution(name)
			}
			buf.WriteString(name)
			for p := range players {
				s := state.At(c, p)
				buf.WriteString(paint(s, fmt.Sprintf("%-*s", widths[p], symbols[s])))
			}
			if solved {
				buf.WriteString(paintSolution("<= solution"))
			}
			buf.WriteString("\n")
		}
	}

	summary := make([]string, 0, 3)
	for _, category := range card.Categories() {
		name := "?"
		if solution, ok := state.Solution(category); ok {
			name = paintSolution(solution.Name)
		}
		summary = append(summary, fmt.Sprintf("%s=%s", category, name))
	}
	buf.WriteString(fmt.Sprintf("Solution: %s\n", strings.Join(summary, ", ")))

	_, err := w.Write(buf.Bytes())
	return err
}

// Turns prints the turn history numbered from 1.
func Turns(w io.Writer, turns []game.Turn) error {
	buf := bytes.Buffer{}
	if len(turns) == 0 {
		buf.WriteString("No turns recorded.\n")
	}
	for i, turn := range turns {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, turn))
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Contradiction explains why the history cannot be replayed.
func Contradiction(w io.Writer, err error) error {
	buf := bytes.Buffer{}
	var contradiction *game.Contradiction
	if !errors.As(err, &contradiction) {
		buf.WriteString(paintError(err.Error()))
		buf.WriteString("\n")
		_, werr := w.Write(buf.Bytes())
		return werr
	}
	buf.WriteString(paintError(contradiction.Error()))
	buf.WriteString("\n")
	buf.WriteString(fmt.Sprintf("%-10s%s\n", "Kind", contradiction.Kind))
	buf.WriteString(fmt.Sprintf("%-10s%s\n", "Cards", strings.Join(contradiction.Cards, ", ")))
	buf.WriteString(fmt.Sprintf("%-10s%s\n", "Players", strings.Join(contradiction.Players, ", ")))
	if contradiction.Turn > 0 {
		buf.WriteString(fmt.Sprintf("%-10s%d\n", "Turn", contradiction.Turn))
	}
	_, werr := w.Write(buf.Bytes())
	return werr
}

func Error(w io.Writer, err error) error {
	_, werr := fmt.Fprintln(w, paintError(err.Error()))
	return werr
}
