package game

import (
	"fmt"
	"strings"
)

type ContradictionKind int

const (
	// KindConflict: one cell asserted both Yes and No.
	KindConflict ContradictionKind = iota + 1
	// KindExclusivity: one card held by two players.
	KindExclusivity
	// KindSolution: two cards of a category held by nobody.
	KindSolution
)

var contradictionKindNames = map[ContradictionKind]string{
	KindConflict:    "conflict",
	KindExclusivity: "exclusivity",
	KindSolution:    "solution",
}

func (k ContradictionKind) String() string {
	return contradictionKindNames[k]
}

// Contradiction means the turn history is logically inconsistent. Turn is the
// 1-based number of the turn being replayed, or 0 when the violation came from
// the starting hand or the final consistency check.
type Contradiction struct {
	Kind    ContradictionKind
	Cards   []string
	Players []string
	Have    Status
	Want    Status
	Turn    int
}

func (c *Contradiction) Card() string {
	if len(c.Cards) == 0 {
		return ""
	}
	return c.Cards[0]
}

func (c *Contradiction) Error() string {
	var msg string
	switch c.Kind {
	case KindConflict:
		msg = fmt.Sprintf("%s for %s is already %s, cannot become %s", c.Card(), strings.Join(c.Players, ", "), c.Have, c.Want)
	case KindExclusivity:
		msg = fmt.Sprintf("%s cannot be held by both %s", c.Card(), strings.Join(c.Players, " and "))
	case KindSolution:
		msg = fmt.Sprintf("more than one card is held by no one: %s", strings.Join(c.Cards, ", "))
	default:
		msg = "unknown contradiction"
	}
	if c.Turn > 0 {
		return fmt.Sprintf("contradiction at turn %d: %s", c.Turn, msg)
	}
	return "contradiction: " + msg
}
