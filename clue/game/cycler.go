package game

import (
	"fmt"

	"github.com/ratel-online/notepad/consts"
)

// Cycler walks the seating order clockwise, wrapping at the end.
type Cycler struct {
	elements []string
	current  int
}

func NewCycler(elements []string) *Cycler {
	return &Cycler{
		elements: elements,
		current:  len(elements) - 1,
	}
}

func (c *Cycler) Current() string {
	return c.elements[c.current]
}

func (c *Cycler) Next() string {
	elementCount := len(c.elements)
	c.current = (c.current + 1) % elementCount
	return c.elements[c.current]
}

// Seek positions the cycler on element so that Next returns its left-hand neighbour.
func (c *Cycler) Seek(element string) bool {
	i := c.Index(element)
	if i < 0 {
		return false
	}
	c.current = i
	return true
}

func (c *Cycler) Index(element string) int {
	for i, e := range c.elements {
		if e == element {
			return i
		}
	}
	return -1
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

// Between returns the players seated strictly between asker and answerer,
// clockwise from the asker. When answerer is consts.NoOne every other player
// was asked, so the result is everyone but the asker.
func (c *Cycler) Between(asker, answerer string) ([]string, error) {
	if !c.Seek(asker) {
		return nil, fmt.Errorf("%w%q is not seated", consts.ErrorsUnknownPlayer, asker)
	}
	if answerer != consts.NoOne && c.Index(answerer) < 0 {
		return nil, fmt.Errorf("%w%q is not seated", consts.ErrorsUnknownPlayer, answerer)
	}
	players := make([]string, 0, c.Len()-1)
	for i := 1; i < c.Len(); i++ {
		player := c.Next()
		if player == answerer {
			break
		}
		players = append(players, player)
	}
	return players, nil
}
