package game

import (
	"github.com/ratel-online/notepad/clue/card"
)

type Status int

const (
	Unknown Status = iota
	Yes
	No
	Maybe
)

var statusNames = map[Status]string{
	Unknown: "Unknown",
	Yes:     "Yes",
	No:      "No",
	Maybe:   "Maybe",
}

func (s Status) String() string {
	return statusNames[s]
}

// BeliefState is the card x player knowledge matrix produced by Rebuild.
type BeliefState struct {
	vocab   *card.Vocabulary
	players []string
	seats   map[string]int
	cells   []Status
}

func newBeliefState(v *card.Vocabulary, players []string) *BeliefState {
	seats := make(map[string]int, len(players))
	for i, p := range players {
		seats[p] = i
	}
	ps := make([]string, len(players))
	copy(ps, players)
	return &BeliefState{
		vocab:   v,
		players: ps,
		seats:   seats,
		cells:   make([]Status, v.Len()*len(players)),
	}
}

func (b *BeliefState) Vocabulary() *card.Vocabulary {
	return b.vocab
}

func (b *BeliefState) Players() []string {
	players := make([]string, len(b.players))
	copy(players, b.players)
	return players
}

// At reads a cell by card and seat index.
func (b *BeliefState) At(c, p int) Status {
	return b.cells[c*len(b.players)+p]
}

func (b *BeliefState) set(c, p int, s Status) {
	b.cells[c*len(b.players)+p] = s
}

// Get reads a cell by name. Unknown names read as Unknown.
func (b *BeliefState) Get(cardName, player string) Status {
	c, ok := b.vocab.Index(cardName)
	if !ok {
		return Unknown
	}
	p, ok := b.seats[player]
	if !ok {
		return Unknown
	}
	return b.At(c, p)
}

// Owner returns the player marked Yes for the card, if any.
func (b *BeliefState) Owner(cardName string) (string, bool) {
	players := b.playersWith(cardName, Yes)
	if len(players) == 0 {
		return "", false
	}
	return players[0], true
}

func (b *BeliefState) NoPlayers(cardName string) []string {
	return b.playersWith(cardName, No)
}

func (b *BeliefState) MaybePlayers(cardName string) []string {
	return b.playersWith(cardName, Maybe)
}

func (b *BeliefState) playersWith(cardName string, s Status) []string {
	c, ok := b.vocab.Index(cardName)
	if !ok {
		return nil
	}
	var players []string
	for p, player := range b.players {
		if b.At(c, p) == s {
			players = append(players, player)
		}
	}
	return players
}

// Unheld reports whether every player is No for the card.
func (b *BeliefState) Unheld(c int) bool {
	for p := range b.players {
		if b.At(c, p) != No {
			return false
		}
	}
	return true
}

// Solution returns the card of the category that no player holds.
func (b *BeliefState) Solution(category card.Category) (card.Card, bool) {
	start, end := b.vocab.Range(category)
	for c := start; c < end; c++ {
		if b.Unheld(c) {
			return b.vocab.Card(c), true
		}
	}
	return card.Card{}, false
}

func (b *BeliefState) Equal(other *BeliefState) bool {
	if other == nil || len(b.players) != len(other.players) || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.players {
		if b.players[i] != other.players[i] {
			return false
		}
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
