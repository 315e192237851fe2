package card

import (
	"fmt"
	"strings"

	"github.com/ratel-online/notepad/consts"
)

type Category int

const (
	Suspect Category = iota
	Weapon
	Room
)

var categoryNames = map[Category]string{
	Suspect: "Suspects",
	Weapon:  "Weapons",
	Room:    "Rooms",
}

// Categories returns the three categories in board order.
func Categories() []Category {
	return []Category{Suspect, Weapon, Room}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

type Card struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

func (c Card) String() string {
	return c.Name
}

// Vocabulary is the fixed, ordered set of cards in play. Index order is
// suspects, then weapons, then rooms, each in the order given.
type Vocabulary struct {
	cards  []Card
	index  map[string]int
	ranges [3][2]int
}

func NewVocabulary(suspects, weapons, rooms []string) (*Vocabulary, error) {
	v := &Vocabulary{index: map[string]int{}}
	for category, names := range [][]string{suspects, weapons, rooms} {
		if len(names) == 0 {
			return nil, fmt.Errorf("%w%s is empty", consts.ErrorsBoardInvalid, Category(category))
		}
		start := len(v.cards)
		for _, name := range names {
			name = strings.TrimSpace(name)
			key := strings.ToLower(name)
			if name == "" || strings.ContainsAny(name, " \t") {
				return nil, fmt.Errorf("%wcard name %q must be a single word", consts.ErrorsBoardInvalid, name)
			}
			if name == consts.NoOne {
				return nil, fmt.Errorf("%wcard name %q is reserved", consts.ErrorsBoardInvalid, name)
			}
			if _, dup := v.index[key]; dup {
				return nil, fmt.Errorf("%wduplicate card %q", consts.ErrorsBoardInvalid, name)
			}
			v.index[key] = len(v.cards)
			v.cards = append(v.cards, Card{Name: name, Category: Category(category)})
		}
		v.ranges[category] = [2]int{start, len(v.cards)}
	}
	return v, nil
}

// Classic is the standard board.
func Classic() *Vocabulary {
	v, err := NewVocabulary(ClassicSuspects, ClassicWeapons, ClassicRooms)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	ClassicSuspects = []string{"Mustard", "Plum", "Green", "Peacock", "Scarlet", "White"}
	ClassicWeapons  = []string{"Knife", "Candlestick", "Revolver", "Rope", "Pipe", "Wrench"}
	ClassicRooms    = []string{"Hall", "Lounge", "DiningRoom", "Kitchen", "Ballroom", "Conservatory", "BilliardRoom", "Library", "Study"}
)

func (v *Vocabulary) Len() int {
	return len(v.cards)
}

func (v *Vocabulary) Card(i int) Card {
	return v.cards[i]
}

func (v *Vocabulary) Cards() []Card {
	cards := make([]Card, len(v.cards))
	copy(cards, v.cards)
	return cards
}

// Index looks a card up by exact name, ignoring case.
func (v *Vocabulary) Index(name string) (int, bool) {
	i, ok := v.index[strings.ToLower(name)]
	return i, ok
}

func (v *Vocabulary) Lookup(name string) (Card, bool) {
	i, ok := v.Index(name)
	if !ok {
		return Card{}, false
	}
	return v.cards[i], true
}

// Range returns the half-open index range [start, end) of a category.
func (v *Vocabulary) Range(c Category) (int, int) {
	r := v.ranges[c]
	return r[0], r[1]
}

func (v *Vocabulary) InCategory(c Category) []Card {
	start, end := v.Range(c)
	cards := make([]Card, end-start)
	copy(cards, v.cards[start:end])
	return cards
}

func (v *Vocabulary) Names(c Category) []string {
	start, end := v.Range(c)
	names := make([]string, 0, end-start)
	for _, card := range v.cards[start:end] {
		names = append(names, card.Name)
	}
	return names
}

func (v *Vocabulary) AllNames() []string {
	names := make([]string, 0, len(v.cards))
	for _, card := range v.cards {
		names = append(names, card.Name)
	}
	return names
}
