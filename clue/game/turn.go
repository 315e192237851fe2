package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/consts"
)

var (
	ErrRevealedNotAsked        = errors.New("revealed card must be one from the question")
	ErrRevealedWithoutAnswerer = errors.New("a card cannot be revealed when no one answered")
	ErrSelfAnswer              = errors.New("asker cannot answer their own question")
	ErrMissingAsker            = errors.New("asker is required")
)

// Question names one card of each category.
type Question struct {
	Suspect string `json:"suspect"`
	Weapon  string `json:"weapon"`
	Room    string `json:"room"`
}

func NewQuestion(v *card.Vocabulary, suspect, weapon, room string) (Question, error) {
	q := Question{}
	for _, slot := range []struct {
		name     string
		category card.Category
		into     *string
	}{
		{suspect, card.Suspect, &q.Suspect},
		{weapon, card.Weapon, &q.Weapon},
		{room, card.Room, &q.Room},
	} {
		c, ok := v.Lookup(slot.name)
		if !ok {
			return Question{}, fmt.Errorf("%w%q", consts.ErrorsUnknownCard, slot.name)
		}
		if c.Category != slot.category {
			return Question{}, fmt.Errorf("%w%q is not one of the %s", consts.ErrorsInputInvalid, c.Name, slot.category)
		}
		*slot.into = c.Name
	}
	return q, nil
}

func (q Question) Cards() []string {
	return []string{q.Suspect, q.Weapon, q.Room}
}

func (q Question) Contains(name string) bool {
	_, ok := q.find(name)
	return ok
}

func (q Question) find(name string) (string, bool) {
	for _, c := range q.Cards() {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

func (q Question) String() string {
	return strings.Join(q.Cards(), " ")
}

// Turn is one recorded question and its answer. Revealed is empty unless the
// answerer showed a card to us.
type Turn struct {
	Question Question `json:"question"`
	Asker    string   `json:"asker"`
	Answerer string   `json:"answerer"`
	Revealed string   `json:"revealed,omitempty"`
}

func NewTurn(question Question, asker, answerer, revealed string) (Turn, error) {
	if asker == "" {
		return Turn{}, ErrMissingAsker
	}
	if answerer == "" {
		answerer = consts.NoOne
	}
	if answerer == asker {
		return Turn{}, ErrSelfAnswer
	}
	if revealed != "" {
		if answerer == consts.NoOne {
			return Turn{}, ErrRevealedWithoutAnswerer
		}
		canonical, ok := question.find(revealed)
		if !ok {
			return Turn{}, fmt.Errorf("%w: %s not in (%s)", ErrRevealedNotAsked, revealed, question)
		}
		revealed = canonical
	}
	return Turn{
		Question: question,
		Asker:    asker,
		Answerer: answerer,
		Revealed: revealed,
	}, nil
}

// Canonical re-applies the construction rules to a turn that did not come
// from NewTurn, such as one decoded from a session file.
func (t Turn) Canonical(v *card.Vocabulary) (Turn, error) {
	question, err := NewQuestion(v, t.Question.Suspect, t.Question.Weapon, t.Question.Room)
	if err != nil {
		return Turn{}, err
	}
	return NewTurn(question, t.Asker, t.Answerer, t.Revealed)
}

func (t Turn) Answered() bool {
	return t.Answerer != consts.NoOne
}

func (t Turn) String() string {
	parts := []string{t.Asker, t.Question.String(), t.Answerer}
	if t.Revealed != "" {
		parts = append(parts, t.Revealed)
	}
	return strings.Join(parts, " ")
}
