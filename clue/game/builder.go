package game

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/consts"
)

// Setup is the fixed starting knowledge of a session.
type Setup struct {
	Board   *card.Vocabulary
	Seating []string
	Self    string
	Hand    []string
}

// Validate checks the seating order, self and hand against the board.
func (s Setup) Validate() error {
	if s.Board == nil {
		return fmt.Errorf("%wno board", consts.ErrorsBoardInvalid)
	}
	if len(s.Seating) < consts.MinPlayers || len(s.Seating) > consts.MaxPlayers {
		return fmt.Errorf("%wneed %d to %d players, got %d", consts.ErrorsPlayersInvalid, consts.MinPlayers, consts.MaxPlayers, len(s.Seating))
	}
	seen := map[string]bool{}
	for _, p := range s.Seating {
		key := strings.ToLower(p)
		if p == "" || p == consts.NoOne || seen[key] {
			return fmt.Errorf("%winvalid or duplicate player %q", consts.ErrorsPlayersInvalid, p)
		}
		seen[key] = true
	}
	if NewCycler(s.Seating).Index(s.Self) < 0 {
		return fmt.Errorf("%w%q is not seated", consts.ErrorsUnknownPlayer, s.Self)
	}
	for _, name := range s.Hand {
		if _, ok := s.Board.Index(name); !ok {
			return fmt.Errorf("%w%q", consts.ErrorsUnknownCard, name)
		}
	}
	return nil
}

type builder struct {
	state  *BeliefState
	logger *zap.Logger
	turn   int
}

// Rebuild replays the whole history from scratch. A logically inconsistent
// history fails with a *Contradiction and no state.
func Rebuild(setup Setup, turns []Turn, logger *zap.Logger) (*BeliefState, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	b := &builder{
		state:  newBeliefState(setup.Board, setup.Seating),
		logger: logger,
	}
	if err := b.seed(setup); err != nil {
		return nil, b.fail(err)
	}
	cycler := NewCycler(setup.Seating)
	for i, turn := range turns {
		b.turn = i + 1
		if err := b.apply(cycler, setup.Self, turn); err != nil {
			return nil, b.fail(err)
		}
	}
	b.turn = 0
	if err := b.validate(); err != nil {
		return nil, b.fail(err)
	}
	logger.Debug("belief state rebuilt", zap.Int("turns", len(turns)), zap.Int("players", len(setup.Seating)))
	return b.state, nil
}

func (b *builder) fail(err error) error {
	if c, ok := err.(*Contradiction); ok {
		b.logger.Warn("contradiction",
			zap.String("kind", c.Kind.String()),
			zap.Strings("cards", c.Cards),
			zap.Strings("players", c.Players),
			zap.Int("turn", c.Turn))
	}
	return err
}

func (b *builder) seed(setup Setup) error {
	self := b.state.seats[setup.Self]
	held := make(map[int]bool, len(setup.Hand))
	for _, name := range setup.Hand {
		c, _ := setup.Board.Index(name)
		held[c] = true
	}
	for c := 0; c < setup.Board.Len(); c++ {
		var err error
		if held[c] {
			err = b.setYes(c, self)
		} else {
			err = b.setNo(c, self)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) apply(cycler *Cycler, self string, turn Turn) error {
	turn, err := turn.Canonical(b.state.vocab)
	if err != nil {
		return fmt.Errorf("turn %d: %w", b.turn, err)
	}
	cards := make([]int, 0, 3)
	for _, name := range turn.Question.Cards() {
		c, ok := b.state.vocab.Index(name)
		if !ok {
			return fmt.Errorf("turn %d: %w%q", b.turn, consts.ErrorsUnknownCard, name)
		}
		cards = append(cards, c)
	}
	between, err := cycler.Between(turn.Asker, turn.Answerer)
	if err != nil {
		return fmt.Errorf("turn %d: %w", b.turn, err)
	}
	for _, player := range between {
		p := b.state.seats[player]
		for _, c := range cards {
			if err := b.setNo(c, p); err != nil {
				return err
			}
		}
	}
	if !turn.Answered() || turn.Answerer == self {
		return nil
	}
	answerer := b.state.seats[turn.Answerer]
	if turn.Revealed != "" {
		c, ok := b.state.vocab.Index(turn.Revealed)
		if !ok {
			return fmt.Errorf("turn %d: %w%q", b.turn, consts.ErrorsUnknownCard, turn.Revealed)
		}
		return b.setYes(c, answerer)
	}
	for _, c := range cards {
		b.setMaybe(c, answerer)
	}
	return nil
}

func (b *builder) setYes(c, p int) error {
	switch have := b.state.At(c, p); have {
	case No:
		return b.conflict(c, p, have, Yes)
	case Yes:
		return nil
	}
	b.state.set(c, p, Yes)
	b.trace(c, p, Yes)
	for other := range b.state.players {
		if other == p {
			continue
		}
		// Unreachable while every Yes cascades No to the other players.
		if b.state.At(c, other) == Yes {
			return &Contradiction{
				Kind:    KindExclusivity,
				Cards:   []string{b.state.vocab.Card(c).Name},
				Players: []string{b.state.players[p], b.state.players[other]},
				Have:    Yes,
				Want:    No,
				Turn:    b.turn,
			}
		}
		if err := b.setNo(c, other); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) setNo(c, p int) error {
	switch have := b.state.At(c, p); have {
	case Yes:
		return b.conflict(c, p, have, No)
	case No:
		return nil
	}
	b.state.set(c, p, No)
	b.trace(c, p, No)
	return nil
}

// setMaybe never overrides Yes or No.
func (b *builder) setMaybe(c, p int) {
	if b.state.At(c, p) != Unknown {
		return
	}
	b.state.set(c, p, Maybe)
	b.trace(c, p, Maybe)
}

func (b *builder) conflict(c, p int, have, want Status) error {
	return &Contradiction{
		Kind:    KindConflict,
		Cards:   []string{b.state.vocab.Card(c).Name},
		Players: []string{b.state.players[p]},
		Have:    have,
		Want:    want,
		Turn:    b.turn,
	}
}

func (b *builder) trace(c, p int, s Status) {
	if ce := b.logger.Check(zap.DebugLevel, "assert"); ce != nil {
		ce.Write(
			zap.Int("turn", b.turn),
			zap.String("card", b.state.vocab.Card(c).Name),
			zap.String("player", b.state.players[p]),
			zap.Stringer("status", s))
	}
}

// validate enforces card exclusivity and solution uniqueness over the
// finished matrix. The exclusivity pass is a safety net behind the setYes
// cascade.
func (b *builder) validate() error {
	vocab := b.state.vocab
	for c := 0; c < vocab.Len(); c++ {
		var owners []string
		for p, player := range b.state.players {
			if b.state.At(c, p) == Yes {
				owners = append(owners, player)
			}
		}
		if len(owners) > 1 {
			return &Contradiction{
				Kind:    KindExclusivity,
				Cards:   []string{vocab.Card(c).Name},
				Players: owners,
				Have:    Yes,
				Want:    No,
			}
		}
	}
	for _, category := range card.Categories() {
		start, end := vocab.Range(category)
		var unheld []string
		for c := start; c < end; c++ {
			if b.state.Unheld(c) {
				unheld = append(unheld, vocab.Card(c).Name)
			}
		}
		if len(unheld) > 1 {
			return &Contradiction{
				Kind:    KindSolution,
				Cards:   unheld,
				Players: b.state.Players(),
				Have:    No,
				Want:    No,
			}
		}
	}
	return nil
}
