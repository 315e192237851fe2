// Package session drives one game of note taking: setup prompts, the turn
// loop, undo and contradiction recovery. It owns the turn log; the belief
// state is rebuilt from scratch for every display.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/clue/event"
	"github.com/ratel-online/notepad/clue/game"
	"github.com/ratel-online/notepad/clue/resolve"
	"github.com/ratel-online/notepad/database"
	"github.com/ratel-online/notepad/render"
)

const (
	turnPrompt = "Enter turn as 'asker person weapon room answerer [card]': "
	helpText   = `Commands:
  asker person weapon room answerer [card]   record a turn ('-' when no one answered)
  undo                                       remove the last turn
  turns                                      list recorded turns
  help                                       show this help
End of input (Ctrl-D) ends the session.`
)

type Options struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool
	Logger      *zap.Logger
}

type Session struct {
	setup    game.Setup
	log      *game.TurnLog
	snapshot database.Snapshot
	ui       *prompter
	logger   *zap.Logger

	TurnRecorded *event.TurnRecordedEmitter
	BoardRebuilt *event.BoardRebuiltEmitter
}

func newSession(snapshot database.Snapshot, setup game.Setup, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		setup:        setup,
		log:          game.NewTurnLog(snapshot.Turns...),
		snapshot:     snapshot,
		ui:           newPrompter(opts.In, opts.Out, opts.Interactive),
		logger:       logger.With(zap.String("session", snapshot.SessionID)),
		TurnRecorded: event.NewTurnRecordedEmitter(),
		BoardRebuilt: event.NewBoardRebuiltEmitter(),
	}
}

// Start prompts for seating order, self and hand and returns a fresh session.
func Start(board *card.Vocabulary, opts Options) (*Session, error) {
	ui := newPrompter(opts.In, opts.Out, opts.Interactive)
	setup, err := promptSetup(ui, board)
	if err != nil {
		return nil, err
	}
	s := newSession(database.NewSnapshot(setup, time.Now()), setup, opts)
	s.ui = ui
	s.logger.Info("session started", zap.Strings("players", setup.Seating), zap.String("self", setup.Self))
	return s, nil
}

// Resume continues a saved session.
func Resume(snapshot database.Snapshot, opts Options) (*Session, error) {
	setup, err := snapshot.Setup()
	if err != nil {
		return nil, err
	}
	s := newSession(snapshot, setup, opts)
	s.logger.Info("session resumed", zap.Int("turns", s.log.Len()))
	return s, nil
}

func promptSetup(ui *prompter, board *card.Vocabulary) (game.Setup, error) {
	setup := game.Setup{Board: board}
	for {
		line, err := ui.PromptString("Enter all player names, clockwise and space-delimited: ")
		if err != nil {
			return setup, err
		}
		if setup.Seating, err = resolve.ParseNames(line); err != nil {
			ui.Println(err)
			continue
		}
		break
	}
	for {
		line, err := ui.PromptString(fmt.Sprintf("Which player are you (%s)? ", strings.Join(setup.Seating, ", ")))
		if err != nil {
			return setup, err
		}
		if setup.Self, err = resolve.FindBest(line, setup.Seating); err != nil {
			ui.Println(err)
			continue
		}
		break
	}
	for {
		line, err := ui.PromptString("Enter your cards, space-delimited: ")
		if err != nil {
			return setup, err
		}
		if setup.Hand, err = resolve.ParseHand(line, board); err != nil {
			ui.Println(err)
			continue
		}
		if err = setup.Validate(); err != nil {
			ui.Println(err)
			continue
		}
		break
	}
	ui.Printfln("You are %s holding %s", setup.Self, strings.Join(setup.Hand, ", "))
	return setup, nil
}

func (s *Session) Setup() game.Setup {
	return s.setup
}

func (s *Session) Turns() []game.Turn {
	return s.log.List()
}

// Snapshot is the current durable state.
func (s *Session) Snapshot() database.Snapshot {
	snapshot := s.snapshot
	snapshot.Turns = s.log.List()
	return snapshot
}

// Rebuild replays the full history and notifies BoardRebuilt listeners.
func (s *Session) Rebuild() (*game.BeliefState, error) {
	state, err := game.Rebuild(s.setup, s.log.List(), s.logger)
	s.BoardRebuilt.Emit(event.BoardRebuiltPayload{Turns: s.log.Len(), State: state, Err: err})
	return state, err
}

// Run shows the board and reads turns until end of input.
func (s *Session) Run() error {
	for {
		state, err := s.Rebuild()
		if err != nil {
			undone, uerr := s.recover(err)
			if uerr != nil {
				return ignoreEOF(uerr)
			}
			if undone {
				continue
			}
		} else if err := render.Board(s.ui.out, state); err != nil {
			return err
		}

		line, err := s.ui.PromptString(turnPrompt)
		if err != nil {
			return ignoreEOF(err)
		}
		s.handle(line)
	}
}

func (s *Session) handle(line string) {
	switch strings.ToLower(line) {
	case "":
	case "undo":
		if err := s.UndoLast(); err != nil {
			_ = render.Error(s.ui.out, err)
		}
	case "turns":
		_ = render.Turns(s.ui.out, s.log.List())
	case "help", "?":
		s.ui.Println(helpText)
	default:
		turn, err := resolve.ParseTurn(line, s.setup.Board, s.setup.Seating)
		if err != nil {
			s.logger.Debug("could not parse turn", zap.String("input", line), zap.Error(err))
			_ = render.Error(s.ui.out, fmt.Errorf("couldn't parse input: %w", err))
			return
		}
		s.Add(turn)
	}
}

func (s *Session) Add(turn game.Turn) {
	s.log.Add(turn)
	s.logger.Debug("turn added", zap.Stringer("turn", turn))
	s.TurnRecorded.Emit(event.TurnRecordedPayload{Number: s.log.Len(), Turn: turn})
}

func (s *Session) UndoLast() error {
	turn, err := s.log.UndoLast()
	if err != nil {
		return err
	}
	s.ui.Printfln("Removed turn %d: %s", s.log.Len()+1, turn)
	s.TurnRecorded.Emit(event.TurnRecordedPayload{Number: s.log.Len() + 1, Turn: turn, Undone: true})
	return nil
}

// recover reports a failed rebuild and offers to drop the latest turn.
func (s *Session) recover(err error) (bool, error) {
	_ = render.Contradiction(s.ui.out, err)
	var contradiction *game.Contradiction
	if !errors.As(err, &contradiction) || s.log.Empty() {
		return false, nil
	}
	undo, perr := s.ui.PromptConfirm("Undo last turn?")
	if perr != nil {
		return false, perr
	}
	if !undo {
		return false, nil
	}
	return true, s.UndoLast()
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
