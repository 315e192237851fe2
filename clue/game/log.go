package game

import (
	"github.com/ratel-online/notepad/consts"
)

// TurnLog is the append-only turn history, oldest first.
type TurnLog struct {
	turns []Turn
}

func NewTurnLog(turns ...Turn) *TurnLog {
	l := &TurnLog{turns: make([]Turn, 0, len(turns)+16)}
	l.turns = append(l.turns, turns...)
	return l
}

func (l *TurnLog) Add(turn Turn) {
	l.turns = append(l.turns, turn)
}

// UndoLast drops the most recent turn and returns it.
func (l *TurnLog) UndoLast() (Turn, error) {
	if len(l.turns) == 0 {
		return Turn{}, consts.ErrorsEmptyLog
	}
	last := l.turns[len(l.turns)-1]
	l.turns = l.turns[:len(l.turns)-1]
	return last, nil
}

func (l *TurnLog) List() []Turn {
	turns := make([]Turn, len(l.turns))
	copy(turns, l.turns)
	return turns
}

func (l *TurnLog) Len() int {
	return len(l.turns)
}

func (l *TurnLog) Empty() bool {
	return len(l.turns) == 0
}
