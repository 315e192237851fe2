package event

import "github.com/ratel-online/notepad/clue/game"

// BoardRebuiltPayload carries either a fresh state or the contradiction that
// prevented one.
type BoardRebuiltPayload struct {
	Turns int
	State *game.BeliefState
	Err   error
}

type BoardRebuiltListener interface {
	OnBoardRebuilt(BoardRebuiltPayload)
}

type BoardRebuiltEmitter struct {
	listeners []BoardRebuiltListener
}

func NewBoardRebuiltEmitter() *BoardRebuiltEmitter {
	return &BoardRebuiltEmitter{}
}

func (e *BoardRebuiltEmitter) AddListener(listener BoardRebuiltListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *BoardRebuiltEmitter) Emit(payload BoardRebuiltPayload) {
	for _, listener := range e.listeners {
		listener.OnBoardRebuilt(payload)
	}
}
