package event

import "github.com/ratel-online/notepad/clue/game"

type TurnRecordedPayload struct {
	Number int
	Turn   game.Turn
	Undone bool
}

type TurnRecordedListener interface {
	OnTurnRecorded(TurnRecordedPayload)
}

type TurnRecordedEmitter struct {
	listeners []TurnRecordedListener
}

func NewTurnRecordedEmitter() *TurnRecordedEmitter {
	return &TurnRecordedEmitter{}
}

func (e *TurnRecordedEmitter) AddListener(listener TurnRecordedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnRecordedEmitter) Emit(payload TurnRecordedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnRecorded(payload)
	}
}
