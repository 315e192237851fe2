package session

import (
	"go.uber.org/zap"

	"github.com/ratel-online/notepad/clue/event"
	"github.com/ratel-online/notepad/database"
	"github.com/ratel-online/notepad/render"
)

type snapshotWriter struct {
	session *Session
	store   *database.Store
}

func (w *snapshotWriter) OnTurnRecorded(payload event.TurnRecordedPayload) {
	if err := w.store.Save(w.session.Snapshot()); err != nil {
		w.session.logger.Error("snapshot save failed", zap.String("path", w.store.Path()), zap.Error(err))
		_ = render.Error(w.session.ui.out, err)
	}
}

// PersistTo writes the session to store now and after every recorded or
// undone turn.
func (s *Session) PersistTo(store *database.Store) error {
	if err := store.Save(s.Snapshot()); err != nil {
		return err
	}
	s.TurnRecorded.AddListener(&snapshotWriter{session: s, store: store})
	s.logger.Info("session file", zap.String("path", store.Path()))
	return nil
}
