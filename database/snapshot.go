package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/clue/game"
	"github.com/ratel-online/notepad/consts"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Board struct {
	Suspects []string `json:"suspects"`
	Weapons  []string `json:"weapons"`
	Rooms    []string `json:"rooms"`
}

func BoardOf(v *card.Vocabulary) Board {
	return Board{
		Suspects: v.Names(card.Suspect),
		Weapons:  v.Names(card.Weapon),
		Rooms:    v.Names(card.Room),
	}
}

func (b Board) Vocabulary() (*card.Vocabulary, error) {
	return card.NewVocabulary(b.Suspects, b.Weapons, b.Rooms)
}

// Snapshot is everything needed to rebuild a session. Belief state is never
// stored; it is replayed from Turns.
type Snapshot struct {
	Version   int         `json:"version"`
	SessionID string      `json:"session_id"`
	CreatedAt time.Time   `json:"created_at"`
	Board     Board       `json:"board"`
	Players   []string    `json:"players"`
	Self      string      `json:"self"`
	Hand      []string    `json:"hand"`
	Turns     []game.Turn `json:"turns"`
}

func NewSnapshot(setup game.Setup, createdAt time.Time) Snapshot {
	return Snapshot{
		Version:   consts.SnapshotVersion,
		SessionID: uuid.NewString(),
		CreatedAt: createdAt.UTC(),
		Board:     BoardOf(setup.Board),
		Players:   setup.Seating,
		Self:      setup.Self,
		Hand:      setup.Hand,
		Turns:     []game.Turn{},
	}
}

// Setup rebuilds and validates the starting knowledge stored in the snapshot.
func (s Snapshot) Setup() (game.Setup, error) {
	board, err := s.Board.Vocabulary()
	if err != nil {
		return game.Setup{}, err
	}
	setup := game.Setup{
		Board:   board,
		Seating: s.Players,
		Self:    s.Self,
		Hand:    s.Hand,
	}
	if err := setup.Validate(); err != nil {
		return game.Setup{}, err
	}
	return setup, nil
}

// FileName names a session file by its start time.
func FileName(t time.Time) string {
	return t.Format(consts.SnapshotTimeLayout) + consts.SnapshotExt
}

type Store struct {
	path   string
	logger *zap.Logger
}

func NewStore(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string {
	return s.path
}

// Save overwrites the session file atomically.
func (s *Store) Save(snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return err
	}
	s.logger.Debug("snapshot saved", zap.String("path", s.path), zap.Int("turns", len(snapshot.Turns)))
	return nil
}

func (s *Store) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Snapshot{}, err
	}
	return Decode(data)
}

// Decode parses a session file. Every turn is put back through the turn
// construction rules; a malformed turn rejects the whole file.
func Decode(data []byte) (Snapshot, error) {
	probe := struct {
		Version int `json:"version"`
	}{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Snapshot{}, fmt.Errorf("%w%v", consts.ErrorsSnapshotInvalid, err)
	}
	if probe.Version != consts.SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%wgot %d, want %d", consts.ErrorsSnapshotVersion, probe.Version, consts.SnapshotVersion)
	}
	snapshot := Snapshot{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("%w%v", consts.ErrorsSnapshotInvalid, err)
	}
	if snapshot.Turns == nil {
		snapshot.Turns = []game.Turn{}
	}
	if len(snapshot.Turns) == 0 {
		return snapshot, nil
	}
	board, err := snapshot.Board.Vocabulary()
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w%w", consts.ErrorsSnapshotInvalid, err)
	}
	for i, turn := range snapshot.Turns {
		if snapshot.Turns[i], err = turn.Canonical(board); err != nil {
			return Snapshot{}, fmt.Errorf("%wturn %d: %w", consts.ErrorsSnapshotInvalid, i+1, err)
		}
	}
	return snapshot, nil
}
