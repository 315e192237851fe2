package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/clue/game"
	"github.com/ratel-online/notepad/consts"
	"github.com/ratel-online/notepad/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 18, 4, 5, 0, time.UTC)
	assert.Equal(t, "20240309_180405.clue", database.FileName(at))
}

func TestSaveAndLoad(t *testing.T) {
	setup := game.Setup{
		Board:   card.Classic(),
		Seating: []string{"Alice", "Bob", "Carol"},
		Self:    "Bob",
		Hand:    []string{"Knife", "Study"},
	}
	snapshot := database.NewSnapshot(setup, time.Date(2024, 3, 9, 18, 4, 5, 0, time.UTC))
	snapshot.Turns = append(snapshot.Turns, game.Turn{
		Question: game.Question{Suspect: "Plum", Weapon: "Rope", Room: "Hall"},
		Asker:    "Alice",
		Answerer: "Bob",
		Revealed: "Rope",
	})

	path := filepath.Join(t.TempDir(), "session.clue")
	store := database.NewStore(path, zap.NewNop())
	require.NoError(t, store.Save(snapshot))

	t.Run("round_trips", func(t *testing.T) {
		loaded, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, snapshot, loaded)
		assert.NotEmpty(t, loaded.SessionID)

		restored, err := loaded.Setup()
		require.NoError(t, err)
		assert.Equal(t, setup.Seating, restored.Seating)
		assert.Equal(t, setup.Board.Cards(), restored.Board.Cards())
	})

	t.Run("overwrites_in_place", func(t *testing.T) {
		snapshot.Turns = snapshot.Turns[:0]
		require.NoError(t, store.Save(snapshot))
		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, loaded.Turns)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestDecode(t *testing.T) {
	t.Run("unknown_version", func(t *testing.T) {
		_, err := database.Decode([]byte(`{"version": 99}`))
		require.ErrorIs(t, err, consts.ErrorsSnapshotVersion)
	})

	t.Run("not_json", func(t *testing.T) {
		_, err := database.Decode([]byte(`(dp0`))
		require.ErrorIs(t, err, consts.ErrorsSnapshotInvalid)
	})

	t.Run("self_not_seated", func(t *testing.T) {
		snapshot, err := database.Decode([]byte(`{
			"version": 1,
			"board": {"suspects": ["Plum"], "weapons": ["Rope"], "rooms": ["Hall"]},
			"players": ["Alice", "Bob"],
			"self": "Carol"
		}`))
		require.NoError(t, err)
		assert.Empty(t, snapshot.Turns)
		_, err = snapshot.Setup()
		require.ErrorIs(t, err, consts.ErrorsUnknownPlayer)
	})
	t.Run("turns_are_canonicalized", func(t *testing.T) {
		snapshot, err := database.Decode(withTurn(`{
			"question": {"suspect": "plum", "weapon": "ROPE", "room": "hall"},
			"asker": "Alice", "answerer": "Bob", "revealed": "rope"
		}`))
		require.NoError(t, err)
		require.Len(t, snapshot.Turns, 1)
		assert.Equal(t, "Alice Plum Rope Hall Bob Rope", snapshot.Turns[0].String())
	})

	scenarios := []struct {
		description string
		turn        string
		err         error
	}{
		{
			description: "revealed_card_not_asked",
			turn:        `{"question": {"suspect": "Plum", "weapon": "Rope", "room": "Hall"}, "asker": "Alice", "answerer": "Bob", "revealed": "Study"}`,
			err:         game.ErrRevealedNotAsked,
		},
		{
			description: "revealed_card_without_answerer",
			turn:        `{"question": {"suspect": "Green", "weapon": "Pipe", "room": "Hall"}, "asker": "Alice", "answerer": "-", "revealed": "Pipe"}`,
			err:         game.ErrRevealedWithoutAnswerer,
		},
		{
			description: "asker_answers_own_question",
			turn:        `{"question": {"suspect": "Plum", "weapon": "Rope", "room": "Hall"}, "asker": "Bob", "answerer": "Bob"}`,
			err:         game.ErrSelfAnswer,
		},
		{
			description: "card_in_wrong_slot",
			turn:        `{"question": {"suspect": "Rope", "weapon": "Plum", "room": "Hall"}, "asker": "Alice", "answerer": "Bob"}`,
			err:         consts.ErrorsInputInvalid,
		},
		{
			description: "card_not_on_board",
			turn:        `{"question": {"suspect": "Plum", "weapon": "Banana", "room": "Hall"}, "asker": "Alice", "answerer": "Bob"}`,
			err:         consts.ErrorsUnknownCard,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := database.Decode(withTurn(scenario.turn))
			require.ErrorIs(t, err, consts.ErrorsSnapshotInvalid)
			require.ErrorIs(t, err, scenario.err)
		})
	}
}

func withTurn(turn string) []byte {
	return []byte(fmt.Sprintf(`{
		"version": 1,
		"board": {"suspects": ["Plum", "Green"], "weapons": ["Rope", "Pipe"], "rooms": ["Hall", "Study"]},
		"players": ["Alice", "Bob", "Carol"],
		"self": "Alice",
		"turns": [%s]
	}`, turn))
}
