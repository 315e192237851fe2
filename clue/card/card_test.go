package card_test

import (
	"testing"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassic(t *testing.T) {
	v := card.Classic()
	require.Equal(t, 21, v.Len())
	assert.Equal(t, card.ClassicSuspects, v.Names(card.Suspect))
	assert.Equal(t, card.ClassicWeapons, v.Names(card.Weapon))
	assert.Equal(t, card.ClassicRooms, v.Names(card.Room))

	start, end := v.Range(card.Weapon)
	assert.Equal(t, 6, start)
	assert.Equal(t, 12, end)
}

func TestIndex(t *testing.T) {
	v := card.Classic()

	i, ok := v.Index("knife")
	require.True(t, ok)
	assert.Equal(t, card.Card{Name: "Knife", Category: card.Weapon}, v.Card(i))

	_, ok = v.Index("Spanner")
	assert.False(t, ok)

	c, ok := v.Lookup("STUDY")
	require.True(t, ok)
	assert.Equal(t, card.Room, c.Category)
}

func TestNewVocabulary(t *testing.T) {
	scenarios := []struct {
		description string
		suspects    []string
		weapons     []string
		rooms       []string
	}{
		{
			description: "empty_category",
			suspects:    []string{"Mustard"},
			weapons:     nil,
			rooms:       []string{"Hall"},
		},
		{
			description: "duplicate_across_categories",
			suspects:    []string{"Mustard"},
			weapons:     []string{"mustard"},
			rooms:       []string{"Hall"},
		},
		{
			description: "name_with_space",
			suspects:    []string{"Colonel Mustard"},
			weapons:     []string{"Rope"},
			rooms:       []string{"Hall"},
		},
		{
			description: "reserved_name",
			suspects:    []string{"-"},
			weapons:     []string{"Rope"},
			rooms:       []string{"Hall"},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := card.NewVocabulary(scenario.suspects, scenario.weapons, scenario.rooms)
			require.ErrorIs(t, err, consts.ErrorsBoardInvalid)
		})
	}
}

func TestCardsIsACopy(t *testing.T) {
	v := card.Classic()
	cards := v.Cards()
	cards[0].Name = "Changed"
	assert.Equal(t, "Mustard", v.Card(0).Name)
}

func TestVocabularyInCategory(t *testing.T) {
	v, err := card.NewVocabulary([]string{"Plum", "Green"}, []string{"Rope"}, []string{"Hall"})
	require.NoError(t, err)

	suspects := v.InCategory(card.Suspect)
	assert.Equal(t, []card.Card{{Name: "Plum", Category: card.Suspect}, {Name: "Green", Category: card.Suspect}}, suspects)

	suspects[0].Name = "Changed"
	assert.Equal(t, "Plum", v.InCategory(card.Suspect)[0].Name)
}
