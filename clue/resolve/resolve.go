// Package resolve turns free-text input into canonical player and card names.
package resolve

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ratel-online/notepad/clue/card"
	"github.com/ratel-online/notepad/clue/game"
	"github.com/ratel-online/notepad/consts"
)

// FindBest returns the candidate closest to token by case-insensitive edit
// distance. Ties go to the earlier candidate.
func FindBest(token string, candidates []string) (string, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", fmt.Errorf("%wempty name", consts.ErrorsInputInvalid)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%wnothing to match %q against", consts.ErrorsInputInvalid, token)
	}
	best, bestDistance := 0, -1
	for i, candidate := range candidates {
		distance := levenshtein.ComputeDistance(token, strings.ToLower(candidate))
		if bestDistance < 0 || distance < bestDistance {
			best, bestDistance = i, distance
		}
	}
	return candidates[best], nil
}

// ParseTurn reads "asker person weapon room answerer [card]".
func ParseTurn(line string, v *card.Vocabulary, players []string) (game.Turn, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 && len(fields) != 6 {
		return game.Turn{}, fmt.Errorf("%wexpected 'asker person weapon room answerer [card]', got %d words", consts.ErrorsInputInvalid, len(fields))
	}
	asker, err := FindBest(fields[0], players)
	if err != nil {
		return game.Turn{}, err
	}
	var names [3]string
	for i, category := range card.Categories() {
		if names[i], err = FindBest(fields[i+1], v.Names(category)); err != nil {
			return game.Turn{}, err
		}
	}
	question, err := game.NewQuestion(v, names[0], names[1], names[2])
	if err != nil {
		return game.Turn{}, err
	}
	answerer, err := FindBest(fields[4], append(append([]string{}, players...), consts.NoOne))
	if err != nil {
		return game.Turn{}, err
	}
	var revealed string
	if len(fields) == 6 {
		if revealed, err = FindBest(fields[5], v.AllNames()); err != nil {
			return game.Turn{}, err
		}
	}
	turn, err := game.NewTurn(question, asker, answerer, revealed)
	if err != nil {
		return game.Turn{}, fmt.Errorf("%w%w", consts.ErrorsInputInvalid, err)
	}
	return turn, nil
}

// ParseNames reads the clockwise seating order.
func ParseNames(line string) ([]string, error) {
	names := strings.Fields(line)
	if len(names) < consts.MinPlayers || len(names) > consts.MaxPlayers {
		return nil, fmt.Errorf("%wneed %d to %d players", consts.ErrorsPlayersInvalid, consts.MinPlayers, consts.MaxPlayers)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if name == consts.NoOne || seen[key] {
			return nil, fmt.Errorf("%winvalid or duplicate player %q", consts.ErrorsPlayersInvalid, name)
		}
		seen[key] = true
	}
	return names, nil
}

// ParseHand resolves every word of line to a card. Repeats collapse.
func ParseHand(line string, v *card.Vocabulary) ([]string, error) {
	var hand []string
	seen := map[string]bool{}
	for _, token := range strings.Fields(line) {
		name, err := FindBest(token, v.AllNames())
		if err != nil {
			return nil, err
		}
		if !seen[name] {
			seen[name] = true
			hand = append(hand, name)
		}
	}
	return hand, nil
}
