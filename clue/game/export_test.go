package game

import "go.uber.org/zap"

func ownedBy(setup Setup, name string, owners ...string) (*builder, int) {
	b := &builder{state: newBeliefState(setup.Board, setup.Seating), logger: zap.NewNop()}
	c, _ := setup.Board.Index(name)
	for _, owner := range owners {
		b.state.set(c, b.state.seats[owner], Yes)
	}
	return b, c
}

// ValidateWithOwners writes Yes for every owner without cascading and runs
// the final validation.
func ValidateWithOwners(setup Setup, name string, owners ...string) error {
	b, _ := ownedBy(setup, name, owners...)
	return b.validate()
}

// AssertYesOverOwner writes Yes for owner without cascading, then asserts
// Yes for player through the normal path.
func AssertYesOverOwner(setup Setup, name, owner, player string) error {
	b, c := ownedBy(setup, name, owner)
	return b.setYes(c, b.state.seats[player])
}
