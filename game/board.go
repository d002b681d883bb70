package game

import "fmt"

// Board is the ring of houses. Houses 0-5 belong to player 0 and 6-11 to player 1.
// Sowing walks the ring towards lower indices, wrapping from 0 to 11.
//
// Rendered from player 0's side the board reads:
//
//	 5  4  3  2  1  0
//	 6  7  8  9 10 11
type Board struct {
	houses [NumHouses]House
}

// NewBoard returns a board with StartingSeeds in every house.
func NewBoard() *Board {
	b := &Board{}
	for i := range b.houses {
		b.houses[i] = NewHouse()
	}
	return b
}

// BoardFrom returns a board holding the given seed counts.
func BoardFrom(seeds [NumHouses]int) (*Board, error) {
	b := &Board{}
	for i, n := range seeds {
		if n < 0 {
			return nil, fmt.Errorf("house %d holds %d seeds: %w", i, n, ErrInvalidPosition)
		}
		b.houses[i] = House{seeds: n}
	}
	return b, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b // houses is an array of values
	return &c
}

func (b *Board) Owner(house int) (int, error) {
	if err := checkIndex(house); err != nil {
		return NoPlayer, err
	}
	return owner(house), nil
}

func (b *Board) SeedCount(house int) (int, error) {
	if err := checkIndex(house); err != nil {
		return 0, err
	}
	return b.houses[house].SeedCount(), nil
}

func (b *Board) Increment(house int) error {
	if err := checkIndex(house); err != nil {
		return err
	}
	b.houses[house].Increment()
	return nil
}

func (b *Board) Clear(house int) error {
	if err := checkIndex(house); err != nil {
		return err
	}
	b.houses[house].Clear()
	return nil
}

// Row returns the seed counts of the player's houses in ascending index order.
func (b *Board) Row(player int) [HousesPerSide]int {
	start := firstHouse(player)
	var row [HousesPerSide]int
	for i := range row {
		row[i] = b.houses[start+i].SeedCount()
	}
	return row
}

func checkIndex(house int) error {
	if house < 0 || house >= NumHouses {
		return fmt.Errorf("house %d: %w", house, ErrInvalidIndex)
	}
	return nil
}

func owner(house int) int {
	if house < HousesPerSide {
		return 0
	}
	return 1
}

// firstHouse is the lowest index owned by player.
func firstHouse(player int) int {
	return player * HousesPerSide
}
