package game

// House is a single seed-holding pit.
type House struct {
	seeds int
}

// NewHouse returns a house holding StartingSeeds.
func NewHouse() House {
	return House{seeds: StartingSeeds}
}

func (h *House) Increment() {
	h.seeds++
}

func (h *House) Clear() {
	h.seeds = 0
}

func (h House) SeedCount() int {
	return h.seeds
}
