package game

// The board is three concentric rings (zones) of eight points each. A point is
// addressed by a single integer: zone*8 + slot, zone 0 being the outer ring.
// Even slots are corners, odd slots are edge midpoints that bridge rings.
const (
	Zones        = 3
	SlotsPerZone = 8
	Positions    = Zones * SlotsPerZone

	// RotationStep is the slot offset of a 90 degree rotation.
	RotationStep = SlotsPerZone / 4
)

// NoPosition marks an absent origin or capture in a Move.
const NoPosition = -1

// Static lookup tables, never mutated. They are var initializers so that any
// package-level value depending on them, such as a Catalog, is built after.
var (
	adjacency = buildAdjacency()
	millPairs = buildMillPairs()
)

func buildAdjacency() [Positions][]int {
	var table [Positions][]int
	for pos := 0; pos < Positions; pos++ {
		table[pos] = computeAdjacent(pos)
	}
	return table
}

func buildMillPairs() [Positions][2][2]int {
	var table [Positions][2][2]int
	for pos := 0; pos < Positions; pos++ {
		table[pos] = computeMillPairs(pos)
	}
	return table
}

func Zone(pos int) int {
	return pos / SlotsPerZone
}

func Slot(pos int) int {
	return pos % SlotsPerZone
}

// IsCorner reports whether pos sits on an even slot.
func IsCorner(pos int) bool {
	return Slot(pos)%2 == 0
}

func IsValid(pos int) bool {
	return pos >= 0 && pos < Positions
}

func position(zone, slot int) int {
	return zone*SlotsPerZone + ((slot%SlotsPerZone)+SlotsPerZone)%SlotsPerZone
}

// Adjacent returns the positions a stone on pos can step to. The returned
// slice is shared and must not be modified.
func Adjacent(pos int) []int {
	return adjacency[pos]
}

// AreAdjacent checks if two positions are connected by a line segment.
func AreAdjacent(pos1, pos2 int) bool {
	for _, adj := range adjacency[pos1] {
		if adj == pos2 {
			return true
		}
	}
	return false
}

// MillPairs returns, for each of the two lines through pos, the two other
// positions that complete a mill together with pos.
func MillPairs(pos int) [2][2]int {
	return millPairs[pos]
}

func computeAdjacent(pos int) []int {
	zone, slot := Zone(pos), Slot(pos)
	adjacent := []int{position(zone, slot-1), position(zone, slot+1)}
	if !IsCorner(pos) {
		if zone > 0 {
			adjacent = append(adjacent, position(zone-1, slot))
		}
		if zone < Zones-1 {
			adjacent = append(adjacent, position(zone+1, slot))
		}
	}
	return adjacent
}

func computeMillPairs(pos int) [2][2]int {
	zone, slot := Zone(pos), Slot(pos)
	if IsCorner(pos) {
		return [2][2]int{
			{position(zone, slot+1), position(zone, slot+2)}, // horizontal
			{position(zone, slot-1), position(zone, slot-2)}, // vertical
		}
	}

	// Midpoints: one line along the ring, one across all three rings
	var across [2]int
	switch zone {
	case 0:
		across = [2]int{position(1, slot), position(2, slot)}
	case 1:
		across = [2]int{position(0, slot), position(2, slot)}
	default:
		across = [2]int{position(1, slot), position(0, slot)}
	}
	return [2][2]int{
		{position(zone, slot-1), position(zone, slot+1)},
		across,
	}
}

// rotatePosition advances pos by one 90 degree step within its ring.
func rotatePosition(pos int) int {
	if pos == NoPosition {
		return NoPosition
	}
	return position(Zone(pos), Slot(pos)+RotationStep)
}
