package game

import (
	"fmt"
	"strconv"
	"strings"
)

const keySeparator = ","

// Key serializes b as its 24 cell values followed by the two counters, all
// comma separated. Keys are equal exactly when boards are equal.
func Key(b Board) string {
	var sb strings.Builder
	sb.Grow(3*Positions + 8)
	for _, cell := range b.Cells {
		sb.WriteString(strconv.Itoa(int(cell)))
		sb.WriteString(keySeparator)
	}
	sb.WriteString(strconv.Itoa(b.StonesPlaced))
	sb.WriteString(keySeparator)
	sb.WriteString(strconv.Itoa(b.MovesWithoutMill))
	return sb.String()
}

func symbol(cell int8) string {
	switch cell {
	case 1:
		return "X"
	case -1:
		return "O"
	default:
		return "*"
	}
}

// boardLayout draws the lattice; each %s is filled with the symbol of the
// position listed at the same index in layoutOrder.
const boardLayout = `%s _________________________ %s _________________________ %s
|                           |                           |
|        %s ________________ %s ________________ %s        |
|        |                  |                  |        |
|        |        %s _______ %s _______ %s        |        |
|        |        |                   |        |        |
%s ______ %s ______ %s                   %s ______ %s ______ %s
|        |        |                   |        |        |
|        |        %s _______ %s _______ %s        |        |
|        |                  |                  |        |
|        %s ________________ %s ________________ %s        |
|                           |                           |
%s _________________________ %s _________________________ %s
`

var layoutOrder = [Positions]int{
	0, 1, 2,
	8, 9, 10,
	16, 17, 18,
	7, 15, 23, 19, 11, 3,
	22, 21, 20,
	14, 13, 12,
	6, 5, 4,
}

// Render draws b for debugging, X for PlayerOne and O for PlayerTwo.
func Render(b Board) string {
	symbols := make([]any, Positions)
	for i, pos := range layoutOrder {
		symbols[i] = symbol(b.Cells[pos])
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(boardLayout, symbols...))
	sb.WriteString("placed: ")
	sb.WriteString(strconv.Itoa(b.StonesPlaced))
	sb.WriteString("  without mill: ")
	sb.WriteString(strconv.Itoa(b.MovesWithoutMill))
	sb.WriteString("\n")
	return sb.String()
}
