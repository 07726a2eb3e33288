package card

// winningLines are all slot index sets that complete a bingo: five rows,
// five columns and the two diagonals.
var winningLines = [][5]int{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// HasBingo reports whether the marked positions complete any row, column or
// diagonal. The free center counts as always marked.
func HasBingo(markedPositions []int) bool {
	marked := make(map[int]bool, len(markedPositions)+1)
	marked[FreeSlot] = true
	for _, pos := range markedPositions {
		marked[pos] = true
	}

	for _, line := range winningLines {
		complete := true
		for _, pos := range line {
			if !marked[pos] {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
