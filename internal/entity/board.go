package entity

// Cells are numbered 1 through 9, row-major:
//
//	1 2 3
//	4 5 6
//	7 8 9
const (
	FirstCell = 1
	LastCell  = 9

	boardSize = 9
)

// WinningCombos - the 8 fixed winning triples: rows, then columns, then
// diagonals. CheckWinner scans them in this order and stops on the first hit.
var WinningCombos = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

// Board is a single round's 3x3 grid. A cell, once occupied, is never
// overwritten or freed; a fresh Board is built for every round.
type Board struct {
	cells map[int]Marker
}

func NewBoard() *Board {
	return &Board{
		cells: make(map[int]Marker, boardSize),
	}
}

// Place - records the player's marker on the cell and appends the cell to
// the player's move list. Returns false without mutating anything when the
// cell is already taken. The caller validates that cell is in [1,9].
func (that *Board) Place(cell int, player *Player) bool {
	if _, occupied := that.cells[cell]; occupied {
		return false
	}

	that.cells[cell] = player.Marker
	player.AddMove(cell)

	return true
}

// Cell - returns the marker occupying the cell. The second result is false
// for a free cell, in which case the shell renders the cell's own index.
func (that *Board) Cell(cell int) (Marker, bool) {
	marker, occupied := that.cells[cell]
	return marker, occupied
}

func (that *Board) IsFull() bool {
	return len(that.cells) == boardSize
}

// CheckWinner - reports whether the player's moves cover one of the fixed
// winning combos, returning the first matched triple.
func (that *Board) CheckWinner(player *Player) (bool, [3]int) {
	for _, combo := range WinningCombos {
		if player.HasMove(combo[0]) && player.HasMove(combo[1]) && player.HasMove(combo[2]) {
			return true, combo
		}
	}

	return false, [3]int{}
}
