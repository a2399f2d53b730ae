package terminal

import (
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/anonlabs/tictactoe-cli/internal/entity"
	"github.com/anonlabs/tictactoe-cli/internal/game"
)

//go:embed logo.txt
var logo string

const divider = "\n══════════════════════════════════════════════════════\n"

const timestampLayout = "Jan 02, 2006 03:04 PM"

var (
	cyan      = color.New(color.FgCyan)
	green     = color.New(color.FgGreen)
	red       = color.New(color.FgRed)
	yellow    = color.New(color.FgYellow)
	magenta   = color.New(color.FgMagenta)
	blueBold  = color.New(color.FgBlue, color.Bold)
	redBold   = color.New(color.FgRed, color.Bold)
	greenBold = color.New(color.FgGreen, color.Bold)
	heading   = color.New(color.Bold, color.Underline)
)

// clearScreen - wipes the terminal and reprints the banner, so every screen
// starts from the same frame.
func (that *Shell) clearScreen() {
	fmt.Fprint(that.out, "\033[H\033[2J")
	cyan.Fprintln(that.out, logo)
}

// markerStyle - the display style for a marker. Identity lives in the enum;
// only this function knows X is blue and O is red.
func markerStyle(marker entity.Marker) *color.Color {
	if marker == entity.MarkerX {
		return blueBold
	}
	return redBold
}

func playerLabel(player *entity.Player) string {
	return markerStyle(player.Marker).Sprint(player.Name)
}

// RenderRound - scoreboard plus the current board, preceded by the round
// header and the house rules.
func (that *Shell) RenderRound(round *game.Round) {
	that.clearScreen()
	that.renderScoreboard(round)

	heading.Fprintf(that.out, "Game Round #%d\n\n", round.Number())

	green.Fprintln(that.out, "1. Enter a number between 1-9 to mark a cell.")
	green.Fprintln(that.out, "2. The first player to mark 3 cells in a row wins!")
	green.Fprintln(that.out, "3. The markers (X and O) are swapped every round.")
	fmt.Fprintf(that.out, "4. Use `%s` to return to the main menu at any time.\n\n", game.StopSentinel)

	that.renderBoard(round)
}

// renderBoard - the 3x3 grid. Occupied cells show the owner's marker, free
// cells their own index; the winning triple, if the round is won, is green.
func (that *Shell) renderBoard(round *game.Round) {
	combo, won := round.WinningCombo()

	inCombo := func(cell int) bool {
		return won && (combo[0] == cell || combo[1] == cell || combo[2] == cell)
	}

	cells := make([]string, 0, entity.LastCell)
	for cell := entity.FirstCell; cell <= entity.LastCell; cell++ {
		marker, occupied := round.Board().Cell(cell)

		switch {
		case occupied && inCombo(cell):
			cells = append(cells, greenBold.Sprint(marker.Symbol()))
		case occupied:
			cells = append(cells, markerStyle(marker).Sprint(marker.Symbol()))
		default:
			cells = append(cells, strconv.Itoa(cell))
		}
	}

	table := tablewriter.NewWriter(that.out)
	table.SetRowLine(true)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	for row := 0; row < len(cells); row += 3 {
		table.Append(cells[row : row+3])
	}
	table.Render()

	fmt.Fprintln(that.out)
}

func (that *Shell) renderScoreboard(round *game.Round) {
	heading.Fprintf(that.out, "Scoreboard\n\n")

	players := round.Players()

	table := tablewriter.NewWriter(that.out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{
		markerStyle(players[0].Marker).Sprintf("%s (%s)", players[0].Name, players[0].Marker.Symbol()),
		markerStyle(players[1].Marker).Sprintf("%s (%s)", players[1].Name, players[1].Marker.Symbol()),
	})
	table.Append([]string{
		strconv.Itoa(players[0].Score),
		strconv.Itoa(players[1].Score),
	})
	table.Render()

	fmt.Fprintf(that.out, "%s\n", divider)
}

// PromptMove - asks the current player for one raw line of input.
func (that *Shell) PromptMove(player *entity.Player) (string, error) {
	magenta.Fprintf(that.out, "Host: %s, what is your move? ", playerLabel(player))
	return that.readLine()
}

func (that *Shell) RejectMove() {
	red.Fprintln(that.out, "That is not a valid move!")
}

// ShowResult - the final frame of a completed round: updated scoreboard,
// the board with the winning triple highlighted, and the verdict.
func (that *Shell) ShowResult(round *game.Round) {
	that.clearScreen()
	that.renderScoreboard(round)
	heading.Fprintf(that.out, "Game Round #%d\n\n", round.Number())
	that.renderBoard(round)

	if winner := round.Winner(); winner != nil {
		green.Fprintf(that.out, "%s has won! GGs!\n\n", playerLabel(winner))
	} else {
		green.Fprint(that.out, "It's a draw! GGs!\n\n")
	}

	that.waitForEnter()
}

func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Format(timestampLayout)
}
