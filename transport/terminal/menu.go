package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"

	"github.com/anonlabs/tictactoe-cli/internal/game"
	"github.com/anonlabs/tictactoe-cli/internal/service"
)

type menuChoice int

const (
	menuPlay menuChoice = iota
	menuHistory
	menuLeaderboard
	menuReset
	menuExit
)

const aboutText = "Tic-Tac-Toe is a classic two-player game played on a 3x3 grid. " +
	"The players take turns marking a vacant cell with their respective symbols " +
	"(usually 'X' and 'O') until one player achieves a row of three symbols " +
	"horizontally, vertically, or diagonally, or until the grid is filled, " +
	"resulting in a draw."

// mainMenu - the arrow-key entry menu. Ctrl-C counts as choosing Exit.
func (that *Shell) mainMenu() (menuChoice, error) {
	that.clearScreen()
	fmt.Fprintf(that.out, "%s\n\n", aboutText)

	prompt := promptui.Select{
		Label: "Please use the arrow keys to navigate and Enter to select",
		Items: []string{
			"1. Play",
			"2. Match History",
			"3. Leaderboard",
			"4. Reset Data",
			"5. Exit Game",
		},
		HideHelp: true,
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return menuExit, nil
		}
		return menuExit, err
	}

	return menuChoice(index), nil
}

// resetMenu - picks a reset target; the cursor starts on Cancel. An empty
// target means the player backed out.
func (that *Shell) resetMenu() (service.ResetTarget, string, error) {
	prompt := promptui.Select{
		Label: "What would you like to reset?",
		Items: []string{
			"1. All",
			"2. History",
			"3. Leaderboard",
			"4. Cancel",
		},
		HideHelp: true,
	}

	index, _, err := prompt.RunCursorAt(3, 0)
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", "", nil
		}
		return "", "", err
	}

	switch index {
	case 0:
		return service.ResetAll, "All", nil
	case 1:
		return service.ResetHistory, "History", nil
	case 2:
		return service.ResetLeaderboard, "Leaderboard", nil
	default:
		return "", "", nil
	}
}

// OfferRematch - asked after every completed round. Ctrl-C declines.
func (that *Shell) OfferRematch(_ *game.Round) (bool, error) {
	prompt := promptui.Select{
		Label: "Up for a rematch?",
		Items: []string{
			"Bring it!",
			"Nop, I'm out!",
		},
		HideHelp: true,
	}

	index, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, nil
		}
		return false, err
	}

	return index == 0, nil
}

func tableWithHeader(out io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetHeader(headers)
	return table
}
