package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/anonlabs/tictactoe-cli/internal/game"
	"github.com/anonlabs/tictactoe-cli/internal/service"
	"github.com/anonlabs/tictactoe-cli/internal/usecase"
)

// Shell is the interactive terminal front end: the main menu loop and every
// screen behind it. It implements usecase.Shell, so the match manager and the
// round controller drive it during play.
type Shell struct {
	logger *slog.Logger
	match  *usecase.MatchManager
	stats  service.StatsService

	in  *bufio.Reader
	out io.Writer
}

func New(logger *slog.Logger, match *usecase.MatchManager, stats service.StatsService) *Shell {
	return &Shell{
		logger: logger.With("component", "terminal"),
		match:  match,
		stats:  stats,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run - drives the main menu until the player exits. Recoverable gameplay
// input never lands here; anything that does (store failures, closed stdin)
// ends the session.
func (that *Shell) Run(ctx context.Context) error {
	for {
		choice, err := that.mainMenu()
		if err != nil {
			return fmt.Errorf("main menu failed: %w", err)
		}

		switch choice {
		case menuPlay:
			err = that.playMatch(ctx)
		case menuHistory:
			err = that.showHistory(ctx)
		case menuLeaderboard:
			err = that.showLeaderboard(ctx)
		case menuReset:
			err = that.resetData(ctx)
		case menuExit:
			that.clearScreen()
			red.Fprintln(that.out, "Exiting TicTacToe...")
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// playMatch - collects the two names and hands control to the match manager.
// The stop sentinel at either name prompt returns to the main menu.
func (that *Shell) playMatch(ctx context.Context) error {
	that.clearScreen()

	green.Fprintln(that.out, "Starting TicTacToe...")
	fmt.Fprintf(that.out, "use `%s` to return to the main menu at any time!\n\n", game.StopSentinel)
	fmt.Fprint(that.out, "(Tip: It is recommended to use the same names every time to keep the leaderboard consistent)\n\n")

	magenta.Fprint(that.out, "Host: What'd you like to be called, Player 1?\nYou: ")
	name1, err := that.readLine()
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if strings.EqualFold(name1, game.StopSentinel) {
		that.returnToMenu()
		return nil
	}

	magenta.Fprint(that.out, "\nHost: Gotcha! What about you, Player 2?\nYou: ")
	name2, err := that.readLine()
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if strings.EqualFold(name2, game.StopSentinel) {
		that.returnToMenu()
		return nil
	}

	if err = that.match.Play(ctx, that, name1, name2); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	that.returnToMenu()
	return nil
}

func (that *Shell) showHistory(ctx context.Context) error {
	records, err := that.stats.History(ctx)
	if err != nil {
		return err
	}

	that.clearScreen()
	heading.Fprintf(that.out, "Match History\n\n")

	if len(records) == 0 {
		yellow.Fprint(that.out, "All the rounds you play will be logged here in Match History! Game on!\n\n")
	} else {
		table := tableWithHeader(that.out, "Played On", "Player 1", "Player 2", "Winner")
		for _, record := range records {
			winner := greenBold.Sprint("Draw")
			if record.Winner != nil {
				if *record.Winner == record.Player1 {
					winner = blueBold.Sprint(*record.Winner)
				} else {
					winner = redBold.Sprint(*record.Winner)
				}
			}

			table.Append([]string{
				formatTimestamp(record.Timestamp),
				blueBold.Sprint(record.Player1),
				redBold.Sprint(record.Player2),
				winner,
			})
		}
		table.Render()
		fmt.Fprintln(that.out)
	}

	that.waitForEnter()
	that.returnToMenu()
	return nil
}

func (that *Shell) showLeaderboard(ctx context.Context) error {
	records, err := that.stats.Leaderboard(ctx)
	if err != nil {
		return err
	}

	that.clearScreen()
	heading.Fprintf(that.out, "Leaderboard\n\n")

	if len(records) == 0 {
		yellow.Fprint(that.out, "Any scores ever earned will be displayed here in the form of a leaderboard! It's a battle to the top!\n\n")
	} else {
		table := tableWithHeader(that.out, "Player", "Wins")
		for _, record := range records {
			table.Append([]string{
				cyan.Sprint(record.Name),
				fmt.Sprintf("%d", record.Score),
			})
		}
		table.Render()
		fmt.Fprintln(that.out)
	}

	that.waitForEnter()
	that.returnToMenu()
	return nil
}

func (that *Shell) resetData(ctx context.Context) error {
	scores, history, err := that.stats.Counts(ctx)
	if err != nil {
		return err
	}

	that.clearScreen()
	heading.Fprintf(that.out, "Data Reset\n\n")
	red.Fprint(that.out, "WARNING: This action is irreversible!\n\n")
	fmt.Fprintf(that.out, "1. Leaderboard has %d entries.\n", scores)
	fmt.Fprintf(that.out, "2. Match History has %d entries.\n\n", history)

	target, label, err := that.resetMenu()
	if err != nil {
		return fmt.Errorf("reset menu failed: %w", err)
	}
	if target == "" {
		that.returnToMenu()
		return nil
	}

	if err = that.stats.Reset(ctx, target); err != nil {
		return err
	}

	that.logger.Info("data reset", "target", string(target))
	green.Fprintf(that.out, "Data reset successful for %s!\n\n", label)

	that.waitForEnter()
	that.returnToMenu()
	return nil
}

// readLine - one line of raw input, newline stripped. A final unterminated
// line at EOF still counts.
func (that *Shell) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (that *Shell) waitForEnter() {
	fmt.Fprint(that.out, "Press Enter key to continue...")
	_, _ = that.readLine()
}

func (that *Shell) returnToMenu() {
	green.Fprintln(that.out, "Returning to the main menu...")
}
