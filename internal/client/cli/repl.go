package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var errQuit = errors.New("quit")

func (a *App) prompt() string {
	if a.loggedIn {
		return "geoattend (admin)> "
	}
	return "geoattend> "
}

// runREPL reads commands line by line until EOF, exit or quit, or until
// ctx is done. Command errors are printed and the loop continues. Lines
// are read from the shared reader so that prompts issued by a command see
// the input that follows it.
func (a *App) runREPL(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to geoattend CLI (type 'help' for commands)")

	for ctx.Err() == nil {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				break
			}
			continue
		}

		err = a.exec(ctx, parts[0], parts[1:])
		if errors.Is(err, errQuit) {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
	}
}
