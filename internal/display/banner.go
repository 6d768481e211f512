package display

import (
	"fmt"
	"os"

	"github.com/datamunge/teamsplit/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _____                     ____        _ _ _
|_   _|__  __ _ _ __ ___  / ___| _ __ | (_) |_
  | |/ _ \/ _`+"`"+` | '_ `+"`"+` _ \ \___ \| '_ \| | | __|
  | |  __/ (_| | | | | | | ___) | |_) | | | |_
  |_|\___|\__,_|_| |_| |_||____/| .__/|_|_|\__|
                                |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
