// Package prompt implements the interactive input loop: the operator enters
// a CSV path, "1" for the bundled sample file, or "2" to quit. The sample
// choice runs once and exits, a custom path runs and then re-prompts (so
// several files can be split in one session), and "2" leaves without
// processing.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunFunc processes one input file. Errors are reported by the callee; the
// loop itself only decides whether to keep prompting.
type RunFunc func(path string) error

// Loop reads operator choices from in, writing prompts to out, until the
// operator quits or input is exhausted (EOF also quits).
func Loop(in io.Reader, out io.Writer, samplePath string, run RunFunc) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Enter the location of the csv to split, (1) for the sample file (%s), or (2) to exit: ", samplePath)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		choice := strings.TrimSpace(scanner.Text())
		switch choice {
		case "":
			continue
		case "1":
			_ = run(samplePath)
			return
		case "2":
			fmt.Fprintln(out, "Quitting...")
			return
		default:
			_ = run(choice)
		}
	}
}
