package console

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// clearScreen clears w when it is a terminal and does nothing otherwise, so
// redirected output and test buffers stay free of escape codes.
func clearScreen(w io.Writer) {
	if isTerminal(w) {
		fmt.Fprint(w, clearSequence)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
