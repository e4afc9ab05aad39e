package shell

import "io"

// ClearScreen erases the terminal and moves the cursor to the top left.
func ClearScreen(w io.Writer) error {
	// Assumes VT100 compatibility.
	_, err := io.WriteString(w, "\033[2J\033[H")
	return err
}
