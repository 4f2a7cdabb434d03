package bootstrap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// devServerQuestion is asked once the project is ready.
const devServerQuestion = "Do you want to start the development server now? (y/n)"

// Confirm writes question to out and reads one line from in.
// Only "y" or "Y" (surrounding whitespace ignored) counts as yes.
// End of input without an answer is a no.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintln(out, question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
