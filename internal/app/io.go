// Package app implements the line-prompt menu interface.
package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// IO abstracts line-based terminal input and output so the menu loop can be
// driven by scripted input in tests.
type IO interface {
	ReadLine() (string, error)
	WriteLine(line string) error
}

// ConsoleIO reads from stdin and writes to stdout.
type ConsoleIO struct {
	reader *bufio.Reader
}

// NewConsoleIO returns an IO bound to the process terminal.
func NewConsoleIO() *ConsoleIO {
	return &ConsoleIO{reader: bufio.NewReader(os.Stdin)}
}

// ReadLine reads one line and trims surrounding whitespace.
func (c *ConsoleIO) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		return strings.TrimSpace(line), err
	}
	return strings.TrimSpace(line), nil
}

// WriteLine prints a single line to stdout.
func (c *ConsoleIO) WriteLine(line string) error {
	_, err := fmt.Println(line)
	return err
}
