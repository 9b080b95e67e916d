package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	questionFrom = "What station are you getting on the train?:"
	questionTo   = "What station are you getting off the train?:"
)

var errEmptyAnswer = errors.New("no station given")

// asker reads answers line by line from one buffered reader, so that two
// consecutive prompts do not lose buffered input.
type asker struct {
	in  *bufio.Reader
	out io.Writer
}

func newAsker(in io.Reader, out io.Writer) *asker {
	return &asker{in: bufio.NewReader(in), out: out}
}

// ask returns value unchanged when it is set; otherwise it prints question
// and reads one trimmed line.
func (a *asker) ask(value, question string) (string, error) {
	if value != "" {
		return value, nil
	}
	if _, err := fmt.Fprint(a.out, question+" "); err != nil {
		return "", err
	}

	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%s: %w", question, errEmptyAnswer)
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%s: %w", question, errEmptyAnswer)
	}

	return line, nil
}
