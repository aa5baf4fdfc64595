package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineReader scans input on its own goroutine so a blocked read does not
// keep Run from observing context cancellation.
type lineReader struct {
	lines <-chan string
	errc  <-chan error
}

// newLineReader starts reading r line by line. Lines have no length limit
// and lose only their "\n" or "\r\n" terminator. Closing done stops the
// reader goroutine at the next line.
func newLineReader(r io.Reader, done <-chan struct{}) *lineReader {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err == nil || line != "" {
				line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
				select {
				case lines <- line:
				case <-done:
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				errc <- err
				return
			}
		}
	}()

	return &lineReader{lines: lines, errc: errc}
}

// next returns the next line, io.EOF at end of input, or ctx.Err().
func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if ok {
			return line, nil
		}
		if err := <-lr.errc; err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
}

// readInt prompts until the line parses as an integer.
func (d *Dispatcher) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		d.print(prompt)
		line, err := d.in.next(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		d.println(msgInvalidNumber)
	}
}

// readFloat prompts until the line parses as a number.
func (d *Dispatcher) readFloat(ctx context.Context, prompt string) (float64, error) {
	for {
		d.print(prompt)
		line, err := d.in.next(ctx)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return f, nil
		}
		d.println(msgInvalidNumber)
	}
}

// readText prompts for a free-form line and returns it as typed. Empty
// input is accepted.
func (d *Dispatcher) readText(ctx context.Context, prompt string) (string, error) {
	d.print(prompt)
	return d.in.next(ctx)
}
