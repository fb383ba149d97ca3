package mapfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// CountLines returns the number of lines in r. "\r\n", "\r" and "\n" each
// end one line; trailing text without a terminator is a line of its own.
// Read failures are wrapped in ErrIO.
func CountLines(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	sc.Split(scanLines)

	n := 0
	for sc.Scan() {
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("%w: counting lines: %v", ErrIO, err)
	}

	return n, nil
}

// scanLines is a bufio.SplitFunc accepting CR, LF and CRLF terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// CR: look at the next byte to fold CRLF into one terminator.
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// Need more data to decide.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
