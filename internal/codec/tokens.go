package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// tokenizer splits a plain-text raster into whitespace-separated fields,
// dropping '#' comments that run to the end of a line.
type tokenizer struct {
	r   *bufio.Reader
	buf []byte
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the next token or io.EOF.
func (t *tokenizer) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		c, err := t.r.ReadByte()
		if err == io.EOF {
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		switch {
		case c == '#':
			if _, err := t.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, c)
		}
	}
}

// int reads the next token as a decimal integer; what names the field in
// error messages.
func (t *tokenizer) int(what string) (int, error) {
	tok, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformed, what)
	}
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, tok)
	}
	return v, nil
}
