package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/sortlab/arraygen"
)

// GenerateRequest carries the answers needed to build a new sequence.
type GenerateRequest struct {
	Spec       arraygen.SizeSpec
	Duplicates bool
	Min, Max   int
}

// Prompter supplies the user's answers to the controller. Every method
// returns io.EOF once input is exhausted.
type Prompter interface {
	MenuChoice() (int, error)
	SortMethodChoice() (int, error)
	SearchValue() (int, error)
	GenerateRequest() (GenerateRequest, error)
	Confirm(question string) (bool, error)
}

// Console is a Prompter reading whitespace-separated integers from a reader
// and writing prompts to a writer. Non-numeric tokens are reported and the
// question is asked again.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	echo bool
}

// maxToken bounds a single answer. Longer words are skipped and reported.
const maxToken = 1024

// tooLong replaces a word longer than maxToken in the token stream.
const tooLong = "\x00too-long"

// NewConsole returns a Console reading from r and prompting on w.
// With echo set, each consumed answer is printed after its prompt, which keeps
// transcripts readable when input is piped rather than typed.
func NewConsole(r io.Reader, w io.Writer, echo bool) *Console {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 4*maxToken), 64*1024)
	sc.Split((&wordSplitter{limit: maxToken}).split)
	return &Console{in: sc, out: w, echo: echo}
}

// wordSplitter is bufio.ScanWords with a length cap: a word longer than
// limit yields one tooLong token and the rest of it is discarded, so the
// scanner never fails with bufio.ErrTooLong.
type wordSplitter struct {
	limit    int
	skipping bool
}

func (s *wordSplitter) split(data []byte, atEOF bool) (int, []byte, error) {
	if s.skipping {
		for i := 0; i < len(data); {
			r, w := utf8.DecodeRune(data[i:])
			if unicode.IsSpace(r) {
				s.skipping = false
				if i > 0 {
					return i, nil, nil
				}
				break
			}
			i += w
		}
		if s.skipping {
			if atEOF {
				s.skipping = false
			}
			return len(data), nil, nil
		}
	}

	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil {
		return advance, token, err
	}
	switch {
	case token != nil && len(token) > s.limit:
		return advance, []byte(tooLong), nil
	case token == nil && !atEOF && len(data)-advance > s.limit:
		// partial word already over the cap; drop what we have and skip the rest
		s.skipping = true
		return len(data), []byte(tooLong), nil
	}
	return advance, token, nil
}

// readInt prompts until an integer token is read.
func (c *Console) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(c.out, prompt)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return 0, err
			}
			fmt.Fprintln(c.out)
			return 0, io.EOF
		}
		tok := c.in.Text()
		if tok == tooLong {
			if c.echo {
				fmt.Fprintln(c.out, "...")
			}
			fmt.Fprintf(c.out, "Input longer than %d characters is not a whole number, try again.\n", maxToken)
			continue
		}
		if c.echo {
			fmt.Fprintln(c.out, tok)
		}
		v, err := strconv.Atoi(tok)
		if err == nil {
			return v, nil
		}
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			fmt.Fprintf(c.out, "%q is out of range, try again.\n", tok)
			continue
		}
		fmt.Fprintf(c.out, "%q is not a whole number, try again.\n", tok)
	}
}

// readIntIn prompts until an integer within [lo, hi] is read.
func (c *Console) readIntIn(prompt string, lo, hi int) (int, error) {
	for {
		v, err := c.readInt(prompt)
		if err != nil {
			return 0, err
		}
		if v >= lo && v <= hi {
			return v, nil
		}
		fmt.Fprintf(c.out, "Enter a value between %d and %d.\n", lo, hi)
	}
}

// MenuChoice reads the main menu selection. Range checking is left to the
// controller so invalid options can be reported as such.
func (c *Console) MenuChoice() (int, error) {
	return c.readInt("Option: ")
}

// SortMethodChoice reads the sort sub-menu selection (1-5 expected).
func (c *Console) SortMethodChoice() (int, error) {
	return c.readInt("Method: ")
}

// SearchValue reads the value to search for.
func (c *Console) SearchValue() (int, error) {
	return c.readInt("Value to search: ")
}

// Confirm asks a yes/no question answered with 1 or 0.
func (c *Console) Confirm(question string) (bool, error) {
	v, err := c.readIntIn(question+" (1=yes / 0=no): ", 0, 1)
	return v == 1, err
}

// GenerateRequest walks the learner through the sizing and value questions.
func (c *Console) GenerateRequest() (GenerateRequest, error) {
	var req GenerateRequest
	fmt.Fprintln(c.out, "Array size:")
	fmt.Fprintln(c.out, "  1) N")
	fmt.Fprintln(c.out, "  2) N x N")
	fmt.Fprintln(c.out, "  3) N x M")
	mode, err := c.readIntIn("Size option: ", 1, 3)
	if err != nil {
		return req, err
	}
	req.Spec.Mode = arraygen.SizeMode(mode)

	if req.Spec.N, err = c.readIntIn("N: ", 0, arraygen.MaxSize); err != nil {
		return req, err
	}
	if req.Spec.Mode == arraygen.Rect {
		if req.Spec.M, err = c.readIntIn("M: ", 0, arraygen.MaxSize); err != nil {
			return req, err
		}
	}
	if req.Duplicates, err = c.Confirm("Allow repeated values?"); err != nil {
		return req, err
	}
	if req.Min, err = c.readInt("Minimum value: "); err != nil {
		return req, err
	}
	if req.Max, err = c.readInt("Maximum value: "); err != nil {
		return req, err
	}
	return req, nil
}
