// Package console implements the interactive text menus for theater staff
// and customers. Input and output are injected so tests can drive the menus
// with plain strings.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"theatertickets/internal/domain"
)

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) println(line string) {
	fmt.Fprintln(p.out, line)
}

// readLine prompts and returns the next trimmed input line. ok is false on EOF.
func (p *prompter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.scanner.Text()), true
}

func (p *prompter) readInt(prompt string) (int64, bool, error) {
	raw, ok := p.readLine(prompt)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}

func (p *prompter) readFloat(prompt string) (float64, bool, error) {
	raw, ok := p.readLine(prompt)
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, true, err
	}
	return f, true, nil
}

func (p *prompter) printShows(shows []*domain.Show) {
	for _, s := range shows {
		p.printf("ID: %d, Name: %s, Price: %.2f, Date: %s, Free slots: %d\n",
			s.ID, s.Name, s.Price, s.Date, s.FreeSlots)
	}
}

func (p *prompter) printCustomers(customers []*domain.Customer) {
	if len(customers) == 0 {
		p.println("No customers found.")
		return
	}
	for _, c := range customers {
		p.printf("ID: %d, Name: %s, Age: %d, Email: %s, Phone: %s\n",
			c.ID, c.Name, c.Age, c.Email, c.Phone)
	}
}
