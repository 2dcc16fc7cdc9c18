package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminator завершает многострочный ввод
const terminator = "."

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// NewStdio работает с os.Stdin и os.Stdout
func NewStdio() IO {
	return &Stdio{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		fd:  int(os.Stdout.Fd()),
	}
}

// New создает IO поверх произвольных потоков.
// Такой IO никогда не считается терминалом.
func New(in io.Reader, out io.Writer) IO {
	return &Stdio{in: bufio.NewReader(in), out: out, fd: -1}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadMultiline(prompt string) (string, error) {
	s.Printf("%s", prompt)

	var lines []string
	for {
		line, err := s.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == terminator {
			break
		}
		if line != "" || err == nil {
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func (s *Stdio) IsTerminal() bool {
	return s.fd >= 0 && term.IsTerminal(s.fd)
}

func (s *Stdio) Width() int {
	if !s.IsTerminal() {
		return 0
	}
	w, _, err := term.GetSize(s.fd)
	if err != nil {
		return 0
	}
	return w
}
