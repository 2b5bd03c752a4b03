package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/webbmaffian/go-smallvec/smallvec"
)

var errUsage = errors.New("wrong number of arguments")

var shellCommands = []string{
	"push", "pop", "insert", "erase", "set", "at", "reserve", "shrink",
	"resize", "assign", "clear", "show", "help", "exit",
}

// shell edits a vector with five inline slots, so growing past and shrinking
// below the inline capacity takes only a few commands.
type shell struct {
	vec smallvec.Vector[int, [5]int]
	out io.Writer
}

func cmdShell(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(errOut)
	history := fs.String("history", defaultHistoryFile(), "command history file, empty to disable")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	s := &shell{out: out}
	defer s.vec.Free()

	if err := s.loop(*history); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	return 0
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()

	if err != nil {
		return ""
	}

	return filepath.Join(home, ".svbench_history")
}

func (s *shell) loop(historyPath string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeCommand)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}

		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Fprintln(s.out, "svbench shell: a vector of ints with 5 inline slots. Type 'help' for commands.")

	for {
		input, err := line.Prompt("svec> ")

		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)

		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if s.exec(input) {
			return nil
		}
	}
}

func completeCommand(line string) (c []string) {
	for _, cmd := range shellCommands {
		if strings.HasPrefix(cmd, strings.ToLower(line)) {
			c = append(c, cmd)
		}
	}

	return
}

// exec runs one command line and reports whether the shell should exit.
func (s *shell) exec(input string) (quit bool) {
	fields := strings.Fields(input)

	if len(fields) == 0 {
		return
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error

	switch cmd {
	case "exit", "quit", "q":
		return true

	case "help", "?":
		s.printHelp()
		return

	case "show", "ls":
		err = s.expect(args, 0)

	case "push":
		err = s.push(args)

	case "pop":
		err = s.pop(args)

	case "insert":
		err = s.insert(args)

	case "erase":
		err = s.erase(args)

	case "set":
		err = s.set(args)

	case "at":
		err = s.at(args)
		if err == nil {
			return
		}

	case "reserve":
		err = s.reserve(args)

	case "shrink":
		if err = s.expect(args, 0); err == nil {
			err = s.vec.ShrinkToFit()
		}

	case "resize":
		err = s.resize(args)

	case "assign":
		err = s.assign(args)

	case "clear":
		if err = s.expect(args, 0); err == nil {
			s.vec.Clear()
		}

	default:
		fmt.Fprintf(s.out, "unknown command: %s (type 'help' for commands)\n", cmd)
		return
	}

	if err != nil {
		fmt.Fprintln(s.out, "error:", err)
		return
	}

	s.show()
	return
}

func (s *shell) show() {
	fmt.Fprintf(s.out, "%s len=%d cap=%d %v\n", s.vec.Mode(), s.vec.Len(), s.vec.Cap(), &s.vec)
}

func (s *shell) push(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	vals, err := parseInts(args)

	if err != nil {
		return err
	}

	for _, val := range vals {
		if err = s.vec.PushBack(val); err != nil {
			return err
		}
	}

	return nil
}

func (s *shell) pop(args []string) error {
	if err := s.expect(args, 0); err != nil {
		return err
	}

	val, err := s.vec.PopBack()

	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, val)
	return nil
}

func (s *shell) insert(args []string) error {
	vals, err := s.ints(args, 2)

	if err != nil {
		return err
	}

	return s.vec.Insert(vals[0], vals[1])
}

// erase takes an index, or a half-open range of two.
func (s *shell) erase(args []string) error {
	if len(args) == 1 {
		vals, err := parseInts(args)

		if err != nil {
			return err
		}

		return s.vec.Erase(vals[0])
	}

	vals, err := s.ints(args, 2)

	if err != nil {
		return err
	}

	if vals[0] < 0 || vals[0] > vals[1] || vals[1] > s.vec.Len() {
		return &smallvec.IndexError{Index: vals[1], Size: s.vec.Len()}
	}

	_, err = s.vec.EraseRange(s.vec.Begin().Add(vals[0]), s.vec.Begin().Add(vals[1]))
	return err
}

func (s *shell) set(args []string) error {
	vals, err := s.ints(args, 2)

	if err != nil {
		return err
	}

	return s.vec.Set(vals[0], vals[1])
}

func (s *shell) at(args []string) error {
	vals, err := s.ints(args, 1)

	if err != nil {
		return err
	}

	val, err := s.vec.At(vals[0])

	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, val)
	return nil
}

func (s *shell) reserve(args []string) error {
	vals, err := s.ints(args, 1)

	if err != nil {
		return err
	}

	return s.vec.Reserve(vals[0])
}

func (s *shell) resize(args []string) error {
	vals, err := s.ints(args, 1)

	if err != nil {
		return err
	}

	return s.vec.Resize(vals[0])
}

// assign takes a count and a value.
func (s *shell) assign(args []string) error {
	vals, err := s.ints(args, 2)

	if err != nil {
		return err
	}

	return s.vec.Assign(vals[0], vals[1])
}

func (s *shell) expect(args []string, n int) error {
	if len(args) != n {
		return errUsage
	}

	return nil
}

func (s *shell) ints(args []string, n int) ([]int, error) {
	if err := s.expect(args, n); err != nil {
		return nil, err
	}

	return parseInts(args)
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, len(args))

	for i, arg := range args {
		val, err := strconv.Atoi(arg)

		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", arg)
		}

		vals[i] = val
	}

	return vals, nil
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  push <v>...        append values
  pop                remove and print the last value
  insert <i> <v>     insert v before index i
  erase <i> [j]      remove index i, or the range [i, j)
  set <i> <v>        replace the value at index i
  at <i>             print the value at index i
  reserve <n>        grow the capacity to at least n
  shrink             release unused capacity
  resize <n>         truncate or pad with zeros to n values
  assign <n> <v>     replace the contents with n copies of v
  clear              remove all values, keeping the capacity
  show               print mode, length, capacity and values
  help               show this help
  exit               leave the shell
`)
}
