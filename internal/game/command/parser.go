package command

import (
	"strconv"
	"strings"
)

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the raw text after the command, used for multi-word item
	// names and hero names.
	RawArgs string
}

// Parse splits a text line into a command and arguments. Only the command
// word is lowercased.
//
// Postcondition: Returns a ParseResult. If line is empty, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	cmd, rest, found := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	if !found {
		return ParseResult{Command: cmd}
	}
	rest = strings.TrimSpace(rest)

	var args []string
	if rest != "" {
		args = strings.Fields(rest)
	}

	return ParseResult{
		Command: cmd,
		Args:    args,
		RawArgs: rest,
	}
}

// Index parses a 1-based position argument such as the "2" in "use 2" and
// returns it 0-based.
//
// Postcondition: ok is false unless the argument is an integer >= 1.
func (p ParseResult) Index(pos int) (int, bool) {
	if pos < 0 || pos >= len(p.Args) {
		return 0, false
	}
	n, err := strconv.Atoi(p.Args[pos])
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}
