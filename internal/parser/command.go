// Package parser turns one line of user input into a command kind and its
// validated arguments.
//
// Arguments are split on literal markers (" /by ", " /from ", " /to ",
// " /p ") rather than parsed with a grammar, so a description that contains
// one of the markers as ordinary words is split at that point.
package parser

import (
	"strings"
	"unicode"
)

// CommandKind identifies the action requested by an input line.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandList
	CommandMark
	CommandUnmark
	CommandDelete
	CommandTodo
	CommandDeadline
	CommandEvent
	CommandFind
	CommandPriority
	CommandBye
	CommandHelp
)

var commandWords = map[string]CommandKind{
	"list":     CommandList,
	"mark":     CommandMark,
	"unmark":   CommandUnmark,
	"delete":   CommandDelete,
	"todo":     CommandTodo,
	"deadline": CommandDeadline,
	"event":    CommandEvent,
	"find":     CommandFind,
	"priority": CommandPriority,
	"bye":      CommandBye,
	"help":     CommandHelp,
}

// String returns the command word for the kind.
func (k CommandKind) String() string {
	for word, kind := range commandWords {
		if kind == k {
			return word
		}
	}
	return "unknown"
}

// Mutates reports whether a command of this kind changes the task list and
// therefore has to be followed by a save.
func (k CommandKind) Mutates() bool {
	switch k {
	case CommandMark, CommandUnmark, CommandDelete, CommandTodo, CommandDeadline, CommandEvent:
		return true
	default:
		return false
	}
}

// ParseCommand maps the first whitespace-delimited token of line,
// case-insensitively, to a command kind. Unrecognized or missing tokens give
// CommandUnknown.
func ParseCommand(line string) CommandKind {
	word, _ := splitCommandWord(line)
	if kind, ok := commandWords[strings.ToLower(word)]; ok {
		return kind
	}
	return CommandUnknown
}

// CommandWord returns the first token of line as typed.
func CommandWord(line string) string {
	word, _ := splitCommandWord(line)
	return word
}

// splitCommandWord separates the command word from the rest of the line.
// The remainder is returned untrimmed apart from the single separating run of
// whitespace.
func splitCommandWord(line string) (word, rest string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}
