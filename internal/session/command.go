package session

import "strings"

// CommandKind tells the session what to do with an input line
type CommandKind int

const (
	// Translate translates Command.Text
	Translate CommandKind = iota
	// Quit ends the session
	Quit
	// Help prints the available commands
	Help
	// History prints recent translations
	History
	// Empty is a blank line
	Empty
)

// Command is a parsed input line
type Command struct {
	Kind CommandKind
	Text string
}

var commands = map[string]CommandKind{
	"exit":     Quit,
	":q":       Quit,
	":quit":    Quit,
	":help":    Help,
	":h":       Help,
	":history": History,
}

// ParseCommand turns a raw input line into a Command. Text to translate is
// trimmed and lower-cased. Apart from "exit", commands start with ':' so
// they never collide with a word to translate.
func ParseCommand(line string) Command {
	text := strings.ToLower(strings.TrimSpace(line))
	if text == "" {
		return Command{Kind: Empty}
	}
	if kind, ok := commands[text]; ok {
		return Command{Kind: kind}
	}
	return Command{Kind: Translate, Text: text}
}
