package commands

import "strings"

// Command is a parsed line of player input.
type Command struct {
	Verb string
	// Phrase is the rest of the line naming the target, if any.
	Phrase string
}

// prepositions that may sit between a verb and its target ("look at walls").
var prepositions = map[string]bool{
	"at": true,
}

// Parse splits a line into a verb and a target phrase. It returns nil for
// blank input.
func Parse(line string) *Command {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return nil
	}

	rest := words[1:]
	if len(rest) > 1 && prepositions[rest[0]] {
		rest = rest[1:]
	}

	return &Command{
		Verb:   words[0],
		Phrase: strings.Join(rest, " "),
	}
}
