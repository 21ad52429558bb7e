package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func withValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func withMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// prompt writes msg to w and reads one trimmed line from br, asking again
// while the validator rejects the answer.
func prompt(br *bufio.Reader, w io.Writer, msg string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	tries := 0
	for {
		if _, err := io.WriteString(w, msg); err != nil {
			return "", err
		}

		input, err := readLine(br)
		if err != nil {
			return "", err
		}

		if config.validator != nil {
			ok, reason := config.validator(input)
			if !ok {
				if _, err := io.WriteString(w, reason); err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && tries >= config.tries {
					return "", fmt.Errorf("too many tries")
				}
				continue
			}
		}

		return input, nil
	}
}

// readLine returns the next line without its line ending. A final line with
// no newline is returned before io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// validName accepts a single word of letters.
func validName(s string) (bool, string) {
	switch {
	case s == "":
		return false, "Please enter a name.\n"
	case len(s) > maxNameLength:
		return false, fmt.Sprintf("Names must be at most %d letters.\n", maxNameLength)
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false, "Names may only contain letters.\n"
		}
	}
	return true, ""
}
