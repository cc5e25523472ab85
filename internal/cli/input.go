package cli

import (
	"strings"
)

// lineReader is the part of *readline.Instance the CLI uses. Tests supply a
// scripted implementation.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// GetSimpleText shows prompt, reads one line from lr and trims it. The
// previous prompt is restored afterwards.
//
// Example prompt format:
//
//	Name: _
func GetSimpleText(lr lineReader, prompt string, restore string) (string, error) {
	lr.SetPrompt(prompt + ": ")
	defer lr.SetPrompt(restore)

	line, err := lr.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
