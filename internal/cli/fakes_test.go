package cli

import (
	"io"
)

// scriptedLines is a lineReader that replays fixed input.
type scriptedLines struct {
	lines   []string
	pos     int
	prompts []string
	closed  bool
}

func newScriptedLines(lines ...string) *scriptedLines {
	return &scriptedLines{lines: lines}
}

func (s *scriptedLines) Readline() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

func (s *scriptedLines) SetPrompt(p string) { s.prompts = append(s.prompts, p) }

func (s *scriptedLines) Close() error {
	s.closed = true
	return nil
}
