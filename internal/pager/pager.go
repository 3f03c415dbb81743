// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pager

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/staranto/hexdiff/internal/differ"
	"github.com/staranto/hexdiff/internal/log"
	"github.com/staranto/hexdiff/internal/output"
)

// State is a pager control loop state.
type State int

const (
	Running State = iota
	AwaitingInput
	Quitting
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting-input"
	case Quitting:
		return "quitting"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome is how a Run ended. All outcomes map to a zero exit status.
type Outcome int

const (
	Completed Outcome = iota
	Quit
	Interrupted
)

const (
	Prompt          = "\nPress Enter or Spacebar to continue, 'q' to quit: "
	QuitNotice      = "Quitting..."
	InterruptNotice = "\nProcess interrupted. Exiting..."
)

// DefaultLinesPerPage is the page size when none is configured.
const DefaultLinesPerPage = 38

type inputLine struct {
	text string
	err  error
}

// Session is the state of one comparison run: the output and input streams,
// the formatter and the count of lines shown since the last prompt.
type Session struct {
	out       *bufio.Writer
	in        io.Reader
	formatter *output.Formatter
	pageSize  int

	state State
	count int

	lines     chan inputLine
	done      chan struct{}
	closeOnce sync.Once
}

// NewSession prepares a session writing to w and reading answers from r.
func NewSession(w io.Writer, r io.Reader, f *output.Formatter, linesPerPage int) (*Session, error) {
	if f == nil {
		return nil, errors.New("formatter is required")
	}
	if linesPerPage < 1 {
		return nil, fmt.Errorf("lines per page must be positive, got %d", linesPerPage)
	}
	return &Session{
		out:       bufio.NewWriter(w),
		in:        r,
		formatter: f,
		pageSize:  linesPerPage,
		state:     Running,
		done:      make(chan struct{}),
	}, nil
}

// State returns the current control loop state.
func (s *Session) State() State {
	return s.state
}

// Close flushes pending output and releases the input reader goroutine.
func (s *Session) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return s.out.Flush()
}

// Run renders a and b a page at a time. It returns Completed after the last
// line, Quit when the user answers q (or input ends) and Interrupted when ctx
// is cancelled. No prompt follows the final page.
func (s *Session) Run(ctx context.Context, a, b differ.Sequence) (Outcome, error) {
	total := s.formatter.LineCount(max(a.Len(), b.Len()))
	log.Debugf("pager: lines=%d page=%d", total, s.pageSize)

	next := 0
	for {
		if ctx.Err() != nil {
			return s.interrupt()
		}

		switch s.state {
		case Running:
			if next == total {
				s.state = Done
				continue
			}
			if s.count >= s.pageSize {
				s.state = AwaitingInput
				continue
			}
			line := s.formatter.Format(a, b, next*s.formatter.BytesPerLine)
			if _, err := fmt.Fprintln(s.out, line); err != nil {
				return Completed, fmt.Errorf("failed to write line: %w", err)
			}
			log.Tracef("line %d offset=%08X differing=%d", next, line.Offset, line.Differing)
			s.count++
			next++

		case AwaitingInput:
			state, err := s.await(ctx)
			if ctx.Err() != nil {
				return s.interrupt()
			}
			if err != nil {
				return Completed, err
			}
			s.state = state

		case Quitting:
			fmt.Fprintln(s.out, QuitNotice)
			return Quit, s.out.Flush()

		case Done:
			return Completed, s.out.Flush()
		}
	}
}

// await shows the prompt and maps one answer to the next state. Empty input
// (Enter, or a lone space) resumes with a fresh page; q quits; anything else
// asks again.
func (s *Session) await(ctx context.Context) (State, error) {
	fmt.Fprint(s.out, Prompt)
	if err := s.out.Flush(); err != nil {
		return AwaitingInput, fmt.Errorf("failed to write prompt: %w", err)
	}

	text, err := s.readLine(ctx)
	if errors.Is(err, io.EOF) {
		log.Debug("pager: input closed")
		fmt.Fprintln(s.out)
		return Quitting, nil
	}
	if err != nil {
		return AwaitingInput, err
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		s.count = 0
		return Running, nil
	case "q":
		return Quitting, nil
	default:
		log.Debugf("pager: ignoring answer %q", text)
		return AwaitingInput, nil
	}
}

// readLine waits for the next input line or for ctx to end. The blocking read
// lives on its own goroutine so an interrupt is seen while waiting.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.lines == nil {
		s.lines = make(chan inputLine)
		go s.scan()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-s.lines:
		return l.text, l.err
	}
}

func (s *Session) scan() {
	if s.in == nil {
		s.send(inputLine{err: io.EOF})
		return
	}

	r := bufio.NewReader(s.in)
	for {
		text, err := r.ReadString('\n')
		if text != "" {
			if !s.send(inputLine{text: text}) {
				return
			}
		}
		if err != nil {
			s.send(inputLine{err: err})
			return
		}
	}
}

func (s *Session) send(l inputLine) bool {
	select {
	case s.lines <- l:
		return true
	case <-s.done:
		return false
	}
}

func (s *Session) interrupt() (Outcome, error) {
	fmt.Fprintln(s.out, InterruptNotice)
	return Interrupted, s.out.Flush()
}
