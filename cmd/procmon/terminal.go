//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// screen owns stdout for the lifetime of the monitor.
type screen struct {
	out         *os.File
	interactive bool
	undo        []func()
}

func enableSingleView(logger *slog.Logger) *screen {
	s := &screen{out: os.Stdout}
	stdoutFD := int(os.Stdout.Fd())
	stdinFD := int(os.Stdin.Fd())
	if !term.IsTerminal(stdoutFD) {
		return s
	}
	s.interactive = true

	fmt.Fprint(s.out, "\033[?1049h") // switch to alternate buffer
	fmt.Fprint(s.out, "\033[?25l")   // hide cursor

	if term.IsTerminal(stdinFD) {
		if undo, err := enableKeyInput(stdinFD); err != nil {
			logger.Warn("unable to switch stdin to key input", "err", err)
		} else {
			s.undo = append(s.undo, undo)
		}
	}
	return s
}

func (s *screen) restore() {
	for i := len(s.undo) - 1; i >= 0; i-- {
		s.undo[i]()
	}
	if s.interactive {
		fmt.Fprint(s.out, "\033[?25h")   // show cursor
		fmt.Fprint(s.out, "\033[?1049l") // restore main buffer
	}
}

// height returns the terminal height, or 0 when the output is not sized.
func (s *screen) height() int {
	if !s.interactive {
		return 0
	}
	_, h, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 0
	}
	return h
}

func (s *screen) draw(frame []byte) {
	if s.interactive {
		fmt.Fprint(s.out, "\033[H\033[2J")
	}
	s.out.Write(frame)
}

// enableKeyInput turns off echo and line buffering so single key presses
// reach the reader without Enter. Output processing is left untouched.
func enableKeyInput(fd int) (func(), error) {
	termState, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	updated := *termState
	updated.Lflag &^= unix.ECHO | unix.ICANON
	updated.Cc[unix.VMIN] = 1
	updated.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &updated); err != nil {
		return nil, err
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, ioctlSetTermios, termState)
	}, nil
}

// readKeys forwards every byte read from r. The channel closes when r does.
func readKeys(r io.Reader) <-chan byte {
	keys := make(chan byte)
	go func() {
		defer close(keys)
		buf := make([]byte, 16)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				keys <- b
			}
			if err != nil {
				return
			}
		}
	}()
	return keys
}
