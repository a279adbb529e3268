package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// ArgumentError is a command-line argument the command cannot work with.
// Message is shown to the user as is.
type ArgumentError struct {
	Message string
	Err     error
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Target is a validated input file and the pattern derived from its name.
type Target struct {
	Path    string
	Name    string
	Pattern string
}

// ProcessArgs validates the positional arguments. Exactly one is expected: the
// path of an existing regular file whose base name, without its extension, is
// the pattern to count. "A.B.txt" gives "A.B" and "noDot" gives "noDot".
func ProcessArgs(args []string) (Target, error) {
	if len(args) != 1 {
		return Target{}, &ArgumentError{Message: MsgHelp}
	}

	path := strings.TrimSpace(args[0])
	info, err := os.Stat(path)
	if err != nil {
		return Target{}, &ArgumentError{Message: statMessage(err), Err: err}
	}
	if !info.Mode().IsRegular() {
		return Target{}, &ArgumentError{Message: MsgFileDoesNotExist}
	}

	name := filepath.Base(path)
	pattern := strings.TrimSuffix(name, filepath.Ext(name))
	if pattern == "" {
		return Target{}, &ArgumentError{Message: MsgNoMainPart}
	}
	return Target{Path: path, Name: name, Pattern: pattern}, nil
}

func statMessage(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return MsgFileDoesNotExist
	case errors.Is(err, fs.ErrPermission):
		return MsgNoAccess
	case errors.Is(err, syscall.ENAMETOOLONG):
		return MsgPathTooLong
	default:
		return MsgUnexpected
	}
}
