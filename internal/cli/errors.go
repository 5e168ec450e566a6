package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrEmptyDescription = errors.New("empty description")
)

// usageError marks mistakes in how the command was invoked (exit code 2).
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return usageError{err: err}
}

func isUsage(err error) bool {
	var ue usageError
	return errors.As(err, &ue)
}

// usageArgs wraps a cobra validator so its failures count as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usage(v(cmd, args))
	}
}
