// Package helpers provides shared helpers for wiring CLI flags.
package helpers

import (
	"errors"
	"fmt"

	"github.com/provisio-dev/provisio/pkg/utils/timer"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// TimingFlagName is the name of the persistent flag that enables
// per-activity timing output.
const TimingFlagName = "timing"

// ConfigFlagName is the name of the flag that selects the scenario
// configuration file.
const ConfigFlagName = "config"

// ErrNilCommand is returned when a flag lookup is attempted on a nil command.
var ErrNilCommand = errors.New("command is nil")

// ErrFlagNotFound is returned when the requested flag is not registered on
// the command or any of its parents.
var ErrFlagNotFound = errors.New("flag not found")

// IsTimingEnabled reports whether the timing flag is set on the command, its
// persistent flags, or a parent's persistent flags.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		if flags.Lookup(TimingFlagName) == nil {
			continue
		}

		enabled, err := flags.GetBool(TimingFlagName)
		if err != nil {
			return false, fmt.Errorf("failed to read %s flag: %w", TimingFlagName, err)
		}

		return enabled, nil
	}

	return false, fmt.Errorf("%w: %s", ErrFlagNotFound, TimingFlagName)
}

// MaybeTimer returns the timer when timing output is enabled on the command,
// and nil otherwise.
func MaybeTimer(cmd *cobra.Command, tmr timer.Timer) timer.Timer {
	if cmd == nil || tmr == nil {
		return nil
	}

	enabled, err := IsTimingEnabled(cmd)
	if err != nil || !enabled {
		return nil
	}

	return tmr
}
