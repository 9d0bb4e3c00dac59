package commands

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is stamped at link time with -ldflags "-X".
var Version = "0.1.0"

// GetVersionString returns Version, suffixed with the VCS revision when the
// binary carries build info.
func GetVersionString() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return Version + "+" + s.Value[:7]
		}
	}
	return Version
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the hammer CLI",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
