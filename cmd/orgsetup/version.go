package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version information - injected at build time via ldflags
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = ""
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, Version)
				return
			}

			fmt.Fprintf(out, "orgsetup version %s", Version)
			if Build != "unknown" && Build != "" {
				fmt.Fprintf(out, " (build: %s)", Build)
			}
			if BuildTime != "" {
				fmt.Fprintf(out, " [%s]", BuildTime)
			}
			fmt.Fprintln(out)

			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

			// Development builds carry the VCS revision in build info.
			if Version == "dev" {
				if info, ok := debug.ReadBuildInfo(); ok {
					for _, setting := range info.Settings {
						if setting.Key == "vcs.revision" && len(setting.Value) > 7 {
							fmt.Fprintf(out, "Commit: %s\n", setting.Value[:7])
							break
						}
					}
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")
	return cmd
}
