package cmdutil

import "github.com/spf13/pflag"

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.Bool("no-color", false, "render tables without colors")
	flags.String("config", "", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file to load, ignored when missing")
	flags.String("log-file", "", "also write json logs to this file, rotated by size")
	flags.String("metrics-listen", "", "serve prometheus metrics on this address while the command runs, e.g. :9090")
}
