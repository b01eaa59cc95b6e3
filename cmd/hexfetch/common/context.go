package common

import "github.com/hyzeos/hexfetch/pkg/config"

// Context carries shared state into the subcommands.
type Context struct {
	Verbose bool
	Config  config.Config
}
