package cmd

import (
	"github.com/graypath/graypath/log"
	"github.com/urfave/cli"
)

var logger = log.New("graypath")

// Map the global -v/-vv flags to a log level; -vv wins when both are set.
func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	}
}
