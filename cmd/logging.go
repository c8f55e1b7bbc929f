package cmd

import (
	"github.com/mkbrown/photonmap/pkg/log"
	"github.com/urfave/cli/v2"
)

var logger = log.New("photonmap")

func setupLogging(ctx *cli.Context) {
	if ctx.Bool("verbose") {
		log.SetLevel(log.Debug)
	}
}
