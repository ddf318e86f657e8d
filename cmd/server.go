package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
	"github.com/protolambda/sphericalmercator/server"
)

var ServerCmd = &cli.Command{
	Name:        "server",
	Usage:       "Run http server.",
	Description: "Serve the conversions as JSON over http: /px /ll /bbox /xyz /convert /forward /inverse. Stops on interrupt.",
	Action:      Server,
	Flags:       withLogFlags(flags.ListenAddrFlag),
}

func Server(ctx *cli.Context) error {
	log, err := SetupLogger(ctx)
	if err != nil {
		return err
	}
	err = server.Serve(ctx.Context, log, ctx.String(flags.ListenAddrFlag.Name), &server.Handler{Log: log})
	if err == nil {
		log.Info("closed server")
	}
	return err
}
