package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
)

// SetupLogger creates a logger from the log flags.
// Logs go to the error writer of the app, command output goes to the regular writer.
func SetupLogger(ctx *cli.Context) (log.Logger, error) {
	format, err := logFormat(ctx.String(flags.LogFormatFlag.Name), ctx.Bool(flags.LogColorFlag.Name))
	if err != nil {
		return nil, err
	}
	lvl, err := log.LvlFromString(strings.ToLower(ctx.String(flags.LogLevelFlag.Name)))
	if err != nil {
		return nil, fmt.Errorf("unrecognized log level: %w", err)
	}
	logger := log.New()
	logger.SetHandler(log.LvlFilterHandler(lvl, log.SyncHandler(log.StreamHandler(ctx.App.ErrWriter, format))))
	return logger, nil
}

func logFormat(name string, color bool) (log.Format, error) {
	switch name {
	case "text", "terminal":
		return log.TerminalFormat(color), nil
	case "logfmt":
		return log.LogfmtFormat(), nil
	case "json":
		return log.JSONFormat(), nil
	case "json-pretty":
		return log.JSONFormatEx(true, true), nil
	default:
		return nil, fmt.Errorf("unrecognized log format: %q", name)
	}
}
