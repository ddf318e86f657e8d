package cmd

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
	"github.com/protolambda/sphericalmercator/mercator"
)

func withLogFlags(fs ...cli.Flag) []cli.Flag {
	out := make([]cli.Flag, 0, len(flags.LogFlags)+len(fs))
	out = append(out, flags.LogFlags...)
	return append(out, fs...)
}

func newProjector(ctx *cli.Context, log log.Logger) *mercator.Projector {
	p := mercator.New(mercator.WithTileSize(ctx.Float64(flags.TileSizeFlag.Name)))
	log.Debug("using projector", "tile_size", p.TileSize())
	return p
}

func srsFlag(ctx *cli.Context) (mercator.Projection, error) {
	srs, err := mercator.ParseProjection(ctx.String(flags.SRSFlag.Name))
	if err != nil {
		return srs, fmt.Errorf("bad --%s value: %w", flags.SRSFlag.Name, err)
	}
	return srs, nil
}

func bboxFlag(ctx *cli.Context) (mercator.BBox, error) {
	bbox, err := mercator.ParseBBox(ctx.String(flags.BBoxFlag.Name))
	if err != nil {
		return bbox, fmt.Errorf("bad --%s value: %w", flags.BBoxFlag.Name, err)
	}
	return bbox, nil
}

// formatFloat prints the shortest exact representation, without exponent.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
