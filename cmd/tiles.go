package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
)

// upper bound of --limit, the listing is held in memory before rendering
const maxTileListing = 1_000_000

var TilesCmd = &cli.Command{
	Name:        "tiles",
	Usage:       "List the tiles covering a bounding box.",
	Description: "List every tile covering a bounding box at a zoom level, with the bounding box of each tile.",
	Action:      Tiles,
	Flags: withLogFlags(
		flags.BBoxFlag,
		flags.ZoomFlag,
		flags.TMSFlag,
		flags.SRSFlag,
		flags.TileSizeFlag,
		flags.LimitFlag,
		flags.FormatFlag,
	),
}

func Tiles(ctx *cli.Context) error {
	log, err := SetupLogger(ctx)
	if err != nil {
		return err
	}
	bbox, err := bboxFlag(ctx)
	if err != nil {
		return err
	}
	srs, err := srsFlag(ctx)
	if err != nil {
		return err
	}
	format := ctx.String(flags.FormatFlag.Name)
	if format != "box" && format != "csv" {
		return fmt.Errorf("unrecognized output format: %q", format)
	}
	zoom := ctx.Int(flags.ZoomFlag.Name)
	tms := ctx.Bool(flags.TMSFlag.Name)
	limit := ctx.Int(flags.LimitFlag.Name)
	if limit < 1 || limit > maxTileListing {
		return fmt.Errorf("limit %d not in [1, %d]", limit, maxTileListing)
	}

	p := newProjector(ctx, log)
	// iterate in XYZ order, rows are flipped when printing
	r, err := p.TileRange(bbox, zoom, false, srs)
	if err != nil {
		return fmt.Errorf("failed to compute tile range: %w", err)
	}
	count := r.Count()
	if count > limit {
		log.Warn("too many tiles, truncating output", "tiles", count, "limit", limit)
	}

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"z", "x", "y", "west", "south", "east", "north"})
	tiles := r.Tiles(zoom, limit)
	for _, t := range tiles {
		x, y := int(t.X), int(t.Y)
		tb, err := p.TileBBox(x, y, zoom, false, srs)
		if err != nil {
			return fmt.Errorf("failed to compute bbox of tile %d/%d/%d: %w", zoom, x, y, err)
		}
		if tms {
			y = (1<<uint(zoom) - 1) - y
		}
		tw.AppendRow(table.Row{zoom, x, y, formatFloat(tb.West()), formatFloat(tb.South()), formatFloat(tb.East()), formatFloat(tb.North())})
	}
	log.Info("listed tiles", "zoom", zoom, "tiles", len(tiles), "total", count)

	out := tw.Render()
	if format == "csv" {
		out = tw.RenderCSV()
	}
	_, err = fmt.Fprintln(ctx.App.Writer, out)
	return err
}
