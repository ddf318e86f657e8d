package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
)

var BBoxCmd = &cli.Command{
	Name:        "bbox",
	Usage:       "Compute the bounding box of a tile.",
	Description: "Compute the west,south,east,north bounding box of a tile, in WGS84 or web mercator.",
	Action:      BBox,
	Flags: withLogFlags(
		flags.TileXFlag,
		flags.TileYFlag,
		flags.ZoomFlag,
		flags.TMSFlag,
		flags.SRSFlag,
		flags.TileSizeFlag,
	),
}

func BBox(ctx *cli.Context) error {
	log, err := SetupLogger(ctx)
	if err != nil {
		return err
	}
	srs, err := srsFlag(ctx)
	if err != nil {
		return err
	}
	p := newProjector(ctx, log)
	x, y, z := ctx.Int(flags.TileXFlag.Name), ctx.Int(flags.TileYFlag.Name), ctx.Int(flags.ZoomFlag.Name)
	bbox, err := p.TileBBox(x, y, z, ctx.Bool(flags.TMSFlag.Name), srs)
	if err != nil {
		return fmt.Errorf("failed to compute bbox of tile %d/%d/%d: %w", z, x, y, err)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, bbox.String())
	return err
}

var XYZCmd = &cli.Command{
	Name:        "xyz",
	Usage:       "Compute the tile range covering a bounding box.",
	Description: "Compute the minX minY maxX maxY tile range covering a bounding box at a zoom level.",
	Action:      XYZ,
	Flags: withLogFlags(
		flags.BBoxFlag,
		flags.ZoomFlag,
		flags.TMSFlag,
		flags.SRSFlag,
		flags.TileSizeFlag,
	),
}

func XYZ(ctx *cli.Context) error {
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
	p := newProjector(ctx, log)
	r, err := p.TileRange(bbox, ctx.Int(flags.ZoomFlag.Name), ctx.Bool(flags.TMSFlag.Name), srs)
	if err != nil {
		return fmt.Errorf("failed to compute tile range: %w", err)
	}
	log.Debug("computed tile range", "bbox", bbox, "tiles", r.Count())
	_, err = fmt.Fprintf(ctx.App.Writer, "%d %d %d %d\n", r.MinX, r.MinY, r.MaxX, r.MaxY)
	return err
}
