package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
	"github.com/protolambda/sphericalmercator/mercator"
)

var PxCmd = &cli.Command{
	Name:        "px",
	Usage:       "Convert lon/lat to pixel coordinates.",
	Description: "Convert lon/lat to pixel coordinates at a zoom level, rounded and clamped to the world size.",
	Action:      Px,
	Flags:       withLogFlags(flags.LonFlag, flags.LatFlag, flags.ZoomFlag, flags.TileSizeFlag),
}

func Px(ctx *cli.Context) error {
	log, err := SetupLogger(ctx)
	if err != nil {
		return err
	}
	p := newProjector(ctx, log)
	ll := mercator.GeoPoint{Lon: ctx.Float64(flags.LonFlag.Name), Lat: ctx.Float64(flags.LatFlag.Name)}
	px, err := p.Px(ll, ctx.Int(flags.ZoomFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to convert to pixels: %w", err)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, formatFloat(px.X), formatFloat(px.Y))
	return err
}

var LLCmd = &cli.Command{
	Name:        "ll",
	Usage:       "Convert pixel coordinates to lon/lat.",
	Description: "Convert pixel coordinates at a zoom level to lon/lat.",
	Action:      LL,
	Flags:       withLogFlags(flags.PixelXFlag, flags.PixelYFlag, flags.ZoomFlag, flags.TileSizeFlag),
}

func LL(ctx *cli.Context) error {
	log, err := SetupLogger(ctx)
	if err != nil {
		return err
	}
	p := newProjector(ctx, log)
	px := mercator.PixelPoint{X: ctx.Float64(flags.PixelXFlag.Name), Y: ctx.Float64(flags.PixelYFlag.Name)}
	ll, err := p.LL(px, ctx.Int(flags.ZoomFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to convert to lon/lat: %w", err)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, formatFloat(ll.Lon), formatFloat(ll.Lat))
	return err
}
