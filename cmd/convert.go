package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/protolambda/sphericalmercator/flags"
	"github.com/protolambda/sphericalmercator/mercator"
)

var ConvertCmd = &cli.Command{
	Name:        "convert",
	Usage:       "Convert a bounding box between WGS84 and web mercator.",
	Description: "Convert both corners of a bounding box to the target projection. The corners are not reordered.",
	Action:      Convert,
	Flags:       withLogFlags(flags.BBoxFlag, flags.ToFlag),
}

func Convert(ctx *cli.Context) error {
	if _, err := SetupLogger(ctx); err != nil {
		return err
	}
	bbox, err := bboxFlag(ctx)
	if err != nil {
		return err
	}
	to, err := mercator.ParseProjection(ctx.String(flags.ToFlag.Name))
	if err != nil {
		return fmt.Errorf("bad --%s value: %w", flags.ToFlag.Name, err)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, mercator.ConvertBBox(bbox, to).String())
	return err
}

var ForwardCmd = &cli.Command{
	Name:        "forward",
	Usage:       "Project lon/lat to web mercator meters.",
	Description: "Project lon/lat to web mercator meters, clamped to the maximum extent.",
	Action:      Forward,
	Flags:       withLogFlags(flags.LonFlag, flags.LatFlag),
}

func Forward(ctx *cli.Context) error {
	if _, err := SetupLogger(ctx); err != nil {
		return err
	}
	xy := mercator.Forward(mercator.GeoPoint{Lon: ctx.Float64(flags.LonFlag.Name), Lat: ctx.Float64(flags.LatFlag.Name)})
	_, err := fmt.Fprintln(ctx.App.Writer, formatFloat(xy.Lon), formatFloat(xy.Lat))
	return err
}

var InverseCmd = &cli.Command{
	Name:        "inverse",
	Usage:       "Unproject web mercator meters to lon/lat.",
	Description: "Unproject web mercator meters to lon/lat.",
	Action:      Inverse,
	Flags:       withLogFlags(flags.MetersXFlag, flags.MetersYFlag),
}

func Inverse(ctx *cli.Context) error {
	if _, err := SetupLogger(ctx); err != nil {
		return err
	}
	ll := mercator.Inverse(mercator.GeoPoint{Lon: ctx.Float64(flags.MetersXFlag.Name), Lat: ctx.Float64(flags.MetersYFlag.Name)})
	_, err := fmt.Fprintln(ctx.App.Writer, formatFloat(ll.Lon), formatFloat(ll.Lat))
	return err
}
