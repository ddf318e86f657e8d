package cmd

import "github.com/urfave/cli/v2"

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "sphericalmercator"
	app.Usage = "Spherical mercator coordinate and tile math"
	app.Description = "Convert between WGS84 lon/lat, web mercator meters, pixels and map tiles."
	app.Commands = []*cli.Command{
		PxCmd,
		LLCmd,
		BBoxCmd,
		XYZCmd,
		ConvertCmd,
		ForwardCmd,
		InverseCmd,
		TilesCmd,
		ServerCmd,
	}
	return app
}
