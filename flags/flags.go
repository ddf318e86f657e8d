package flags

import "github.com/urfave/cli/v2"

const envVarPrefix = "SPHERICAL_MERCATOR_"

func prefixEnvVar(name string) []string {
	return []string{envVarPrefix + name}
}

// log flags
var (
	LogLevelFlag = &cli.StringFlag{
		Name:    "log.level",
		Usage:   "The lowest log level that will be output",
		Value:   "info",
		EnvVars: prefixEnvVar("LOG_LEVEL"),
	}
	LogFormatFlag = &cli.StringFlag{
		Name:    "log.format",
		Usage:   "Format the log output. Supported formats: 'text', 'terminal', 'logfmt', 'json', 'json-pretty'",
		Value:   "text",
		EnvVars: prefixEnvVar("LOG_FORMAT"),
	}
	LogColorFlag = &cli.BoolFlag{
		Name:    "log.color",
		Usage:   "Color the log output",
		EnvVars: prefixEnvVar("LOG_COLOR"),
	}
)

var LogFlags = []cli.Flag{
	LogLevelFlag,
	LogFormatFlag,
	LogColorFlag,
}

// grid flags
var (
	TileSizeFlag = &cli.Float64Flag{
		Name:    "size",
		Usage:   "Tile size in pixels",
		Value:   256,
		EnvVars: prefixEnvVar("TILE_SIZE"),
	}
	ZoomFlag = &cli.IntFlag{
		Name:     "zoom",
		Aliases:  []string{"z"},
		Usage:    "Zoom level, 0 to 29",
		Required: true,
	}
	TMSFlag = &cli.BoolFlag{
		Name:  "tms",
		Usage: "Number tile rows from the bottom (TMS) instead of the top (XYZ)",
	}
	SRSFlag = &cli.StringFlag{
		Name:  "srs",
		Usage: "Projection of the bounding box: WGS84 (EPSG:4326) or 900913 (EPSG:3857)",
		Value: "WGS84",
	}
)

// input flags
var (
	BBoxFlag = &cli.StringFlag{
		Name:     "bbox",
		Usage:    "Bounding box as west,south,east,north",
		Required: true,
	}
	LonFlag = &cli.Float64Flag{
		Name:     "lon",
		Usage:    "Longitude in degrees",
		Required: true,
	}
	LatFlag = &cli.Float64Flag{
		Name:     "lat",
		Usage:    "Latitude in degrees",
		Required: true,
	}
	PixelXFlag = &cli.Float64Flag{
		Name:     "x",
		Usage:    "Pixel x, from the left of the world",
		Required: true,
	}
	PixelYFlag = &cli.Float64Flag{
		Name:     "y",
		Usage:    "Pixel y, from the top of the world",
		Required: true,
	}
	MetersXFlag = &cli.Float64Flag{
		Name:     "x",
		Usage:    "Web mercator x in meters",
		Required: true,
	}
	MetersYFlag = &cli.Float64Flag{
		Name:     "y",
		Usage:    "Web mercator y in meters",
		Required: true,
	}
	TileXFlag = &cli.IntFlag{
		Name:     "x",
		Usage:    "Tile column",
		Required: true,
	}
	TileYFlag = &cli.IntFlag{
		Name:     "y",
		Usage:    "Tile row",
		Required: true,
	}
	ToFlag = &cli.StringFlag{
		Name:     "to",
		Usage:    "Target projection: WGS84 or 900913",
		Required: true,
	}
)

// output flags
var (
	LimitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of tiles to list, at most 1000000",
		Value: 1000,
	}
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format: 'box' or 'csv'",
		Value: "box",
	}
)

// server flags
var (
	ListenAddrFlag = &cli.StringFlag{
		Name:    "listen",
		Usage:   "Address to bind the http server to",
		Value:   "127.0.0.1:8080",
		EnvVars: prefixEnvVar("LISTEN"),
	}
)
