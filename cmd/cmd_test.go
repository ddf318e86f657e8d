package cmd

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protolambda/sphericalmercator/mercator"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := NewApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"sphericalmercator"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"px", []string{"px", "--lon", "-179", "--lat", "85", "--zoom", "9"}, "364 215\n"},
		{"px clamped", []string{"px", "--lon=250", "--lat=3", "-z", "4"}, "4096 2014\n"},
		{"ll", []string{"ll", "--x", "128", "--y", "128", "--zoom", "0"}, "0 0\n"},
		{"xyz", []string{"xyz", "--bbox=-180,-85.05112877980659,0,0", "--zoom", "1"}, "0 1 0 1\n"},
		{"xyz tms", []string{"xyz", "--bbox=-180,-85.05112877980659,0,0", "--zoom", "1", "--tms"}, "0 0 0 0\n"},
		{"xyz tile size", []string{"xyz", "--bbox=-10.3,40.2,20.7,55.1", "--zoom", "5", "--size", "512"}, "15 10 17 12\n"},
		{"convert", []string{"convert", "--bbox=0,0,0,0", "--to", "WGS84"}, "0,0,0,0\n"},
		{"forward clamp", []string{"forward", "--lon", "0", "--lat", "89.9"}, "0 20037508.342789244\n"},
		{"inverse", []string{"inverse", "--x", "0", "--y", "0"}, "0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func parseFloats(t *testing.T, line string, sep string) []float64 {
	t.Helper()
	var out []float64
	for _, part := range strings.Split(strings.TrimSpace(line), sep) {
		v, err := strconv.ParseFloat(part, 64)
		require.NoError(t, err, line)
		out = append(out, v)
	}
	return out
}

func TestBBoxCommand(t *testing.T) {
	want := []float64{0, -85.05112877980659, 180, 0}
	for _, args := range [][]string{
		{"bbox", "--x", "1", "--y", "1", "--zoom", "1"},
		{"bbox", "--x", "1", "--y", "0", "--zoom", "1", "--tms"},
		{"bbox", "--x", "1", "--y", "1", "--zoom", "1", "--size", "512"},
	} {
		out, err := run(t, args...)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, parseFloats(t, out, ","), 1e-9, args)
	}

	out, err := run(t, "bbox", "--x", "0", "--y", "0", "--zoom", "0", "--srs", "EPSG:3857")
	require.NoError(t, err)
	m := mercator.MaxExtent
	assert.InDeltaSlice(t, []float64{-m, -m, m, m}, parseFloats(t, out, ","), 1e-4)
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, "convert", "--bbox=-180,-85.0511287798066,180,85.0511287798066", "--to", "900913")
	require.NoError(t, err)
	m := mercator.MaxExtent
	assert.InDeltaSlice(t, []float64{-m, -m, m, m}, parseFloats(t, out, ","), 1e-4)

	out, err = run(t, "convert", "--bbox=-20037508.342789244,-20037508.342789244,0,0", "--to", "WGS84")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-180, -85.0511287798066, 0, 0}, parseFloats(t, out, ","), 1e-9)

	out, err = run(t, "inverse", "--x", "-20037508.342789244", "--y", "20037508.342789244")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-180, 85.0511287798066}, parseFloats(t, out, " "), 1e-9)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"zoom too large", []string{"px", "--lon", "0", "--lat", "0", "--zoom", "30"}, mercator.ErrInvalidZoom},
		{"negative zoom", []string{"bbox", "--x", "0", "--y", "0", "--zoom=-1"}, mercator.ErrInvalidZoom},
		{"bad srs", []string{"xyz", "--bbox=0,0,1,1", "--zoom", "1", "--srs", "EPSG:2056"}, mercator.ErrUnknownProjection},
		{"bad bbox", []string{"convert", "--bbox=0,0,1", "--to", "WGS84"}, mercator.ErrInvalidBBoxLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	_, err := run(t, "px", "--lon", "0", "--lat", "0", "--zoom", "1", "--log.format", "xml")
	assert.ErrorContains(t, err, "unrecognized log format")

	_, err = run(t, "px", "--lon", "0", "--zoom", "1")
	assert.Error(t, err)
}

func TestLogFormat(t *testing.T) {
	for _, name := range []string{"text", "terminal", "logfmt", "json", "json-pretty"} {
		f, err := logFormat(name, false)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}
	_, err := logFormat("xml", false)
	assert.ErrorContains(t, err, "unrecognized log format")
}

func TestTilesCommand(t *testing.T) {
	out, err := run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "1", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.EqualFold("z,x,y,west,south,east,north", lines[0]), lines[0])
	assert.InDeltaSlice(t, []float64{1, 0, 0, -180, 0, 0, 85.0511287798066}, parseFloats(t, lines[1], ","), 1e-9)
	assert.InDeltaSlice(t, []float64{1, 1, 1, 0, -85.0511287798066, 180, 0}, parseFloats(t, lines[4], ","), 1e-9)

	out, err = run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "1", "--format", "csv", "--tms")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.InDeltaSlice(t, []float64{1, 0, 1, -180, 0, 0, 85.0511287798066}, parseFloats(t, lines[1], ","), 1e-9)

	out, err = run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "10", "--format", "csv", "--limit", "3")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)

	out, err = run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "29", "--format", "csv", "--limit", "2")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.InDeltaSlice(t, []float64{29, 1}, parseFloats(t, lines[2], ",")[:2], 0)

	for _, limit := range []string{"-1", "0", "1000001"} {
		_, err = run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "29", "--limit", limit)
		assert.ErrorContains(t, err, "limit", "limit %s", limit)
	}

	out, err = run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "0")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "west")

	_, err = run(t, "tiles", "--bbox=-180,-85,180,85", "--zoom", "0", "--format", "xml")
	assert.ErrorContains(t, err, "unrecognized output format")
}
