package mercator

import (
	"math"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// LevelConstants are the pixel scale factors of a single zoom level.
type LevelConstants struct {
	// PixelsPerDegree scales longitude degrees to pixels.
	PixelsPerDegree float64
	// PixelsPerRadian scales mercator radians to pixels.
	PixelsPerRadian float64
	// OriginOffset is the pixel position of longitude 0 and latitude 0 on both axes.
	OriginOffset float64
	// WorldSize is the width and height of the world in pixels, and the upper pixel clamp.
	WorldSize float64
}

// ZoomConstants holds the LevelConstants of every zoom level, for a single tile size.
// Each level doubles the values of the level before it.
// Tables are shared between projectors and must not be modified.
type ZoomConstants [ZoomLevels]LevelConstants

func buildZoomConstants(tileSize float64) *ZoomConstants {
	var zc ZoomConstants
	size := tileSize
	for i := range zc {
		zc[i] = LevelConstants{
			PixelsPerDegree: size / 360,
			PixelsPerRadian: size / (2 * math.Pi),
			OriginOffset:    size / 2,
			WorldSize:       size,
		}
		size *= 2
	}
	return &zc
}

// constantsCache maps a tile size to its constants, for the lifetime of the process.
// The key is the exact float64 value: 256 and 256.00000001 get separate tables.
var constantsCache = cmap.NewWithCustomShardingFunction[float64, *ZoomConstants](shardTileSize)

func shardTileSize(tileSize float64) uint32 {
	b := math.Float64bits(tileSize)
	return uint32(b ^ (b >> 32))
}

// zoomConstants returns the shared table for the tile size, building it on first use.
// The build runs under the shard lock, so concurrent first requests build it only once.
func zoomConstants(tileSize float64) *ZoomConstants {
	if zc, ok := constantsCache.Get(tileSize); ok {
		return zc
	}
	return constantsCache.Upsert(tileSize, nil, func(exist bool, inMap *ZoomConstants, _ *ZoomConstants) *ZoomConstants {
		if exist {
			return inMap
		}
		return buildZoomConstants(tileSize)
	})
}
