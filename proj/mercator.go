package proj

import "math"

// Constants for Web Mercator projection
const (
	maxLat    = 85.0511 // Maximum latitude in Web Mercator (arctan(sinh(π)))
	minLat    = -85.0511
	maxMeters = 20037508.34 // Half the EPSG:3857 world width
	maxZoom   = 21
	degToRad  = math.Pi / 180.0
)

// pow2 contains pre-calculated powers of 2 for zoom levels 0-21
var pow2 = [maxZoom + 1]float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
	1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152,
}

func clampZoom(zoom int) int {
	if zoom < 0 {
		return 0
	}
	if zoom > maxZoom {
		return maxZoom
	}
	return zoom
}

// LatLonToTileCoords converts WGS84 coordinates to Web Mercator tile
// coordinates at the specified zoom level. Latitude is clamped to the
// Web Mercator range and zoom to 0-21. Tile coordinates grow right and down.
func LatLonToTileCoords(lat, lon float64, zoom int) (x, y float64) {
	// Clamp latitude using direct comparison
	if lat > maxLat {
		lat = maxLat
	} else if lat < minLat {
		lat = minLat
	}

	n := pow2[clampZoom(zoom)]
	x = (lon + 180.0) * (n / 360.0)

	// Handle y coordinate edge cases first
	if lat >= maxLat {
		return x, 0
	}
	if lat <= minLat {
		return x, n
	}

	latRad := lat * degToRad
	sinLat := math.Sin(latRad)
	y = n * (0.5 - 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi)

	return x, y
}

// WebMercatorToTileCoords converts Web Mercator (EPSG:3857) coordinates in
// meters to tile coordinates at the specified zoom level.
func WebMercatorToTileCoords(x, y float64, zoom int) (tileX, tileY float64) {
	// Normalize coordinates to 0-1 range
	normalizedX := (x + maxMeters) / (2 * maxMeters)
	normalizedY := 1 - ((y + maxMeters) / (2 * maxMeters))

	n := pow2[clampZoom(zoom)]
	return normalizedX * n, normalizedY * n
}
