package geom

import "math"

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// FromSpherical converts distance (meters), azimuth (degrees) and elevation
// (degrees) into a sensor-frame point.
// Coordinate convention: X=right, Y=forward, Z=up.
func FromSpherical(distance, azimuthDeg, elevationDeg float64) Vector3 {
	sinAz, cosAz := math.Sincos(DegreesToRadians(azimuthDeg))
	sinEl, cosEl := math.Sincos(DegreesToRadians(elevationDeg))

	return NewVector3(
		distance*cosEl*sinAz,
		distance*cosEl*cosAz,
		distance*sinEl,
	)
}
