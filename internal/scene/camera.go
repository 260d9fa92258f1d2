package scene

import "math"

// OrbitPosition computes the camera position on an orbit around the origin.
// Yaw rotates around the vertical axis, pitch lifts above the horizontal
// plane; both in degrees.
func OrbitPosition(distance, yawDeg, pitchDeg float64) [3]float64 {
	yaw := yawDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180

	return [3]float64{
		distance * math.Cos(pitch) * math.Sin(yaw),
		distance * math.Sin(pitch),
		distance * math.Cos(pitch) * math.Cos(yaw),
	}
}
