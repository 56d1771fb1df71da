// Package camera implements the first-person explorer camera.
//
// Orientation is stored as (yaw, pitch) in radians. Yaw wraps into [0, 2π),
// pitch is clamped into [-π/2, π/2]. Translation happens in the horizontal
// (X, Z) plane and depends on yaw only; Y is up.
package camera

import (
	"math"

	"lumen/geom"
)

const (
	fullTurn = 2 * math.Pi
	maxPitch = math.Pi / 2
)

// State is the camera pose plus its per-tick movement rate.
type State struct {
	Position geom.Point3
	// Orientation.X is yaw, Orientation.Y is pitch.
	Orientation geom.Point2
	// Speed is the distance moved per frame tick along each active axis.
	Speed float64
}

// New returns a camera at pos looking along (yaw, pitch).
func New(pos geom.Point3, yaw, pitch, speed float64) *State {
	c := &State{
		Position:    pos,
		Orientation: geom.P2(yaw, pitch),
		Speed:       speed,
	}
	c.normalize()
	return c
}

// ApplyLook adds the deltas to the orientation and re-normalizes it.
func (c *State) ApplyLook(deltaYaw, deltaPitch float64) {
	c.Orientation.X += deltaYaw
	c.Orientation.Y += deltaPitch
	c.normalize()
}

// ApplyMovementIntent moves the camera one tick. forward and strafe are each
// -1, 0 or +1; positive strafe is to the right. Diagonal input is not
// normalized, so it covers Speed·√2.
func (c *State) ApplyMovementIntent(forward, strafe int) {
	yaw := c.Orientation.X
	if forward != 0 {
		f := geom.PointFromAngle(yaw).Scale(float64(sign(forward)) * c.Speed)
		c.Position.X += f.X
		c.Position.Z += f.Y
	}
	if strafe != 0 {
		s := geom.PointFromAngle(yaw + math.Pi/2).Scale(float64(sign(strafe)) * c.Speed)
		c.Position.X += s.X
		c.Position.Z += s.Y
	}
}

// Pose returns copies of the position and (yaw, pitch).
func (c *State) Pose() (geom.Point3, geom.Point2) {
	return c.Position.Copy(), c.Orientation.Copy()
}

// Basis returns the view basis for the current orientation.
func (c *State) Basis() (forward, right, up geom.Point3) {
	return Basis(c.Orientation.X, c.Orientation.Y)
}

// Basis returns forward, right and up vectors for (yaw, pitch).
func Basis(yaw, pitch float64) (forward, right, up geom.Point3) {
	sinYaw, cosYaw := math.Sincos(yaw)
	sinPitch, cosPitch := math.Sincos(pitch)

	forward = geom.P3(cosYaw*cosPitch, sinPitch, sinYaw*cosPitch).Normalized()
	right = geom.P3(-sinYaw, 0, cosYaw).Normalized()
	up = right.Cross(forward).Normalized()
	return forward, right, up
}

// WrapYaw maps yaw into [0, 2π).
func WrapYaw(yaw float64) float64 {
	yaw = math.Mod(yaw, fullTurn)
	if yaw < 0 {
		yaw += fullTurn
	}
	// -tiny + 2π rounds up to 2π.
	if yaw >= fullTurn {
		yaw = 0
	}
	return yaw
}

// ClampPitch limits pitch to [-π/2, π/2].
func ClampPitch(pitch float64) float64 {
	if pitch < -maxPitch {
		return -maxPitch
	}
	if pitch > maxPitch {
		return maxPitch
	}
	return pitch
}

func (c *State) normalize() {
	c.Orientation.X = WrapYaw(c.Orientation.X)
	c.Orientation.Y = ClampPitch(c.Orientation.Y)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
