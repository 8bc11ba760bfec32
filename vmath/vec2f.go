package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector for the orbital model
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

// V2FMag uses math.Hypot to avoid overflow on large components
func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FDot returns a.X*b.X + a.Y*b.Y
func V2FDot(a, b Vec2F) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2FIsZero reports whether both components are exactly zero
func V2FIsZero(v Vec2F) bool {
	return v.X == 0 && v.Y == 0
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// WrapDegrees maps an angle into [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
