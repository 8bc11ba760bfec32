package constant

import "time"

// Frame pacing
const (
	// FrameRate is the fixed simulation rate in frames per second
	FrameRate = 30

	// FrameInterval is the wall-clock duration of one frame
	FrameInterval = time.Second / FrameRate
)

// Orbit evaluation
const (
	// EccentricityIntervalSeconds is the length of one sampling window
	EccentricityIntervalSeconds = 5

	// EccentricityWindowTicks is the number of frames per sampling window
	EccentricityWindowTicks = EccentricityIntervalSeconds * FrameRate

	// UnknownEccentricity is reported until the first window completes
	UnknownEccentricity = 1.0
)

// Mission thresholds (altitude is distance from planet centre in game miles)
const (
	AtmosphereAltitude     = 68.0
	MappingMinAltitude     = 69.0
	MappingMaxAltitude     = 120.0
	MappingMaxEccentricity = 0.1
)

// Trail
const (
	// TrailCapacity bounds recorded path segments, oldest dropped first
	TrailCapacity = 20000
)

// Session timing for on-screen text
const (
	LoadingScreenDuration = 7 * time.Second
	IntroTextDuration     = 15 * time.Second
)
