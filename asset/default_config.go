package asset

// DefaultConfigTOML is written by `orbiter -write-config` as a starting point
const DefaultConfigTOML = `# orbiter configuration
# Values here are overridden by ORBITER_* environment variables and command-line flags

# Drawing surface: "terminal" or "window"
frontend = "terminal"

# Terminal colour depth: "auto", "256" or "truecolor"
color = "auto"

# Start the window frontend fullscreen (Escape leaves fullscreen)
fullscreen = true

# Directory holding satellite.png, mars.png, thrust_audio.ogg, ...
# Empty searches ./assets then $XDG_DATA_HOME/orbiter
asset_dir = ""

# Spawn seed, 0 picks one from the clock
seed = 0

# Serve Prometheus metrics on this address, e.g. "127.0.0.1:9464"; empty disables
metrics_addr = ""

# Reproduce the classic fuel-out behaviour: drift at dx=2, fuel checked before atmosphere
legacy_fuel_drift = false

[audio]
enabled = true
volume = 0.07

[log]
# "", "debug", "info", "warn" or "error"; empty disables logging
level = ""
# Empty uses $XDG_STATE_HOME/orbiter/orbiter.log
path = ""
`
