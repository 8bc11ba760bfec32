package render

import "github.com/lixenwraith/orbiter/input"

func input0() input.Frame {
	return input.Frame{}
}
