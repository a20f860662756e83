package component

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Sheet   string
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Elapsed float64 // seconds spent on the current frame
	Playing bool
}

// CurrentDef returns the definition of the playing animation.
func (a *Animation) CurrentDef() (AnimationDef, bool) {
	if a == nil || a.Defs == nil {
		return AnimationDef{}, false
	}
	def, ok := a.Defs[a.Current]
	return def, ok
}
