package component

// Input stores per-frame intents for an entity. It is written by an input
// collaborator and consumed by the platformer controller.
type Input struct {
	MoveX        float64
	MoveY        float64
	JumpPressed  bool
	FastFallHeld bool
}
