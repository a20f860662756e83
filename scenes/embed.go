package scenes

import "embed"

//go:embed *.yaml
var ScenesFS embed.FS
