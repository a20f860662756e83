//go:build ecsdebug

package ecs

import (
	"github.com/rotisserie/eris"

	"github.com/milk9111/simcore/ecs/component"
)

// DebugAssertions reports whether component reads are checked.
const DebugAssertions = true

func (w *World) assertHas(e Entity, kind component.Kind) {
	if !w.Has(e, kind) {
		panic(eris.Wrapf(ErrMissingComponent, "entity %d (%s) has no %s", e, w.Name(e), kind))
	}
}
