//go:build !ecsdebug

package ecs

import "github.com/milk9111/simcore/ecs/component"

// DebugAssertions reports whether component reads are checked.
const DebugAssertions = false

func (w *World) assertHas(Entity, component.Kind) {}
