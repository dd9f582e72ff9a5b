package bottomk

import (
	"github.com/katalvlaran/iwfg/front"
	"github.com/katalvlaran/iwfg/wfg"
)

// Workspace is the scratch a selection evaluates slabs in: a front that
// holds one slab plus its candidate, and the hypervolume engine's own
// recursion buffers. It is the only state that outlives a call.
//
// A Workspace must be owned by one computation at a time. Give every
// concurrent worker its own.
type Workspace struct {
	scratch *front.Front
	engine  *wfg.Engine
}

// NewWorkspace returns a workspace that holds maxPoints points of
// maxObjectives objectives. Slabs live one objective below their front, so
// a front of m points in n objectives needs NewWorkspace(m, n-1).
func NewWorkspace(maxPoints, maxObjectives int) *Workspace {
	maxPoints, maxObjectives = max(maxPoints, 0), max(maxObjectives, 0)
	scratch, _ := front.New(0, 0)
	scratch.Reserve(maxPoints, maxObjectives)

	return &Workspace{
		scratch: scratch,
		engine:  wfg.NewEngine(maxPoints, maxObjectives),
	}
}

// Reserve grows the workspace to hold at least maxPoints points of
// maxObjectives objectives. It never shrinks.
func (w *Workspace) Reserve(maxPoints, maxObjectives int) {
	w.scratch.Reserve(max(maxPoints, 0), max(maxObjectives, 0))
}

// Cap reports the slab shape the workspace can hold without growing.
func (w *Workspace) Cap() (points, objectives int) { return w.scratch.Cap() }
