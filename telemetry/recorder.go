// Package telemetry writes physics events to CSV for offline inspection.
package telemetry

import (
	"io"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/rotisserie/eris"

	"github.com/milk9111/simcore/ecs"
)

const (
	KindCollision     = "collision"
	KindTileCollision = "tile_collision"
	KindGrounded      = "grounded"
	KindAirborne      = "airborne"
	KindJump          = "jump"
	KindStateChanged  = "state_changed"
)

// Record is one CSV row. Fields that do not apply to the event kind are
// left zero.
type Record struct {
	Tick   uint64 `csv:"tick"`
	Kind   string `csv:"kind"`
	Entity uint32 `csv:"entity"`
	Other  uint32 `csv:"other"`
	Layer  string `csv:"layer"`
	Column int    `csv:"column"`
	Row    int    `csv:"row"`
	Detail string `csv:"detail"`
}

// Recorder buffers physics events and flushes them as CSV. The header is
// written with the first flush only.
type Recorder struct {
	out    io.Writer
	closer io.Closer
	clock  func() uint64

	pending       []Record
	headerWritten bool
	total         int
}

// NewRecorder writes to out. clock stamps every record with the current
// tick; nil stamps zero.
func NewRecorder(out io.Writer, clock func() uint64) *Recorder {
	if clock == nil {
		clock = func() uint64 { return 0 }
	}
	return &Recorder{out: out, clock: clock}
}

// Create opens path for writing and returns a recorder that closes the file
// on Close. An empty path disables recording and returns nil.
func Create(path string, clock func() uint64) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, eris.Wrapf(err, "creating trace %s", path)
	}
	r := NewRecorder(f, clock)
	r.closer = f
	return r, nil
}

// Attach subscribes the recorder to every physics event of w.
func (r *Recorder) Attach(w *ecs.World) {
	if r == nil || w == nil {
		return
	}
	bus := w.Events()
	ecs.Subscribe(bus, func(e ecs.CollisionEvent) {
		r.add(Record{Kind: KindCollision, Entity: uint32(e.Entity), Other: uint32(e.Other)})
	})
	ecs.Subscribe(bus, func(e ecs.TileCollisionEvent) {
		r.add(Record{
			Kind:   KindTileCollision,
			Entity: uint32(e.Entity),
			Other:  uint32(e.TileMap),
			Layer:  e.Layer,
			Column: e.Column,
			Row:    e.Row,
			Detail: strconv.Itoa(e.Tile),
		})
	})
	ecs.Subscribe(bus, func(e ecs.GroundedEvent) {
		r.add(Record{Kind: KindGrounded, Entity: uint32(e.Entity)})
	})
	ecs.Subscribe(bus, func(e ecs.AirborneEvent) {
		r.add(Record{Kind: KindAirborne, Entity: uint32(e.Entity)})
	})
	ecs.Subscribe(bus, func(e ecs.JumpEvent) {
		r.add(Record{Kind: KindJump, Entity: uint32(e.Entity), Detail: strconv.FormatFloat(e.Impulse, 'g', -1, 64)})
	})
	ecs.Subscribe(bus, func(e ecs.StateChangedEvent) {
		r.add(Record{Kind: KindStateChanged, Entity: uint32(e.Entity), Detail: e.From.String() + "->" + e.To.String()})
	})
}

func (r *Recorder) add(rec Record) {
	rec.Tick = r.clock()
	r.pending = append(r.pending, rec)
	r.total++
}

// Pending returns the number of buffered records.
func (r *Recorder) Pending() int {
	if r == nil {
		return 0
	}
	return len(r.pending)
}

// Total returns the number of records seen since creation.
func (r *Recorder) Total() int {
	if r == nil {
		return 0
	}
	return r.total
}

// Flush writes the buffered records.
func (r *Recorder) Flush() error {
	if r == nil || len(r.pending) == 0 {
		return nil
	}

	if !r.headerWritten {
		if err := gocsv.Marshal(r.pending, r.out); err != nil {
			return eris.Wrap(err, "writing trace")
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(r.pending, r.out); err != nil {
			return eris.Wrap(err, "writing trace")
		}
	}
	r.pending = r.pending[:0]
	return nil
}

// Close flushes and closes the underlying file, if the recorder owns one.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	err := r.Flush()
	if r.closer != nil {
		if cerr := r.closer.Close(); cerr != nil && err == nil {
			err = eris.Wrap(cerr, "closing trace")
		}
		r.closer = nil
	}
	return err
}
