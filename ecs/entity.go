package ecs

import "strconv"

// Entity is a row index into every component table of a World. Ids start at
// 1 and are never recycled.
type Entity uint32

// InvalidEntity is the reserved unset id.
const InvalidEntity Entity = 0

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e != InvalidEntity
}
