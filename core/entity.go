package core

import "fmt"

// Entity is a generational handle into the world's live set
// Index addresses a slot; Gen must match the slot's generation or the handle is stale
type Entity struct {
	Index uint32
	Gen   uint32
}

// NoEntity is the zero handle; slot generations start at 1 so it never resolves
var NoEntity = Entity{}

// IsZero reports whether e is the zero handle
func (e Entity) IsZero() bool {
	return e == NoEntity
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.Index, e.Gen)
}

// Kind tags the entity variant
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindBullet
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindAsteroid:
		return "asteroid"
	default:
		return "none"
	}
}

// MarshalText renders the handle as "index:gen"
func (e Entity) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// MarshalText renders the kind name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
