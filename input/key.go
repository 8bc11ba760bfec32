package input

// Key is a game-level key, independent of the surface that produced it
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
	KeyMap
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "none",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeySpace:  "space",
	KeyEscape: "escape",
	KeyMap:    "m",
}

func (k Key) String() string {
	if k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// KeySet is a bitset of held keys sampled once per frame
type KeySet uint16

// Has reports whether k is in the set
func (s KeySet) Has(k Key) bool {
	return k != KeyNone && s&(1<<k) != 0
}

// With returns s with k added
func (s KeySet) With(k Key) KeySet {
	if k == KeyNone {
		return s
	}
	return s | 1<<k
}

// Without returns s with k removed
func (s KeySet) Without(k Key) KeySet {
	return s &^ (1 << k)
}

// Keys returns the members in Key order
func (s KeySet) Keys() []Key {
	var keys []Key
	for k := KeyLeft; k < keyCount; k++ {
		if s.Has(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// NewKeySet builds a set from keys
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}
