package rands

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Floating interface {
	~float32 | ~float64
}

// Number is every type Range can draw from. All of them are ordered by <,
// have a unit value and print with %v.
type Number interface {
	Integer | Floating
}
