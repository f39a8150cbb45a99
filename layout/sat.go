package layout

import "math"

// SatAdd returns a+b clamped to math.MaxUint16
func SatAdd(a, b uint16) uint16 {
	s := uint32(a) + uint32(b)
	if s > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(s)
}

// SatSub returns a-b clamped to 0
func SatSub(a, b uint16) uint16 {
	if b >= a {
		return 0
	}
	return a - b
}

// SatMul returns a*b clamped to math.MaxUint16
func SatMul(a, b uint16) uint16 {
	p := uint32(a) * uint32(b)
	if p > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(p)
}
