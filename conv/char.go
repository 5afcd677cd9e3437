package conv

import "unicode/utf8"

const (
	maxCodePoint   = utf8.MaxRune
	surrogateFirst = 0xD800
	surrogateLast  = 0xDFFF
)

// Char is a Unicode scalar value: a code point in [0, 0x10FFFF] outside of the surrogate range. Unlike rune, a Char
// is valid by construction; it can only be obtained through a conversion.
type Char struct {
	r rune
}

// Rune returns the code point of c.
func (c Char) Rune() rune {
	return c.r
}

func (c Char) String() string {
	return string(c.r)
}

// CharFrom converts an integer code point into a Char. uint8 sources always succeed; other sources fail with
// Unrepresentable for negative values, surrogates and values above 0x10FFFF.
func CharFrom[Src Integer](src Src) (Char, error) {
	return TryFrom[Char](src)
}

// CharTo converts a Char into an integer. Destinations able to hold 0x10FFFF always succeed; narrower
// destinations fail with Overflow.
func CharTo[Dst Integer](c Char) (Dst, error) {
	return TryFrom[Dst](c)
}

func isScalarValue(v uint64) bool {
	return v <= maxCodePoint && (v < surrogateFirst || v > surrogateLast)
}
