package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numconv/commonerrors"
	"github.com/ARM-software/golang-numconv/commonerrors/errortest"
)

func TestValueFromBoundaries(t *testing.T) {
	t.Run("signed into wider unsigned", func(t *testing.T) {
		v, err := ValueFrom[uint8](int8(0))
		require.NoError(t, err)
		assert.Equal(t, uint8(0), v)
		v, err = ValueFrom[uint8](int8(127))
		require.NoError(t, err)
		assert.Equal(t, uint8(127), v)
		_, err = ValueFrom[uint8](int8(-1))
		assert.Equal(t, Underflow{}, err)
		_, err = ValueFrom[uint64](int64(math.MinInt64))
		assert.Equal(t, Underflow{}, err)
	})
	t.Run("signed into narrower unsigned", func(t *testing.T) {
		_, err := ValueFrom[uint8](int16(-1))
		assert.Equal(t, RangeUnderflow, err)
		_, err = ValueFrom[uint8](int16(256))
		assert.Equal(t, RangeOverflow, err)
		v, err := ValueFrom[uint8](int16(255))
		require.NoError(t, err)
		assert.Equal(t, uint8(255), v)
	})
	t.Run("signed narrowing", func(t *testing.T) {
		v, err := ValueFrom[int8](int64(-128))
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)
		_, err = ValueFrom[int8](int64(-129))
		assert.Equal(t, RangeUnderflow, err)
		_, err = ValueFrom[int8](int64(128))
		assert.Equal(t, RangeOverflow, err)
		_, err = ValueFrom[int32](int64(math.MaxInt32) + 1)
		assert.Equal(t, RangeOverflow, err)
	})
	t.Run("unsigned narrowing", func(t *testing.T) {
		_, err := ValueFrom[int64](uint64(math.MaxUint64))
		assert.Equal(t, Overflow{}, err)
		v, err := ValueFrom[int64](uint64(math.MaxInt64))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), v)
		_, err = ValueFrom[int8](uint8(128))
		assert.Equal(t, Overflow{}, err)
		_, err = ValueFrom[uint16](uint32(65536))
		assert.Equal(t, Overflow{}, err)
	})
	t.Run("widening", func(t *testing.T) {
		v, err := ValueFrom[int64](int8(-128))
		require.NoError(t, err)
		assert.Equal(t, int64(-128), v)
		u, err := ValueFrom[uint64](uint8(255))
		require.NoError(t, err)
		assert.Equal(t, uint64(255), u)
		s, err := ValueFrom[int16](uint8(255))
		require.NoError(t, err)
		assert.Equal(t, int16(255), s)
	})
}

func TestValueFromIntegerIntoFloat(t *testing.T) {
	f, err := ValueFrom[float32](int32(16_777_216))
	require.NoError(t, err)
	assert.Equal(t, float32(16_777_216), f)
	f, err = ValueFrom[float32](int32(-16_777_216))
	require.NoError(t, err)
	assert.Equal(t, float32(-16_777_216), f)
	_, err = ValueFrom[float32](int32(16_777_217))
	assert.Equal(t, RangeOverflow, err)
	_, err = ValueFrom[float32](int32(-16_777_217))
	assert.Equal(t, RangeUnderflow, err)
	_, err = ValueFrom[float32](uint32(16_777_217))
	assert.Equal(t, Overflow{}, err)
	_, err = ValueFrom[float64](int64(1<<53 + 1))
	assert.Equal(t, RangeOverflow, err)
	d, err := ValueFrom[float64](uint64(1 << 53))
	require.NoError(t, err)
	assert.Equal(t, float64(1<<53), d)
	_, err = ValueFrom[float64](uint64(math.MaxUint64))
	errortest.AssertError(t, err, commonerrors.ErrOverflow)
	d, err = ValueFrom[float64](int32(math.MinInt32))
	require.NoError(t, err)
	assert.Equal(t, float64(math.MinInt32), d)
}

func TestValueFromFloat(t *testing.T) {
	d, err := ValueFrom[float64](float32(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)
	d, err = ValueFrom[float64](float32(math.Inf(-1)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, -1))
	d, err = ValueFrom[float64](float32(math.NaN()))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))

	_, err = ValueFrom[float32](1.0)
	errortest.RequireError(t, err, commonerrors.ErrUnsupported)
	assert.True(t, commonerrors.CorrespondTo(err, "float64 to float32"))
	_, err = ValueFrom[int8](float32(1))
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
	errortest.AssertErrorDescription(t, err, "no exact conversion from float32 to int8")
}

func TestValueFromIsReflexive(t *testing.T) {
	nan, err := ValueFrom[float64](math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nan))

	s, err := ValueFrom[string]("not a number")
	require.NoError(t, err)
	assert.Equal(t, "not a number", s)

	c, err := ValueFrom[Char](Char{r: 'é'})
	require.NoError(t, err)
	assert.Equal(t, 'é', c.Rune())

	temperature, err := ValueFrom[celsius](celsius(-273.15))
	require.NoError(t, err)
	assert.Equal(t, celsius(-273.15), temperature)

	_, err = ValueFrom[int](int(math.MaxInt))
	require.NoError(t, err)
}

func TestValueFromNamedTypes(t *testing.T) {
	temperature, err := ValueFrom[celsius](float32(2.5))
	require.NoError(t, err)
	assert.Equal(t, celsius(2.5), temperature)

	id, err := ValueFrom[identifier](uint8(42))
	require.NoError(t, err)
	assert.Equal(t, identifier(42), id)

	_, err = ValueFrom[identifier](int32(-3))
	assert.Equal(t, RangeUnderflow, err)

	raw, err := ValueFrom[int32](identifier(math.MaxUint16))
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxUint16), raw)

	_, err = ValueFrom[identifier]("42")
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
}

// hundredths is a fixed point decimal number with two digits after the decimal point.
type hundredths int64

func (h *hundredths) ValueFrom(src float64) error {
	scaled, err := ApproxFrom[int64](src*100, RoundToNearest)
	if err != nil {
		return err
	}
	if float64(scaled) != src*100 {
		return commonerrors.Newf(commonerrors.ErrInvalid, "%v has more than two decimals", src)
	}
	*h = hundredths(scaled)
	return nil
}

func TestValueFromHook(t *testing.T) {
	h, err := ValueFrom[hundredths](12.5)
	require.NoError(t, err)
	assert.Equal(t, hundredths(1250), h)

	_, err = ValueFrom[hundredths](0.125)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	_, err = ValueFrom[hundredths](math.NaN())
	assert.Equal(t, FloatNotANumber, err)

	// Sources without hook follow the numeric rules of the underlying kind.
	h, err = ValueFrom[hundredths](int8(-3))
	require.NoError(t, err)
	assert.Equal(t, hundredths(-3), h)
	_, err = ValueFrom[hundredths](uint64(math.MaxUint64))
	assert.Equal(t, Overflow{}, err)
}

func TestValueFromComposes(t *testing.T) {
	for _, x := range []int8{math.MinInt8, -1, 0, 1, math.MaxInt8} {
		viaInt16, err := ValueFrom[int16](x)
		require.NoError(t, err)
		chained, err := ValueFrom[int64](viaInt16)
		require.NoError(t, err)
		direct, err := ValueFrom[int64](x)
		require.NoError(t, err)
		assert.Equal(t, direct, chained)

		f, err := ValueFrom[float32](viaInt16)
		require.NoError(t, err)
		chainedFloat, err := ValueFrom[float64](f)
		require.NoError(t, err)
		directFloat, err := ValueFrom[float64](x)
		require.NoError(t, err)
		assert.Equal(t, directFloat, chainedFloat)
	}

	viaInt16, err := ValueFrom[int16](int64(300))
	require.NoError(t, err)
	_, err = ValueFrom[int8](viaInt16)
	require.Error(t, err)
	_, err = ValueFrom[int8](int64(300))
	require.Error(t, err)
}

func TestValueInto(t *testing.T) {
	var dst uint8
	require.NoError(t, ValueInto(int16(42), &dst))
	assert.Equal(t, uint8(42), dst)

	err := ValueInto(int16(300), &dst)
	assert.Equal(t, RangeOverflow, err)
	assert.Equal(t, uint8(42), dst)

	err = ValueInto[uint8](int16(1), nil)
	errortest.AssertError(t, err, commonerrors.ErrInvalidDestination)
}
