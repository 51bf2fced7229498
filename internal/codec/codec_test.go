package codec

import (
	"testing"

	"github.com/dreamware/reldb/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_FixedWidths(t *testing.T) {
	cases := []struct {
		name string
		v    domain.Value
		want int
	}{
		{"i8", domain.NewInt(domain.Int8, 5), 1},
		{"i16", domain.NewInt(domain.Int16, 5), 2},
		{"i32", domain.NewInt(domain.Int32, 5), 4},
		{"i64", domain.NewInt(domain.Int64, 5), 8},
		{"f32", domain.NewFloat(domain.Float32, 5), 4},
		{"f64", domain.NewFloat(domain.Float64, 5), 8},
		{"char", domain.NewChar('a'), 1},
		{"string", domain.NewString("hi"), 64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := Pack(c.v)
			require.NoError(t, err)
			assert.Len(t, b, c.want)
		})
	}
}

func TestPack_IntegerBigEndian(t *testing.T) {
	b, err := Pack(domain.NewInt(domain.Int32, 0x01020304))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}

func TestPack_FloatLittleEndian(t *testing.T) {
	// Intentional asymmetry with integer packing (§6.2, §9): floats are
	// little-endian IEEE-754 bit patterns.
	b32, err := Pack(domain.NewFloat(domain.Float32, 1.0))
	require.NoError(t, err)
	// 1.0f32 bit pattern is 0x3F800000; little-endian byte 0 is the low
	// byte, 0x00.
	assert.Equal(t, byte(0x00), b32[0])
	assert.Equal(t, byte(0x3F), b32[3])
}

func TestPack_StringPaddingAndTruncation(t *testing.T) {
	b, err := Pack(domain.NewString("hi"))
	require.NoError(t, err)
	require.Len(t, b, 64)
	assert.Equal(t, byte('h'), b[0])
	assert.Equal(t, byte('i'), b[1])
	assert.Equal(t, byte(0x00), b[2])
	assert.Equal(t, byte(0x00), b[63])

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	b, err = Pack(domain.NewString(string(long)))
	require.NoError(t, err)
	assert.Len(t, b, 64)
}

func TestRoundTrip(t *testing.T) {
	cases := []domain.Value{
		domain.NewInt(domain.Int8, -12),
		domain.NewInt(domain.Int16, -1234),
		domain.NewInt(domain.Int32, -123456),
		domain.NewInt(domain.Int64, -123456789012),
		domain.NewFloat(domain.Float32, 3.5),
		domain.NewFloat(domain.Float64, -2.71828),
		domain.NewChar('Z'),
		domain.NewString("Star_Wars"),
	}
	for _, v := range cases {
		b, err := Pack(v)
		require.NoError(t, err)
		got, err := Unpack(v.Tag(), b)
		require.NoError(t, err)
		assert.Equal(t, v.String(), got.String())
		assert.Equal(t, v.Tag(), got.Tag())
	}
}

func TestUnpack_WrongLength(t *testing.T) {
	_, err := Unpack(domain.Int32, []byte{1, 2})
	assert.Error(t, err)
}

func TestPackTuple(t *testing.T) {
	vs := []domain.Value{
		domain.NewInt(domain.Int8, 1),
		domain.NewInt(domain.Int32, 2),
	}
	b, err := PackTuple(vs)
	require.NoError(t, err)
	assert.Len(t, b, 1+4)
}
