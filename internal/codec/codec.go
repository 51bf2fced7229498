package codec

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/dreamware/reldb/internal/domain"
)

// Pack encodes a single value to its fixed-width byte representation
// (§6.2). The returned slice is exactly v.Tag().Width() bytes.
func Pack(v domain.Value) ([]byte, error) {
	switch v.Tag() {
	case domain.Int8:
		return []byte{byte(v.Int())}, nil
	case domain.Int16:
		b := make([]byte, 2)
		binary.BigEndian.PutUint16(b, uint16(v.Int()))
		return b, nil
	case domain.Int32:
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(v.Int()))
		return b, nil
	case domain.Int64:
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, uint64(v.Int()))
		return b, nil
	case domain.Float32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v.Float())))
		return b, nil
	case domain.Float64:
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, math.Float64bits(v.Float()))
		return b, nil
	case domain.Char:
		return []byte{byte(v.Rune())}, nil
	case domain.String:
		b := make([]byte, domain.StringWidth)
		s := v.Str()
		if len(s) > domain.StringWidth {
			s = s[:domain.StringWidth]
		}
		copy(b, s)
		return b, nil
	default:
		return nil, errors.Errorf("codec: unknown domain tag %v", v.Tag())
	}
}

// Unpack decodes a value of the given domain from its fixed-width byte
// representation, inverting Pack exactly (§6.2).
func Unpack(tag domain.DomainTag, b []byte) (domain.Value, error) {
	if len(b) != tag.Width() {
		return domain.Value{}, errors.Errorf("codec: expected %d bytes for %s, got %d", tag.Width(), tag, len(b))
	}
	switch tag {
	case domain.Int8:
		return domain.NewInt(tag, int64(int8(b[0]))), nil
	case domain.Int16:
		return domain.NewInt(tag, int64(int16(binary.BigEndian.Uint16(b)))), nil
	case domain.Int32:
		return domain.NewInt(tag, int64(int32(binary.BigEndian.Uint32(b)))), nil
	case domain.Int64:
		return domain.NewInt(tag, int64(binary.BigEndian.Uint64(b))), nil
	case domain.Float32:
		return domain.NewFloat(tag, float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))), nil
	case domain.Float64:
		return domain.NewFloat(tag, math.Float64frombits(binary.LittleEndian.Uint64(b))), nil
	case domain.Char:
		return domain.NewChar(rune(b[0])), nil
	case domain.String:
		n := 0
		for n < len(b) && b[n] != 0x00 {
			n++
		}
		return domain.NewString(string(b[:n])), nil
	default:
		return domain.Value{}, errors.Errorf("codec: unknown domain tag %v", tag)
	}
}

// PackTuple encodes every value of a tuple in schema order, concatenated.
// Used by Table to build the canonical primary-key byte string handed to
// the index (see internal/table).
func PackTuple(vs []domain.Value) ([]byte, error) {
	var out []byte
	for _, v := range vs {
		b, err := Pack(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
