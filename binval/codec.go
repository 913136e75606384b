package binval

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/valuefmt/apperr"
	"github.com/signadot/valuefmt/tree"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Encode writes n as MessagePack. Numbers always use the fixed width
// encoding of their kind, so Decode restores the same kinds.
func Encode(n *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encode(enc, n, 0); err != nil {
		return nil, apperr.Raise(apperr.ErrSerialize, formatName).WithCause(err)
	}
	return buf.Bytes(), nil
}

func encode(enc *msgpack.Encoder, n *Node, depth int) error {
	if depth > tree.MaxDepth {
		return tree.ErrTooDeep
	}
	switch n.kind() {
	case NilKind:
		return enc.EncodeNil()
	case BoolKind:
		return enc.EncodeBool(n.Bool)
	case Int32Kind:
		return enc.EncodeInt32(int32(n.Int))
	case Int64Kind:
		return enc.EncodeInt64(n.Int)
	case Uint32Kind:
		return enc.EncodeUint32(uint32(n.Uint))
	case Uint64Kind:
		return enc.EncodeUint64(n.Uint)
	case Float32Kind:
		return enc.EncodeFloat32(float32(n.Float))
	case Float64Kind:
		return enc.EncodeFloat64(n.Float)
	case StringKind:
		return enc.EncodeString(n.Str)
	case BinaryKind:
		b := n.Bytes
		if b == nil {
			b = []byte{}
		}
		return enc.EncodeBytes(b)
	case ExtKind:
		if err := enc.EncodeExtHeader(n.ExtType, len(n.Bytes)); err != nil {
			return err
		}
		_, err := enc.Writer().Write(n.Bytes)
		return err
	case ArrayKind:
		if err := enc.EncodeArrayLen(len(n.Elems)); err != nil {
			return err
		}
		for _, e := range n.Elems {
			if err := encode(enc, e, depth+1); err != nil {
				return err
			}
		}
		return nil
	case MapKind:
		if err := enc.EncodeMapLen(len(n.Entries)); err != nil {
			return err
		}
		for _, e := range n.Entries {
			if err := encode(enc, e.Key, depth+1); err != nil {
				return err
			}
			if err := encode(enc, e.Value, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown node kind %d", n.Kind)
}

// Decode reads a single MessagePack document. Positive and negative
// fixnums and 8 to 32 bit signed codes decode as Int32, 8 to 32 bit
// unsigned codes as Uint32, and the 64 bit codes as Int64 and Uint64.
func Decode(data []byte) (*Node, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)
	n, err := decode(dec, r, 0)
	if err != nil {
		return nil, apperr.Raise(apperr.ErrDeserialize, formatName).WithCause(err)
	}
	if r.Len() != 0 {
		return nil, apperr.Errorf(apperr.ErrDeserialize, "%s: %d trailing bytes after document", formatName, r.Len())
	}
	return n, nil
}

// decode reads one node from dec. r is the reader under dec; lengths
// read from the input are checked against what remains in r before
// allocating.
func decode(dec *msgpack.Decoder, r *bytes.Reader, depth int) (*Node, error) {
	if depth > tree.MaxDepth {
		return nil, tree.ErrTooDeep
	}
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case c == msgpcode.Nil:
		return Nil(), dec.DecodeNil()
	case c == msgpcode.False || c == msgpcode.True:
		b, err := dec.DecodeBool()
		return FromBool(b), err
	case msgpcode.IsFixedNum(c), c == msgpcode.Int8, c == msgpcode.Int16, c == msgpcode.Int32:
		i, err := dec.DecodeInt64()
		return FromInt32(int32(i)), err
	case c == msgpcode.Int64:
		i, err := dec.DecodeInt64()
		return FromInt64(i), err
	case c == msgpcode.Uint8, c == msgpcode.Uint16, c == msgpcode.Uint32:
		u, err := dec.DecodeUint64()
		return FromUint32(uint32(u)), err
	case c == msgpcode.Uint64:
		u, err := dec.DecodeUint64()
		return FromUint64(u), err
	case c == msgpcode.Float:
		f, err := dec.DecodeFloat32()
		return FromFloat32(f), err
	case c == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		return FromFloat64(f), err
	case msgpcode.IsString(c):
		s, err := dec.DecodeString()
		return FromString(s), err
	case msgpcode.IsBin(c):
		b, err := dec.DecodeBytes()
		return FromBinary(b), err
	case msgpcode.IsExt(c):
		typ, l, err := dec.DecodeExtHeader()
		if err != nil {
			return nil, err
		}
		if l > r.Len() {
			return nil, fmt.Errorf("ext length %d: %w", l, io.ErrUnexpectedEOF)
		}
		data := make([]byte, l)
		if err := dec.ReadFull(data); err != nil {
			return nil, err
		}
		return FromExt(typ, data), nil
	case msgpcode.IsFixedArray(c), c == msgpcode.Array16, c == msgpcode.Array32:
		l, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		res := FromArray(make([]*Node, 0, min(l, 1024))...)
		for range l {
			e, err := decode(dec, r, depth+1)
			if err != nil {
				return nil, err
			}
			res.Elems = append(res.Elems, e)
		}
		return res, nil
	case msgpcode.IsFixedMap(c), c == msgpcode.Map16, c == msgpcode.Map32:
		l, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		res := FromEntries(make([]Entry, 0, min(l, 1024))...)
		for range l {
			k, err := decode(dec, r, depth+1)
			if err != nil {
				return nil, err
			}
			v, err := decode(dec, r, depth+1)
			if err != nil {
				return nil, err
			}
			res.Entries = append(res.Entries, Entry{Key: k, Value: v})
		}
		return res, nil
	}
	return nil, fmt.Errorf("unknown msgpack code 0x%02x", c)
}
