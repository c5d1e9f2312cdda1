package elffile

import (
	"encoding/binary"
	"errors"
	"io"
)

// Reader wraps a sequential byte stream and tracks the byte order resolved
// from the file's own identification bytes. Multi-byte reads are unavailable
// until SetByteOrder is called; the header decode protocol guarantees the
// order is set before the first multi-byte field.
//
// A Reader is owned by a single decode and must not be shared or reused
// across files.
type Reader struct {
	r     io.Reader
	order binary.ByteOrder
}

// NewReader creates a Reader over an already-open stream. The Reader takes
// ownership of the stream's read position for the duration of the decode.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetByteOrder records the byte order resolved from the identification
// bytes. The header decode calls this exactly once, immediately after the
// endianness byte is mapped.
func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.order = order
}

// ByteOrder returns the resolved byte order, or nil if none has been set.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.order
}

// ReadBytes reads exactly n raw bytes, advancing the stream position by n.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r.r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &DecodeError{Kind: KindTruncated, Err: err}
		}
		return nil, &DecodeError{Kind: KindIOFailure, Err: err}
	}
	return buf, nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	buf, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads two bytes and interprets them in the resolved byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	if r.order == nil {
		return 0, &DecodeError{Kind: KindByteOrderUnset}
	}
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(buf), nil
}

// ReadUint32 reads four bytes and interprets them in the resolved byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.order == nil {
		return 0, &DecodeError{Kind: KindByteOrderUnset}
	}
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(buf), nil
}

// ReadUint64 reads eight bytes and interprets them in the resolved byte order.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.order == nil {
		return 0, &DecodeError{Kind: KindByteOrderUnset}
	}
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(buf), nil
}
