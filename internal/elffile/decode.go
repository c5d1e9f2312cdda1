package elffile

import (
	"bytes"
	"encoding/binary"
)

// elfMagic is the fixed four-byte sequence at the start of every ELF file.
var elfMagic = []byte{0x7F, 'E', 'L', 'F'}

// identPadding is the reserved region at the end of the identification
// bytes; its contents are never validated.
const identPadding = 7

// DecodeHeader reads and validates the ELF identification bytes and file
// header from r. The read order is fixed by the format: the class and byte
// order bytes come first because every later multi-byte field depends on
// them. On any failure the decode stops at the offending field and no
// header is returned.
func DecodeHeader(r *Reader) (*Header, error) {
	magic, err := r.ReadBytes(len(elfMagic))
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(magic, elfMagic) {
		return nil, &DecodeError{Kind: KindNotELF}
	}

	var class Class
	switch b, err := r.ReadByte(); {
	case err != nil:
		return nil, err
	case b == 1:
		class = Class32
	case b == 2:
		class = Class64
	default:
		return nil, errInvalid(KindInvalidClass, uint64(b))
	}

	var order ByteOrder
	switch b, err := r.ReadByte(); {
	case err != nil:
		return nil, err
	case b == 1:
		order = LittleEndian
		r.SetByteOrder(binary.LittleEndian)
	case b == 2:
		order = BigEndian
		r.SetByteOrder(binary.BigEndian)
	default:
		return nil, errInvalid(KindInvalidByteOrder, uint64(b))
	}

	if b, err := r.ReadByte(); err != nil {
		return nil, err
	} else if b != 1 {
		return nil, errInvalid(KindInvalidIdentVersion, uint64(b))
	}

	abiByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	abi := OSABI(abiByte)
	if _, ok := osabiNames[abi]; !ok {
		return nil, errInvalid(KindInvalidOSABI, uint64(abiByte))
	}

	abiVersion, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	if _, err := r.ReadBytes(identPadding); err != nil {
		return nil, err
	}

	typeCode, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	var typ Type
	switch typeCode {
	case 0:
		typ = TypeNone
	case 1:
		typ = TypeRelocatable
	case 2:
		typ = TypeExecutable
	case 3:
		typ = TypeSharedObject
	case 4:
		typ = TypeCore
	case 0xFE00, 0xFEFF, 0xFF00, 0xFFFF:
		typ = TypeOther(typeCode)
	default:
		return nil, errInvalid(KindInvalidType, uint64(typeCode))
	}

	machine, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	version, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	entry, err := readAddress(r, class)
	if err != nil {
		return nil, err
	}
	phOff, err := readAddress(r, class)
	if err != nil {
		return nil, err
	}
	shOff, err := readAddress(r, class)
	if err != nil {
		return nil, err
	}

	flags, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	tail := make([]uint16, 6)
	for i := range tail {
		tail[i], err = r.ReadUint16()
		if err != nil {
			return nil, err
		}
	}

	return &Header{
		Class:      class,
		ByteOrder:  order,
		OSABI:      abi,
		ABIVersion: abiVersion,
		Type:       typ,
		Machine:    machine,
		Version:    version,

		Entry:            entry,
		ProgramHeaderOff: phOff,
		SectionHeaderOff: shOff,

		Flags:                  flags,
		HeaderSize:             tail[0],
		ProgramHeaderEntrySize: tail[1],
		ProgramHeaderCount:     tail[2],
		SectionHeaderEntrySize: tail[3],
		SectionHeaderCount:     tail[4],
		SectionNameIndex:       tail[5],
	}, nil
}

// readAddress reads one address at the width selected by the file's class.
// This is the only place the decode branches on class.
func readAddress(r *Reader, class Class) (Address, error) {
	if class == Class32 {
		v, err := r.ReadUint32()
		if err != nil {
			return Address{}, err
		}
		return Address{Class: Class32, Value: uint64(v)}, nil
	}
	v, err := r.ReadUint64()
	if err != nil {
		return Address{}, err
	}
	return Address{Class: Class64, Value: v}, nil
}
