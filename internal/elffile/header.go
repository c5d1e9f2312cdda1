package elffile

import (
	"encoding/json"
	"fmt"
)

// Class is the file's native word size, fixed for the whole file.
type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	}
	return fmt.Sprintf("unknown class %d", uint8(c))
}

func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ByteOrder is the encoding of multi-byte integers in the file. It is the
// semantic value stored on the decoded header; the matching
// binary.ByteOrder lives on the Reader.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = 1
	BigEndian    ByteOrder = 2
)

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "little endian"
	case BigEndian:
		return "big endian"
	}
	return fmt.Sprintf("unknown byte order %d", uint8(b))
}

func (b ByteOrder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// OSABI is the operating-system ABI the file targets. The format documents
// the values 0x00 through 0x12, with 0x05 unassigned.
type OSABI uint8

const (
	ABISystemV       OSABI = 0x00
	ABIHPUX          OSABI = 0x01
	ABINetBSD        OSABI = 0x02
	ABILinux         OSABI = 0x03
	ABIGNUHurd       OSABI = 0x04
	ABISolaris       OSABI = 0x06
	ABIAIX           OSABI = 0x07
	ABIIRIX          OSABI = 0x08
	ABIFreeBSD       OSABI = 0x09
	ABITru64         OSABI = 0x0A
	ABINovellModesto OSABI = 0x0B
	ABIOpenBSD       OSABI = 0x0C
	ABIOpenVMS       OSABI = 0x0D
	ABINonStopKernel OSABI = 0x0E
	ABIAROS          OSABI = 0x0F
	ABIFenixOS       OSABI = 0x10
	ABICloudABI      OSABI = 0x11
	ABIOpenVOS       OSABI = 0x12
)

var osabiNames = map[OSABI]string{
	ABISystemV:       "System V",
	ABIHPUX:          "HP-UX",
	ABINetBSD:        "NetBSD",
	ABILinux:         "Linux",
	ABIGNUHurd:       "GNU Hurd",
	ABISolaris:       "Solaris",
	ABIAIX:           "AIX",
	ABIIRIX:          "IRIX",
	ABIFreeBSD:       "FreeBSD",
	ABITru64:         "Tru64",
	ABINovellModesto: "Novell Modesto",
	ABIOpenBSD:       "OpenBSD",
	ABIOpenVMS:       "OpenVMS",
	ABINonStopKernel: "NonStop Kernel",
	ABIAROS:          "AROS",
	ABIFenixOS:       "FenixOS",
	ABICloudABI:      "CloudABI",
	ABIOpenVOS:       "OpenVOS",
}

func (a OSABI) String() string {
	if name, ok := osabiNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown ABI 0x%02x", uint8(a))
}

func (a OSABI) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// Type is the object file type. The reserved OS- and processor-specific
// ranges are represented by TypeOther with the raw code preserved.
type Type struct {
	kind typeKind
	code uint16
}

type typeKind uint8

const (
	typeNone typeKind = iota
	typeRelocatable
	typeExecutable
	typeSharedObject
	typeCore
	typeOther
)

var (
	TypeNone         = Type{kind: typeNone}
	TypeRelocatable  = Type{kind: typeRelocatable}
	TypeExecutable   = Type{kind: typeExecutable}
	TypeSharedObject = Type{kind: typeSharedObject}
	TypeCore         = Type{kind: typeCore}
)

// TypeOther constructs the variant for the four reserved codes.
func TypeOther(code uint16) Type {
	return Type{kind: typeOther, code: code}
}

// Code returns the raw reserved code and true when the type is the
// other/reserved variant.
func (t Type) Code() (uint16, bool) {
	return t.code, t.kind == typeOther
}

func (t Type) String() string {
	switch t.kind {
	case typeNone:
		return "none"
	case typeRelocatable:
		return "relocatable"
	case typeExecutable:
		return "executable"
	case typeSharedObject:
		return "shared object"
	case typeCore:
		return "core"
	case typeOther:
		return fmt.Sprintf("other (0x%04x)", t.code)
	}
	return "invalid"
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Address is a width-tagged address. The tag always matches the header's
// class, so a 32-bit file can never carry a 64-bit address value.
type Address struct {
	Class Class
	Value uint64
}

func (a Address) String() string {
	if a.Class == Class32 {
		return fmt.Sprintf("0x%08x", a.Value)
	}
	return fmt.Sprintf("0x%016x", a.Value)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// Header is the decoded ELF identification and file header. Fields the
// format leaves architecture- or vendor-defined (machine, version, flags,
// the size/count scalars) are stored raw, without interpretation.
type Header struct {
	Class      Class     `json:"class"`
	ByteOrder  ByteOrder `json:"byte_order"`
	OSABI      OSABI     `json:"osabi"`
	ABIVersion uint8     `json:"abi_version"`
	Type       Type      `json:"type"`
	Machine    uint16    `json:"machine"`
	Version    uint32    `json:"version"`

	Entry            Address `json:"entry"`
	ProgramHeaderOff Address `json:"program_header_offset"`
	SectionHeaderOff Address `json:"section_header_offset"`

	Flags                  uint32 `json:"flags"`
	HeaderSize             uint16 `json:"header_size"`
	ProgramHeaderEntrySize uint16 `json:"program_header_entry_size"`
	ProgramHeaderCount     uint16 `json:"program_header_count"`
	SectionHeaderEntrySize uint16 `json:"section_header_entry_size"`
	SectionHeaderCount     uint16 `json:"section_header_count"`
	SectionNameIndex       uint16 `json:"section_name_index"`
}

// VersionsAgree reports whether the one-byte identifier version and the
// 32-bit version field hold the conventional matching value. The decoder
// validates only the former; callers may warn when the two disagree.
func (h *Header) VersionsAgree() bool {
	return h.Version == 1
}
