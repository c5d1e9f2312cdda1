package elffile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassString(t *testing.T) {
	assert.Equal(t, "ELF32", Class32.String())
	assert.Equal(t, "ELF64", Class64.String())
}

func TestByteOrderString(t *testing.T) {
	assert.Equal(t, "little endian", LittleEndian.String())
	assert.Equal(t, "big endian", BigEndian.String())
}

func TestOSABIString(t *testing.T) {
	assert.Equal(t, "System V", ABISystemV.String())
	assert.Equal(t, "Linux", ABILinux.String())
	assert.Equal(t, "OpenVOS", ABIOpenVOS.String())
	assert.Equal(t, "unknown ABI 0x05", OSABI(0x05).String())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "none", TypeNone.String())
	assert.Equal(t, "relocatable", TypeRelocatable.String())
	assert.Equal(t, "executable", TypeExecutable.String())
	assert.Equal(t, "shared object", TypeSharedObject.String())
	assert.Equal(t, "core", TypeCore.String())
	assert.Equal(t, "other (0xfe00)", TypeOther(0xFE00).String())
}

func TestTypeCode(t *testing.T) {
	_, ok := TypeExecutable.Code()
	assert.False(t, ok)

	code, ok := TypeOther(0xFF00).Code()
	assert.True(t, ok)
	assert.Equal(t, uint16(0xFF00), code)
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, "0x00008000", Address{Class: Class32, Value: 0x8000}.String())
	assert.Equal(t, "0x0000000000401000", Address{Class: Class64, Value: 0x401000}.String())
}

func TestMachineName(t *testing.T) {
	assert.Equal(t, "x86-64", MachineName(0x3E))
	assert.Equal(t, "AArch64", MachineName(0xB7))
	assert.Equal(t, "RISC-V", MachineName(0xF3))
	assert.Equal(t, "unknown (0x1234)", MachineName(0x1234))
}

func TestHeaderMarshalJSON(t *testing.T) {
	header, err := decodeFixture(t, validFixture())
	require.NoError(t, err)

	data, err := json.Marshal(header)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "ELF64", decoded["class"])
	assert.Equal(t, "little endian", decoded["byte_order"])
	assert.Equal(t, "System V", decoded["osabi"])
	assert.Equal(t, "executable", decoded["type"])
	assert.Equal(t, float64(0x3E), decoded["machine"])
	assert.Equal(t, "0x0000000000401000", decoded["entry"])
}

func TestDecodeErrorMessages(t *testing.T) {
	tests := []struct {
		err  *DecodeError
		want string
	}{
		{&DecodeError{Kind: KindNotELF}, "not an ELF file"},
		{&DecodeError{Kind: KindInvalidClass, Value: 3}, "invalid class byte: want 1 or 2, got 3"},
		{&DecodeError{Kind: KindInvalidByteOrder, Value: 0}, "invalid byte order byte: want 1 or 2, got 0"},
		{&DecodeError{Kind: KindInvalidIdentVersion, Value: 2}, "invalid identifier version: want 1, got 2"},
		{&DecodeError{Kind: KindInvalidOSABI, Value: 0x05}, "invalid OS ABI byte: 0x05"},
		{&DecodeError{Kind: KindInvalidType, Value: 0xFE01}, "invalid object type: 0xfe01"},
		{&DecodeError{Kind: KindTruncated}, "unexpected end of file"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}
