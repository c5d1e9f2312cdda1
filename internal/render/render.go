// Package render formats a decoded ELF header for display. It imposes no
// requirements on the decode itself; it only consumes the finished record.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mathew-horner/elf/internal/elffile"
)

// Text writes a human-readable field listing to w.
func Text(w io.Writer, h *elffile.Header) error {
	rows := []struct {
		label string
		value string
	}{
		{"Class", h.Class.String()},
		{"Byte order", h.ByteOrder.String()},
		{"OS ABI", h.OSABI.String()},
		{"ABI version", fmt.Sprintf("%d", h.ABIVersion)},
		{"Type", h.Type.String()},
		{"Machine", fmt.Sprintf("%s (0x%04x)", elffile.MachineName(h.Machine), h.Machine)},
		{"Version", fmt.Sprintf("0x%x", h.Version)},
		{"Entry point", h.Entry.String()},
		{"Program header offset", h.ProgramHeaderOff.String()},
		{"Section header offset", h.SectionHeaderOff.String()},
		{"Flags", fmt.Sprintf("0x%x", h.Flags)},
		{"Header size", fmt.Sprintf("%d bytes", h.HeaderSize)},
		{"Program header entry size", fmt.Sprintf("%d bytes", h.ProgramHeaderEntrySize)},
		{"Program header count", fmt.Sprintf("%d", h.ProgramHeaderCount)},
		{"Section header entry size", fmt.Sprintf("%d bytes", h.SectionHeaderEntrySize)},
		{"Section header count", fmt.Sprintf("%d", h.SectionHeaderCount)},
		{"Section name index", fmt.Sprintf("%d", h.SectionNameIndex)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-26s %s\n", row.label+":", row.value); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the header as indented JSON to w.
func JSON(w io.Writer, h *elffile.Header) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(h)
}
