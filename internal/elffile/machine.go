package elffile

import "fmt"

// machineNames covers the instruction sets this tool is likely to meet.
// The header stores the raw e_machine code without interpretation; these
// names exist only for display.
var machineNames = map[uint16]string{
	0x00: "none",
	0x02: "SPARC",
	0x03: "x86",
	0x08: "MIPS",
	0x14: "PowerPC",
	0x15: "PowerPC64",
	0x16: "S390",
	0x28: "ARM",
	0x2A: "SuperH",
	0x32: "IA-64",
	0x3E: "x86-64",
	0xB7: "AArch64",
	0xF3: "RISC-V",
	0xF7: "BPF",
	0x101: "WDC 65C816",
}

// MachineName returns a human-readable name for an e_machine code, or a
// hex rendering for codes it does not know.
func MachineName(code uint16) string {
	if name, ok := machineNames[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%04x)", code)
}
