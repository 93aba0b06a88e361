package platform

// c128Labels covers the C128-specific MMU and additional KERNAL vectors that
// extend the C64 map, plus two of the KERNAL entry points it shares with the
// C64 (CLRCHN and CHROUT); the other shared C64 entry points are not listed.
var c128Labels = []Entry{
	{0xD505, "MMU_CR"},
	{0xFF00, "KERNAL_JMPFAR"},
	{0xFF9C, "KERNAL_SETBNK"},
	{0xFFCC, "KERNAL_CLRCHN"},
	{0xFFD2, "KERNAL_CHROUT"},
}

// vic20Labels covers the VIC-20's VIC-I and KERNAL entry points, which live
// at different addresses than the C64/C128 KERNAL.
var vic20Labels = []Entry{
	{0x9000, "VIC_REG"},
	{0x900F, "VIC_COLOR"},
	{0xFFD2, "KERNAL_CHROUT"},
	{0xFFCF, "KERNAL_CHRIN"},
	{0xFFE4, "KERNAL_GETIN"},
}

// plus4Labels covers the Plus/4's TED chip registers, which replace VIC-II
// and SID with a single combined video/sound/timer chip.
var plus4Labels = []Entry{
	{0xFF00, "TED_TIMER1LO"},
	{0xFF06, "TED_CTRL1"},
	{0xFF07, "TED_CTRL2"},
	{0xFF15, "TED_COLOR0"},
	{0xFF19, "TED_FREQ1"},
	{0xFFD2, "KERNAL_CHROUT"},
}

// petLabels covers the PET's 6520/6522 I/O chips and KERNAL screen
// routines.
var petLabels = []Entry{
	{0xE810, "PIA1_PA"},
	{0xE812, "PIA1_CRA"},
	{0xE840, "VIA_PB"},
	{0xFFD2, "KERNAL_CHROUT"},
}

// drive1541Labels covers the 1541 disk drive's own 6502-based firmware
// address space (VIA chips and the DOS's job-queue zero page), used when a
// loaded image is a drive ROM/floppy image rather than a C64 program.
var drive1541Labels = []Entry{
	{0x1800, "VIA1_PB"},
	{0x1C00, "VIA2_PB"},
	{0x0000, "JOB_QUEUE"},
}
