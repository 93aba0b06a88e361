package platform

// c64Labels covers the most commonly referenced KERNAL entry points and
// hardware registers: CIA, SID, VIC-II and the zero-page pointers used by
// the KERNAL's own load/save/print routines.
var c64Labels = []Entry{
	// zero page
	{0x0001, "PROCPORT"},
	{0x00B2, "FETCH_VECTOR"},
	{0x00C1, "STAL"},
	{0x00C2, "STAH"},
	{0x00D0, "aD0"},

	// VIC-II
	{0xD000, "VIC_SP0X"}, {0xD001, "VIC_SP0Y"},
	{0xD011, "VIC_CTRL1"}, {0xD012, "VIC_RASTER"},
	{0xD016, "VIC_CTRL2"}, {0xD018, "VIC_MEMSETUP"},
	{0xD019, "VIC_IRQ"}, {0xD01A, "VIC_IRQEN"},
	{0xD020, "VIC_BORDER"}, {0xD021, "VIC_BG0"},

	// SID
	{0xD400, "SID_V1FREQ"}, {0xD404, "SID_V1CTRL"},
	{0xD415, "SID_FILTFREQ"}, {0xD418, "SID_VOLUME"},

	// CIA1/CIA2
	{0xDC00, "CIA1_PRA"}, {0xDC01, "CIA1_PRB"},
	{0xDC0D, "CIA1_ICR"}, {0xDC0E, "CIA1_CRA"},
	{0xDD00, "CIA2_PRA"}, {0xDD0D, "CIA2_ICR"},

	// KERNAL
	{0xFFA5, "KERNAL_ACPTR"}, {0xFFB1, "KERNAL_LISTEN"},
	{0xFFC0, "KERNAL_OPEN"}, {0xFFC3, "KERNAL_CLOSE"},
	{0xFFC6, "KERNAL_CHKIN"}, {0xFFC9, "KERNAL_CHKOUT"},
	{0xFFCC, "KERNAL_CLRCHN"}, {0xFFCF, "KERNAL_CHRIN"},
	{0xFFD2, "KERNAL_CHROUT"}, {0xFFD5, "KERNAL_LOAD"},
	{0xFFD8, "KERNAL_SAVE"}, {0xFFDB, "KERNAL_SETTIM"},
	{0xFFE1, "KERNAL_STOP"}, {0xFFE4, "KERNAL_GETIN"},
	{0xFFE7, "KERNAL_CLALL"}, {0xFFEA, "KERNAL_UDTIM"},
	{0xFFED, "KERNAL_SCREEN"}, {0xFFF0, "KERNAL_PLOT"},
	{0xFFF3, "KERNAL_IOBASE"},
}
