package render

import "strconv"

var sizeUnits = []string{"", "K", "M", "G", "T", "P"}

// HumanSize formats size the way `numfmt --to=iec` rounds: every division
// rounds up and no decimals are kept. si selects powers of 1000.
func HumanSize(size int64, si bool) string {
	base := int64(1024)
	if si {
		base = 1000
	}
	if size < base {
		return strconv.FormatInt(size, 10)
	}

	val := size
	unit := 0
	for val >= base*base && unit < len(sizeUnits)-2 {
		val = ceilDiv(val, base)
		unit++
	}
	val = ceilDiv(val, base)
	unit++

	return strconv.FormatInt(val, 10) + sizeUnits[unit]
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
