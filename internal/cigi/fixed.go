package cigi

// CIGI 2 encodes angles and small offsets as 16-bit signed fixed-point
// values with 7 fraction bits, so one wire step is 1/128 degree.

const fixedPointScale = 128.0

// FixedToFloat converts a 16-bit signed fixed-point wire value to its
// floating-point equivalent.
func FixedToFloat(raw int16) float64 {
	return float64(raw) / fixedPointScale
}

// FloatToFixed quantizes a float to the 16-bit fixed-point wire form.
// Values outside the representable range saturate.
func FloatToFixed(v float64) int16 {
	scaled := v * fixedPointScale
	switch {
	case scaled > 32767:
		return 32767
	case scaled < -32768:
		return -32768
	}
	if scaled >= 0 {
		return int16(scaled + 0.5)
	}
	return int16(scaled - 0.5)
}
