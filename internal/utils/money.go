package utils

// Currency math stays in integer cents; quantities in integer
// milli-acre-feet. The single rounding rule everywhere is round-half-up.

// roundHalfUpDiv divides num by den, rounding half up. Both operands must
// be non-negative and den positive.
func roundHalfUpDiv(num, den int64) int64 {
	return (num + den/2) / den
}

// TotalCents computes the listing total in cents from a per-acre-foot price
// in cents and a quantity in milli-acre-feet.
func TotalCents(priceCentsPerAF, amountMilliAF int64) int64 {
	return roundHalfUpDiv(priceCentsPerAF*amountMilliAF, 1000)
}

// FeeCents computes the platform's application fee in cents from a total
// and a rate in basis points.
func FeeCents(totalCents, feeBps int64) int64 {
	return roundHalfUpDiv(totalCents*feeBps, 10000)
}

// MilliAFToAF renders a milli-acre-foot quantity as a decimal acre-foot
// value for display. Quantities are not currency, so a float here is fine.
func MilliAFToAF(milliAF int64) float64 {
	return float64(milliAF) / 1000
}

// CentsToDollars renders cents for display only; never feed the result back
// into arithmetic.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
