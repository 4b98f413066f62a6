package deflation

// Calendar period arithmetic. A period key is year*100+month of the
// proleptic Gregorian calendar in UTC, computed from a millisecond timestamp
// through the Julian day number. Claim eligibility compares period keys for
// equality, so the conversion must stay exact integer math.

const unixEpochJDN = 2440588

// periodAt converts a millisecond timestamp into its calendar period key.
func periodAt(ms int) int {
	jdn := ms/dayMs + unixEpochJDN

	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	month := m + 3 - 12*(m/10)
	year := 100*b + d - 4800 + m/10

	return year*100 + month
}

// previousPeriod returns the period preceding the given one, rolling
// January back to December of the prior year.
func previousPeriod(period int) int {
	if period%100 == 1 {
		return period - 100 + 11
	}
	return period - 1
}
