package calculator

// InZone reports whether price falls within [zoneLow-buffer, zoneHigh+buffer].
func InZone(price, zoneLow, zoneHigh, buffer float64) bool {
	return price >= zoneLow-buffer && price <= zoneHigh+buffer
}
