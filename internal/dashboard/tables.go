package dashboard

// Stats returns the headline KPI figures.
func Stats() KPIStats {
	return initialStats
}

// Revenue returns a copy of the monthly revenue/patients series.
func Revenue() []RevenuePoint {
	out := make([]RevenuePoint, len(revenueSeries))
	copy(out, revenueSeries)
	return out
}

// Insurance returns a copy of the payer distribution.
func Insurance() []InsuranceShare {
	out := make([]InsuranceShare, len(insuranceDistribution))
	copy(out, insuranceDistribution)
	return out
}
