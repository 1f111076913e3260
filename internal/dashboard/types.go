package dashboard

// KPIStats are the headline figures shown on the dashboard cards.
// Values are illustrative configuration, not computed (the service stores
// no real hospital data).
type KPIStats struct {
	Revenue       int64 // IDR
	BedOccupancy  int   // percent
	PatientsToday int
	PendingClaims int
}

// RevenuePoint is one month of the revenue/patients chart series.
type RevenuePoint struct {
	Name     string // month label
	Revenue  int
	Patients int
}

// InsuranceShare is one payer's slice of the insurance distribution chart.
type InsuranceShare struct {
	Name  string
	Value int // percent
}
