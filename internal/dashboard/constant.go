package dashboard

// Static dashboard figures, defined once at startup.

var initialStats = KPIStats{
	Revenue:       1_250_000_000, // IDR
	BedOccupancy:  85,
	PatientsToday: 142,
	PendingClaims: 34,
}

var revenueSeries = []RevenuePoint{
	{Name: "Jan", Revenue: 450, Patients: 1200},
	{Name: "Feb", Revenue: 520, Patients: 1350},
	{Name: "Mar", Revenue: 480, Patients: 1100},
	{Name: "Apr", Revenue: 600, Patients: 1500},
	{Name: "Mei", Revenue: 750, Patients: 1800},
	{Name: "Jun", Revenue: 700, Patients: 1700},
}

var insuranceDistribution = []InsuranceShare{
	{Name: "BPJS Kesehatan", Value: 65},
	{Name: "Asuransi Swasta", Value: 25},
	{Name: "Mandiri (Tunai)", Value: 10},
}
