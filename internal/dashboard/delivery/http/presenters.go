package http

import "hospital-coordinator/internal/dashboard"

type statsResp struct {
	Revenue       int64 `json:"revenue"`
	BedOccupancy  int   `json:"bed_occupancy"`
	PatientsToday int   `json:"patients_today"`
	PendingClaims int   `json:"pending_claims"`
}

func newStatsResp(s dashboard.KPIStats) statsResp {
	return statsResp{
		Revenue:       s.Revenue,
		BedOccupancy:  s.BedOccupancy,
		PatientsToday: s.PatientsToday,
		PendingClaims: s.PendingClaims,
	}
}

type revenuePointResp struct {
	Name     string `json:"name"`
	Revenue  int    `json:"revenue"`
	Patients int    `json:"patients"`
}

type revenueResp struct {
	Series []revenuePointResp `json:"series"`
}

func newRevenueResp(points []dashboard.RevenuePoint) revenueResp {
	series := make([]revenuePointResp, len(points))
	for i, p := range points {
		series[i] = revenuePointResp{Name: p.Name, Revenue: p.Revenue, Patients: p.Patients}
	}
	return revenueResp{Series: series}
}

type insuranceShareResp struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type insuranceResp struct {
	Distribution []insuranceShareResp `json:"distribution"`
}

func newInsuranceResp(shares []dashboard.InsuranceShare) insuranceResp {
	distribution := make([]insuranceShareResp, len(shares))
	for i, s := range shares {
		distribution[i] = insuranceShareResp{Name: s.Name, Value: s.Value}
	}
	return insuranceResp{Distribution: distribution}
}
