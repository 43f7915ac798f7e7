package model

// DcaPoint is one month of a dollar-cost-averaging projection.
type DcaPoint struct {
	Period    int     `json:"period"` // 1-based month index
	Principal float64 `json:"principal"`
	Value     float64 `json:"value"`
}

// DcaSummary holds the convenience metrics for the final period.
// GainPercent is nil when no principal was invested.
type DcaSummary struct {
	FinalPrincipal float64  `json:"final_principal"`
	FinalValue     float64  `json:"final_value"`
	NetGain        float64  `json:"net_gain"`
	GainPercent    *float64 `json:"gain_percent,omitempty"`
}

// DcaProjection is the full month-by-month compound growth sequence.
type DcaProjection struct {
	MonthlyContribution float64    `json:"monthly_contribution"`
	Years               int        `json:"years"`
	AnnualRatePercent   float64    `json:"annual_rate_percent"`
	Points              []DcaPoint `json:"points"`
	Summary             DcaSummary `json:"summary"`
}
