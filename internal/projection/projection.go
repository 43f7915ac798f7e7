package projection

import (
	"fmt"
	"math"

	"quantpulse/internal/model"
)

// Input bounds matching the dashboard controls.
const (
	MinYears             = 1
	MaxYears             = 30
	MaxAnnualRatePercent = 20
)

// Project computes a discrete-time dollar-cost-averaging growth sequence.
// Each month the contribution is added at the start of the period, then the
// running total compounds at the equivalent monthly rate derived from the
// annual rate ((1+r)^(1/12)-1, not r/12).
func Project(monthlyContribution float64, years int, annualRatePercent float64) (*model.DcaProjection, error) {
	if math.IsNaN(monthlyContribution) || monthlyContribution < 0 {
		return nil, fmt.Errorf("monthly contribution must be >= 0, got %v", monthlyContribution)
	}
	if years < MinYears || years > MaxYears {
		return nil, fmt.Errorf("years must be within %d-%d, got %d", MinYears, MaxYears, years)
	}
	if math.IsNaN(annualRatePercent) || annualRatePercent < 0 || annualRatePercent > MaxAnnualRatePercent {
		return nil, fmt.Errorf("annual rate percent must be within 0-%d, got %v", MaxAnnualRatePercent, annualRatePercent)
	}

	months := years * 12
	monthlyRate := math.Pow(1+annualRatePercent/100, 1.0/12) - 1

	points := make([]model.DcaPoint, months)
	value := 0.0
	for i := 0; i < months; i++ {
		value = (value + monthlyContribution) * (1 + monthlyRate)
		points[i] = model.DcaPoint{
			Period:    i + 1,
			Principal: monthlyContribution * float64(i+1),
			Value:     value,
		}
	}

	proj := &model.DcaProjection{
		MonthlyContribution: monthlyContribution,
		Years:               years,
		AnnualRatePercent:   annualRatePercent,
		Points:              points,
	}

	final := points[months-1]
	proj.Summary = model.DcaSummary{
		FinalPrincipal: final.Principal,
		FinalValue:     final.Value,
		NetGain:        final.Value - final.Principal,
	}
	// Zero contribution leaves nothing to divide by; the percent stays unset
	// rather than propagating NaN into the dashboard.
	if final.Principal > 0 {
		gp := (final.Value/final.Principal - 1) * 100
		proj.Summary.GainPercent = &gp
	}
	return proj, nil
}
