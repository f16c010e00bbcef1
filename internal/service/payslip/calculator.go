package payslip

import (
	"encoding/json"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var (
	defaultBaseSalary = decimal.NewFromInt(15000)
	hraRate           = decimal.NewFromFloat(0.40)
	pfRate            = decimal.NewFromFloat(0.12)
	esiEmployeeRate   = decimal.NewFromFloat(0.0075)
	esiEmployerRate   = decimal.NewFromFloat(0.0325)
	ptThreshold       = decimal.NewFromInt(15000)
	ptAmount          = decimal.NewFromInt(200)
)

// dayAggregate is one employee's attendance rolled up for a month.
type dayAggregate struct {
	Present  int     `json:"present"`
	HalfDay  int     `json:"half_day"`
	Absent   int     `json:"absent"`
	OnLeave  int     `json:"on_leave"`
	WeekOff  int     `json:"week_off"`
	Upcoming int     `json:"upcoming"`
	PaidDays float64 `json:"paid_days"`
	LOPDays  float64 `json:"lop_days"`
}

// aggregateDays folds the dense monthly grid into per-employee paid/LOP day
// counts. Unpaid leave is the one leave type that costs pay; week-offs are
// paid, and not-yet-recorded weekdays count against pay for generation
// purposes.
func aggregateDays(grid []attendance.AttendanceDay) map[string]*dayAggregate {
	byUser := make(map[string]*dayAggregate)
	for _, day := range grid {
		agg, ok := byUser[day.UserID]
		if !ok {
			agg = &dayAggregate{}
			byUser[day.UserID] = agg
		}

		switch day.Status {
		case attendance.StatusPresent:
			agg.Present++
			agg.PaidDays++
		case attendance.StatusHalfDay:
			agg.HalfDay++
			agg.PaidDays += 0.5
			agg.LOPDays += 0.5
		case attendance.StatusOnLeave:
			agg.OnLeave++
			if day.LeaveType != nil && *day.LeaveType == leave.TypeUnpaidLeave {
				agg.LOPDays++
			} else {
				agg.PaidDays++
			}
		case attendance.StatusAbsent:
			agg.Absent++
			agg.LOPDays++
		case attendance.StatusWeekOff:
			agg.WeekOff++
			agg.PaidDays++
		case attendance.StatusUpcoming:
			agg.Upcoming++
			agg.LOPDays++
		}
	}
	return byUser
}

// salaryBreakup holds the prorated monthly components.
type salaryBreakup struct {
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	Gross           decimal.Decimal
	PF              decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// computeSalary prorates the standard structure (basic = base, hra = 40% of
// base) by paid days over calendar days and applies the fixed statutory
// rates. Gross is prorated from the unrounded standard gross, so it can
// differ from basic+hra by a unit. Employer-side PF/ESI legs are
// informational and excluded from the deduction total.
func computeSalary(base decimal.Decimal, paidDays float64, daysInMonth int) salaryBreakup {
	ratio := decimal.NewFromFloat(paidDays).Div(decimal.NewFromInt(int64(daysInMonth)))

	stdBasic := base
	stdHRA := base.Mul(hraRate)
	stdGross := stdBasic.Add(stdHRA)

	basic := stdBasic.Mul(ratio).Round(0)
	hra := stdHRA.Mul(ratio).Round(0)
	gross := stdGross.Mul(ratio).Round(0)

	pf := basic.Mul(pfRate).Round(0)
	esiEE := gross.Mul(esiEmployeeRate).Round(0)
	esiER := gross.Mul(esiEmployerRate).Round(0)

	pt := decimal.Zero
	if gross.GreaterThan(ptThreshold) {
		pt = ptAmount
	}

	totalDeductions := pf.Add(esiEE).Add(pt)

	return salaryBreakup{
		Basic:           basic,
		HRA:             hra,
		Gross:           gross,
		PF:              pf,
		ESIEmployee:     esiEE,
		ESIEmployer:     esiER,
		ProfessionalTax: pt,
		TotalDeductions: totalDeductions,
		NetPay:          gross.Sub(totalDeductions),
	}
}

func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

func marshalSummary(agg *dayAggregate) json.RawMessage {
	raw, err := json.Marshal(agg)
	if err != nil {
		return nil
	}
	return raw
}
