package payslip

import (
	"testing"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSalary_Prorated(t *testing.T) {
	// Base 20000, 20 paid days out of 30.
	got := computeSalary(decimal.NewFromInt(20000), 20, 30)

	assert.Equal(t, "13333", got.Basic.String())
	assert.Equal(t, "5333", got.HRA.String())
	assert.Equal(t, "18667", got.Gross.String())
	assert.Equal(t, "1600", got.PF.String())
	assert.Equal(t, "140", got.ESIEmployee.String())
	assert.Equal(t, "607", got.ESIEmployer.String())
	assert.Equal(t, "200", got.ProfessionalTax.String())
	assert.Equal(t, "1940", got.TotalDeductions.String())
	assert.Equal(t, "16727", got.NetPay.String())
}

func TestComputeSalary_FullMonth(t *testing.T) {
	got := computeSalary(decimal.NewFromInt(20000), 31, 31)

	assert.Equal(t, "20000", got.Basic.String())
	assert.Equal(t, "8000", got.HRA.String())
	assert.Equal(t, "28000", got.Gross.String())
	assert.Equal(t, "2400", got.PF.String())
	assert.Equal(t, "210", got.ESIEmployee.String())
	assert.Equal(t, "200", got.ProfessionalTax.String())
	assert.Equal(t, "2810", got.TotalDeductions.String())
	assert.Equal(t, "25190", got.NetPay.String())
}

func TestComputeSalary_BelowProfessionalTaxThreshold(t *testing.T) {
	// Gross at the default base with no attendance deduction is exactly
	// 15000 + 6000 prorated down; pick a ratio landing under 15000.
	got := computeSalary(decimal.NewFromInt(15000), 15, 30)

	assert.Equal(t, "10500", got.Gross.String())
	assert.True(t, got.ProfessionalTax.IsZero())
}

func TestComputeSalary_ZeroPaidDays(t *testing.T) {
	got := computeSalary(decimal.NewFromInt(20000), 0, 30)

	assert.True(t, got.Gross.IsZero())
	assert.True(t, got.NetPay.IsZero())
	assert.True(t, got.TotalDeductions.IsZero())
}

func TestAggregateDays(t *testing.T) {
	unpaid := leave.TypeUnpaidLeave
	privilege := leave.TypePrivilegeLeave
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	grid := []attendance.AttendanceDay{
		{UserID: "u1", Date: day, Status: attendance.StatusPresent},
		{UserID: "u1", Date: day.AddDate(0, 0, 1), Status: attendance.StatusHalfDay},
		{UserID: "u1", Date: day.AddDate(0, 0, 2), Status: attendance.StatusOnLeave, LeaveType: &privilege},
		{UserID: "u1", Date: day.AddDate(0, 0, 3), Status: attendance.StatusOnLeave, LeaveType: &unpaid},
		{UserID: "u1", Date: day.AddDate(0, 0, 4), Status: attendance.StatusAbsent},
		{UserID: "u1", Date: day.AddDate(0, 0, 5), Status: attendance.StatusWeekOff},
		{UserID: "u1", Date: day.AddDate(0, 0, 6), Status: attendance.StatusUpcoming},
		{UserID: "u2", Date: day, Status: attendance.StatusPresent},
	}

	byUser := aggregateDays(grid)
	require.Len(t, byUser, 2)

	u1 := byUser["u1"]
	// present 1 + half 0.5 + paid leave 1 + week off 1 = 3.5 paid
	assert.Equal(t, 3.5, u1.PaidDays)
	// half 0.5 + unpaid leave 1 + absent 1 + upcoming 1 = 3.5 LOP
	assert.Equal(t, 3.5, u1.LOPDays)
	assert.Equal(t, 1, u1.Present)
	assert.Equal(t, 1, u1.HalfDay)
	assert.Equal(t, 2, u1.OnLeave)

	u2 := byUser["u2"]
	assert.Equal(t, 1.0, u2.PaidDays)
	assert.Equal(t, 0.0, u2.LOPDays)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, daysInMonth(2, 2024))
	assert.Equal(t, 28, daysInMonth(2, 2023))
	assert.Equal(t, 31, daysInMonth(5, 2024))
	assert.Equal(t, 30, daysInMonth(4, 2024))
}
