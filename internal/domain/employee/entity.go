package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	FullName     string
	Email        string
	IsAdmin      bool
	Timezone     string
	JoinDate     *time.Time
	PFBaseSalary *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Location resolves the employee's IANA timezone, falling back to UTC when
// the stored name is empty or unknown.
func (e Employee) Location() *time.Location {
	if e.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
