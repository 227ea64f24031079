package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

const overtimeBaselineHours = 8

var (
	millisPerHour  = decimal.NewFromInt(int64(time.Hour / time.Millisecond))
	overtimeHours  = decimal.NewFromInt(overtimeBaselineHours)
	minutesPerHour = decimal.NewFromInt(60)
)

type Shift struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	StoreID   string    `json:"storeId"`
	Name      string    `json:"name"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Shift) GetID() string { return s.ID }

type Timesheet struct {
	ID           string           `json:"id"`
	TenantID     string           `json:"tenantId"`
	EmployeeID   string           `json:"employeeId"`
	ShiftID      *string          `json:"shiftId,omitempty"`
	WorkDate     time.Time        `json:"workDate"`
	ClockIn      *time.Time       `json:"clockIn,omitempty"`
	ClockOut     *time.Time       `json:"clockOut,omitempty"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	OvertimeMins *int64           `json:"overtimeMins,omitempty"`
	Note         *string          `json:"note,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func (t Timesheet) GetID() string { return t.ID }

// recompute derives hours and overtime from the current clock pair.
// Both stay nil until clockIn and clockOut are set.
func (t *Timesheet) recompute() {
	t.Hours = nil
	t.OvertimeMins = nil
	if t.ClockIn == nil || t.ClockOut == nil {
		return
	}

	hours := workedHours(*t.ClockIn, *t.ClockOut)
	overtime := overtimeMinutes(hours)
	t.Hours = &hours
	t.OvertimeMins = &overtime
}

// workedHours is the span in hours, half-up at two places, floored at zero.
func workedHours(in, out time.Time) decimal.Decimal {
	ms := out.Sub(in).Milliseconds()
	if ms <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(ms).DivRound(millisPerHour, 2)
}

func overtimeMinutes(hours decimal.Decimal) int64 {
	extra := decimal.Max(decimal.Zero, hours.Sub(overtimeHours))
	return extra.Mul(minutesPerHour).Round(0).IntPart()
}
