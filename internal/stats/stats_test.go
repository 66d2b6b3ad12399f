package stats

import (
	"testing"

	"casamento/internal/models"
)

func confirmation(att models.Attendance, guests int, message string) models.Confirmation {
	return models.Confirmation{
		Name:      "Guest",
		Email:     "guest@example.com",
		Message:   message,
		Attending: att,
		Guests:    guests,
	}
}

func TestCompute_Empty(t *testing.T) {
	agg := Compute(nil)

	if agg.Total != 0 {
		t.Errorf("total: expected 0, got %d", agg.Total)
	}
	if agg.ConfirmationRate != 0 {
		t.Errorf("confirmation rate with no records: expected 0, got %d", agg.ConfirmationRate)
	}
	if agg.AverageGuests != 0 {
		t.Errorf("average guests with no confirmed: expected 0, got %d", agg.AverageGuests)
	}
}

func TestCompute_SingleConfirmed(t *testing.T) {
	agg := Compute([]models.Confirmation{
		confirmation(models.AttendanceYes, 4, "see you there!"),
	})

	if agg.Confirmed != 1 {
		t.Errorf("confirmed: expected 1, got %d", agg.Confirmed)
	}
	if agg.TotalGuests != 4 {
		t.Errorf("total guests: expected 4, got %d", agg.TotalGuests)
	}
	if agg.ConfirmationRate != 100 {
		t.Errorf("confirmation rate: expected 100, got %d", agg.ConfirmationRate)
	}
	if agg.AverageGuests != 4 {
		t.Errorf("average guests: expected 4, got %d", agg.AverageGuests)
	}
}

func TestCompute_MixedAttendance(t *testing.T) {
	agg := Compute([]models.Confirmation{
		confirmation(models.AttendanceYes, 2, ""),
		confirmation(models.AttendanceNo, 0, ""),
		confirmation(models.AttendanceMaybe, 0, ""),
	})

	if agg.Total != 3 {
		t.Errorf("total: expected 3, got %d", agg.Total)
	}
	if agg.Confirmed != 1 || agg.Declined != 1 || agg.Tentative != 1 {
		t.Errorf("counts: expected 1/1/1, got %d/%d/%d", agg.Confirmed, agg.Declined, agg.Tentative)
	}
	if agg.TotalGuests != 2 {
		t.Errorf("total guests: expected 2, got %d", agg.TotalGuests)
	}
	// 1/3 of 100 rounds to 33.
	if agg.ConfirmationRate != 33 {
		t.Errorf("confirmation rate: expected 33, got %d", agg.ConfirmationRate)
	}
	if agg.AverageGuests != 2 {
		t.Errorf("average guests: expected 2, got %d", agg.AverageGuests)
	}
}

func TestCompute_GuestsIgnoredUnlessAttending(t *testing.T) {
	agg := Compute([]models.Confirmation{
		confirmation(models.AttendanceNo, 5, ""),
		confirmation(models.AttendanceMaybe, 3, ""),
	})

	if agg.TotalGuests != 0 {
		t.Errorf("total guests: expected 0 when nobody attends, got %d", agg.TotalGuests)
	}
	if agg.AverageGuests != 0 {
		t.Errorf("average guests: expected 0, got %d", agg.AverageGuests)
	}
}

func TestCompute_MessagePartition(t *testing.T) {
	agg := Compute([]models.Confirmation{
		confirmation(models.AttendanceYes, 1, "parabéns!"),
		confirmation(models.AttendanceYes, 1, ""),
		confirmation(models.AttendanceYes, 1, "   "), // whitespace counts as no message
	})

	if agg.WithMessage != 1 {
		t.Errorf("with message: expected 1, got %d", agg.WithMessage)
	}
	if agg.WithoutMessage != 2 {
		t.Errorf("without message: expected 2, got %d", agg.WithoutMessage)
	}
}

func TestCompute_Rounding(t *testing.T) {
	// 2 confirmed of 3 total: 66.67% rounds to 67.
	// 5 guests over 2 confirmed: 2.5 rounds to 3.
	agg := Compute([]models.Confirmation{
		confirmation(models.AttendanceYes, 2, ""),
		confirmation(models.AttendanceYes, 3, ""),
		confirmation(models.AttendanceNo, 0, ""),
	})

	if agg.ConfirmationRate != 67 {
		t.Errorf("confirmation rate: expected 67, got %d", agg.ConfirmationRate)
	}
	if agg.AverageGuests != 3 {
		t.Errorf("average guests: expected 3, got %d", agg.AverageGuests)
	}
}

func TestCompute_NegativeGuestsDoNotCorruptTotals(t *testing.T) {
	agg := Compute([]models.Confirmation{
		confirmation(models.AttendanceYes, -4, ""),
		confirmation(models.AttendanceYes, 2, ""),
	})

	if agg.TotalGuests != 2 {
		t.Errorf("total guests: expected 2, got %d", agg.TotalGuests)
	}
}
