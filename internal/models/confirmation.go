package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attendance is a guest's answer to the invitation.
type Attendance string

const (
	AttendanceYes   Attendance = "yes"
	AttendanceNo    Attendance = "no"
	AttendanceMaybe Attendance = "maybe"
)

// ParseAttendance normalizes and validates an attendance value.
// Only the three persisted values are accepted.
func ParseAttendance(s string) (Attendance, bool) {
	switch Attendance(strings.ToLower(strings.TrimSpace(s))) {
	case AttendanceYes:
		return AttendanceYes, true
	case AttendanceNo:
		return AttendanceNo, true
	case AttendanceMaybe:
		return AttendanceMaybe, true
	}
	return "", false
}

// Confirmation is one guest's RSVP. Records are immutable after creation;
// the only lifecycle transitions are create and delete.
type Confirmation struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Message   string     `json:"message"`
	Attending Attendance `json:"attending"`
	Guests    int        `json:"guests"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ConfirmationRequest is the POST /api/confirmation payload.
// guests is meaningful only when attending is "yes".
type ConfirmationRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message,omitempty"`
	Attending string `json:"attending"`
	Guests    int    `json:"guests"`
}

// ConfirmationResponse is returned by POST /api/confirmation.
type ConfirmationResponse struct {
	ID      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
}
