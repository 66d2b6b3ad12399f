package notify

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"casamento/internal/models"
)

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier

	// Must not panic; notification is optional.
	n.ConfirmationReceived(models.Confirmation{Name: "Ana"})
}

func TestNewNotifier_DisabledWithoutConfig(t *testing.T) {
	n, err := NewNotifier("", 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != nil {
		t.Fatal("expected nil notifier when unconfigured")
	}
}

func TestFormatConfirmation(t *testing.T) {
	cases := []struct {
		rec  models.Confirmation
		want []string
	}{
		{
			rec:  models.Confirmation{Name: "Ana", Attending: models.AttendanceYes, Guests: 4},
			want: []string{"Ana", "vai", "4 convidados"},
		},
		{
			rec:  models.Confirmation{Name: "Bia", Attending: models.AttendanceNo},
			want: []string{"Bia", "não vai"},
		},
		{
			rec:  models.Confirmation{Name: "Caio", Attending: models.AttendanceMaybe, Message: "vou tentar!"},
			want: []string{"Caio", "talvez", "vou tentar!"},
		},
	}

	for _, tc := range cases {
		text := formatConfirmation(tc.rec)
		for _, fragment := range tc.want {
			if !strings.Contains(text, fragment) {
				t.Errorf("message for %s missing %q: %s", tc.rec.Name, fragment, text)
			}
		}
	}
}
