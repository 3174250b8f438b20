package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwsasi/kandy-summer/internal/attendee"
)

// ErrNoRows means the filtered list is empty and no export file is produced.
var ErrNoRows = errors.New("nothing to export")

var csvHeader = []string{"ID", "Full Name", "Email", "Phone", "Tickets", "Registration Date", "Status", "Notes"}

// ExportCSV serializes the filtered and sorted list. Text fields are always
// double-quoted with internal quotes doubled, matching the files organizers
// already have on disk; encoding/csv quotes only when it must, so the rows
// are assembled by hand.
func ExportCSV(list []attendee.Attendee) (string, error) {
	if len(list) == 0 {
		return "", ErrNoRows
	}

	rows := make([]string, 0, len(list)+1)
	rows = append(rows, strings.Join(csvHeader, ","))
	for _, a := range list {
		status := "Pending"
		if a.IsVerified {
			status = "Verified"
		}
		fields := []string{
			quote(a.ID),
			quote(a.FullName),
			quote(a.Email),
			quote(a.Phone),
			fmt.Sprintf("%d", a.TicketCount),
			quote(a.RegisteredAt.Format("2006-01-02 15:04:05")),
			quote(status),
			quote(a.Notes),
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return strings.Join(rows, "\n"), nil
}

// ExportFilename embeds the export date, e.g.
// KandyFest_Attendees_2026-02-14.csv.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("KandyFest_Attendees_%s.csv", now.Format("2006-01-02"))
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
