package locale

import (
	"errors"
	"fmt"
)

var ErrUnknownMonth = errors.New("unknown month")

// Locale is the fixed set of texts shown on the form and on the printed sheet.
type Locale struct {
	Columns [7]string
	Months  [12]string

	DefaultMonth string
	DefaultTour  string
	TotalsLabel  string

	DriverLabel    string
	MonthLabel     string
	SignatureLabel string
	PrintTitle     string

	AddRowButton string
	PrintButton  string
	SaveButton   string

	UnreadableHint string
}

var German = Locale{
	Columns: [7]string{
		"Tour bzw. Fahrten",
		"Arbeitszeit von",
		"Arbeitszeit bis",
		"Pause in Std",
		"Arbeitszeit in Std",
		"Überstunden",
		"Sonstiges",
	},
	Months: [12]string{
		"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember",
	},
	DefaultMonth:   "August",
	DefaultTour:    "Stadtrundfahrt",
	TotalsLabel:    "Gesamtsumme",
	DriverLabel:    "Taxifahrer Name:",
	MonthLabel:     "Monat:",
	SignatureLabel: "Unterschrift Fahrer",
	PrintTitle:     "Druckansicht",
	AddRowButton:   "Reihe hinzufügen",
	PrintButton:    "Drucken",
	SaveButton:     "Speichern",
	UnreadableHint: "Nicht lesbare Werte wurden als 0 gezählt, Zeile:",
}

// ValidMonth reports whether m is one of the locale's month names.
func (l Locale) ValidMonth(m string) error {
	if l.MonthNumber(m) == 0 {
		return fmt.Errorf("%w: %q", ErrUnknownMonth, m)
	}
	return nil
}

// MonthNumber returns the 1-based position of m in the month list, or 0 when
// m is not a month of the locale.
func (l Locale) MonthNumber(m string) int {
	for i, name := range l.Months {
		if name == m {
			return i + 1
		}
	}
	return 0
}

// MonthOrDefault returns m, or the default month when m is empty.
func (l Locale) MonthOrDefault(m string) (string, error) {
	if m == "" {
		return l.DefaultMonth, nil
	}
	if err := l.ValidMonth(m); err != nil {
		return "", err
	}
	return m, nil
}
