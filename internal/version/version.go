// Package version - метаданные сборки для флага -version и стартового лога.
package version

import (
	"errors"
	"fmt"
	"time"
)

// Заполняются через -ldflags "-X haste/internal/version.BuildDate=2026-01-02 -X ...BuildCommit=abc"
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

const Name = "haste"

// epoch - день сборки номер 0
var epoch = time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)

var errNoDate = errors.New("build date not set")

// BuildNumber - число полных дней от epoch до даты сборки
func BuildNumber(date string) (int, error) {
	if date == "" {
		return 0, errNoDate
	}
	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("build date %q: %w", date, err)
	}
	if t.Before(epoch) {
		return 0, fmt.Errorf("build date %s is before %s", date, epoch.Format(time.DateOnly))
	}
	return int(t.Sub(epoch).Hours() / 24), nil
}

// String: "haste build 10 (2025-12-14) abc123" или "haste dev build" без ldflags
func String() string {
	n, err := BuildNumber(BuildDate)
	if err != nil {
		return fmt.Sprintf("%s dev build (%v)", Name, err)
	}
	commit := BuildCommit
	if commit == "" {
		commit = "unknown"
	}
	return fmt.Sprintf("%s build %d (%s) %s", Name, n, BuildDate, commit)
}
