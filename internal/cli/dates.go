package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/milkround/internal/domain"
	"github.com/araddon/dateparse"
)

// parseDateArg reads a calendar day from user input. Besides the keywords
// today, tomorrow and yesterday it accepts anything dateparse understands;
// the time of day, if given, is dropped.
func parseDateArg(s string, today domain.Date) (domain.Date, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}
	if d, err := domain.ParseDate(strings.TrimSpace(s)); err == nil {
		return d, nil
	}
	t, err := dateparse.ParseIn(strings.TrimSpace(s), time.Local)
	if err != nil {
		return domain.Date{}, fmt.Errorf("unrecognised date %q (try YYYY-MM-DD, today or tomorrow)", s)
	}
	return domain.DateOf(t), nil
}

// parseOptionalDate is parseDateArg for flags where empty means "not given".
func parseOptionalDate(s string, today domain.Date) (*domain.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDateArg(s, today)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
