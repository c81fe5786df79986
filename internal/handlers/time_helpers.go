package handlers

import "time"

// All timestamps cross the wire as RFC3339 and are normalized to UTC
// before they reach the scheduling core.

func parseRFC3339(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := parseRFC3339(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseRFC3339(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
