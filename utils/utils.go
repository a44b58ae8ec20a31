package utils

import (
	// Go Internal Packages
	"context"
	"strings"
	"time"
)

// DigitsOnly drops every rune that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LastFour returns the last four digits of s, or all of them if fewer.
func LastFour(s string) string {
	d := DigitsOnly(s)
	if len(d) <= 4 {
		return d
	}
	return d[len(d)-4:]
}

// GroupDigits formats a card number in blocks of four: "4242 4242 4242 4242".
func GroupDigits(s string) string {
	d := DigitsOnly(s)
	parts := make([]string, 0, len(d)/4+1)
	for i := 0; i < len(d); i += 4 {
		end := min(i+4, len(d))
		parts = append(parts, d[i:end])
	}
	return strings.Join(parts, " ")
}

// FormatExpiry turns "1227" or "12/27" into "12/27".
func FormatExpiry(s string) string {
	d := DigitsOnly(s)
	if len(d) < 2 {
		return d
	}
	if len(d) > 4 {
		d = d[:4]
	}
	return d[:2] + "/" + d[2:]
}

// Contains is a case insensitive substring match.
func Contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
