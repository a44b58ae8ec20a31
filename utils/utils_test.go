package utils

import (
	// Go Internal Packages
	"context"
	"testing"
	"time"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestCardFormatting(t *testing.T) {
	assert.Equal(t, "4242424242424242", DigitsOnly("4242 4242-4242 4242"))
	assert.Equal(t, "4242 4242 4242 4242", GroupDigits("4242424242424242"))
	assert.Equal(t, "3782 8224 6310 005", GroupDigits("378282246310005"))
	assert.Equal(t, "", GroupDigits(""))
	assert.Equal(t, "4242", LastFour("4242 4242 4242 4242"))
	assert.Equal(t, "12", LastFour("12"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "12/27", FormatExpiry("1227"))
	assert.Equal(t, "12/27", FormatExpiry("12/27"))
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/", FormatExpiry("12"))
	assert.Equal(t, "12/27", FormatExpiry("122799"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Sarah Johnson", "john"))
	assert.False(t, Contains("Mike Davis", "smith"))
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))
	assert.NoError(t, Sleep(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
