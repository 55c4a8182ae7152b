package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 30, 42, 0, time.UTC)
	number := GenerateOrderNumber(now)

	require.Len(t, number, 21)
	assert.Equal(t, "ORD20240605103042", number[:17])
	assert.Regexp(t, `^ORD\d{18}$`, number)
}
