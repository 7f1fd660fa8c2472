package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTitleCase(t *testing.T) {
	require.Equal(t, "Travel Log", titleCase("travel log"))
	require.Equal(t, "City Breaks", titleCase("CITY BREAKS"))
	require.Equal(t, "A Walk In The Hills", titleCase("a walk in the hills"))
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Jane", capitalize("jane"))
	require.Equal(t, "Doe", capitalize("DOE"))
	require.Equal(t, "", capitalize(""))
	require.Equal(t, "Éloise", capitalize("éloise"))
}

func TestTruncateSecond(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	stamp := time.Date(2024, 3, 5, 14, 30, 7, 123456789, loc)

	got := truncateSecond(stamp)
	require.Equal(t, time.UTC, got.Location())
	require.Zero(t, got.Nanosecond())
	require.Equal(t, 12, got.Hour())
	require.Equal(t, 7, got.Second())
}
