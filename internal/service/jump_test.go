package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJumpServiceMatch(t *testing.T) {
	titles := []string{"Welcome", "Architecture overview", "Gesture tracking", "Geometry", "Questions"}
	var svc JumpService

	cases := []struct {
		query string
		want  int
		ok    bool
	}{
		{query: "geometry", want: 3, ok: true},
		{query: "ge", want: 2, ok: true},
		{query: "overview", want: 1, ok: true},
		{query: "questoins", want: 4, ok: true},
		{query: "gestrue", want: 2, ok: true},
		{query: "zzzz", want: -1, ok: false},
		{query: "  ", want: -1, ok: false},
	}
	for _, tc := range cases {
		got, ok := svc.Match(tc.query, titles)
		require.Equal(t, tc.ok, ok, tc.query)
		require.Equal(t, tc.want, got, tc.query)
	}
}

func TestJumpServiceMaxDistance(t *testing.T) {
	titles := []string{"alpha", "beta"}
	_, ok := JumpService{MaxDistance: 1}.Match("bxtx", titles)
	require.False(t, ok)
	got, ok := JumpService{MaxDistance: 2}.Match("bxtx", titles)
	require.True(t, ok)
	require.Equal(t, 1, got)
}
