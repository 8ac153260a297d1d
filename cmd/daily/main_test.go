package main

import (
	"reflect"
	"testing"
)

func TestRewriteMonthShortcutArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"daily"},
			want: []string{"daily"},
		},
		{
			name: "month first token",
			in:   []string{"daily", "2026-10"},
			want: []string{"daily", "calendar", "2026-10"},
		},
		{
			name: "month after value flag",
			in:   []string{"daily", "--format", "text", "2026-10"},
			want: []string{"daily", "--format", "text", "calendar", "2026-10"},
		},
		{
			name: "month after equals flag",
			in:   []string{"daily", "--format=text", "2026-10"},
			want: []string{"daily", "--format=text", "calendar", "2026-10"},
		},
		{
			name: "month after bool flag",
			in:   []string{"daily", "--pretty", "2026-10"},
			want: []string{"daily", "--pretty", "calendar", "2026-10"},
		},
		{
			name: "month after double dash",
			in:   []string{"daily", "--", "2026-10"},
			want: []string{"daily", "--", "calendar", "2026-10"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"daily", "calendar", "2026-10"},
			want: []string{"daily", "calendar", "2026-10"},
		},
		{
			name: "invalid month not rewritten",
			in:   []string{"daily", "2026-13"},
			want: []string{"daily", "2026-13"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"daily", "wat"},
			want: []string{"daily", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteMonthShortcutArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
