package main

import (
	"reflect"
	"testing"
)

func TestRewriteQuickCaptureArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"focusday"},
			want: []string{"focusday"},
		},
		{
			name: "quick capture first token",
			in:   []string{"focusday", "+", "buy", "milk"},
			want: []string{"focusday", "inbox", "add", "buy", "milk"},
		},
		{
			name: "quick capture after value flag",
			in:   []string{"focusday", "--dir", "./tmp-test-ws", "+", "buy", "milk"},
			want: []string{"focusday", "--dir", "./tmp-test-ws", "inbox", "add", "buy", "milk"},
		},
		{
			name: "quick capture after equals flag",
			in:   []string{"focusday", "--dir=./tmp-test-ws", "+", "buy", "milk"},
			want: []string{"focusday", "--dir=./tmp-test-ws", "inbox", "add", "buy", "milk"},
		},
		{
			name: "quick capture after bool flag",
			in:   []string{"focusday", "--pretty", "+", "call", "bank"},
			want: []string{"focusday", "--pretty", "inbox", "add", "call", "bank"},
		},
		{
			name: "quick capture after double dash",
			in:   []string{"focusday", "--dir", "./tmp-test-ws", "--", "+", "buy", "milk"},
			want: []string{"focusday", "--dir", "./tmp-test-ws", "--", "inbox", "add", "buy", "milk"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"focusday", "inbox", "add", "buy", "milk"},
			want: []string{"focusday", "inbox", "add", "buy", "milk"},
		},
		{
			name: "plain text without marker not rewritten",
			in:   []string{"focusday", "status"},
			want: []string{"focusday", "status"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteQuickCaptureArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteQuickCaptureArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
