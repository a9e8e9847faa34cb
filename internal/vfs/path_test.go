package vfs

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		current, target, want string
	}{
		{"~/about", "..", "~"},
		{"~/about/deep", "..", "~/about"},
		{"~", "..", ""},
		{"~/projects", "~", "~"},
		{"~/projects", "~/contact", "~/contact"},
		{"~", "./foo", "~foo"},
		{"~/about", "./x", "~/aboutx"},
		{"~/about", ".", "~/about"},
		{"~", "projects", "~/projects"},
		{"~", "../about", "~/../about"},
		{"~", "a/b", "~/a/b"},
	}

	for _, tt := range tests {
		got := Resolve(tt.current, tt.target)
		if got != tt.want {
			t.Errorf("Resolve(%q, %q) = %q, want %q", tt.current, tt.target, got, tt.want)
		}
	}
}
