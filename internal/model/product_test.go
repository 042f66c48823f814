package model

import "testing"

func TestValidColor(t *testing.T) {
	for _, c := range Colors {
		if !ValidColor(c) {
			t.Errorf("ValidColor(%q) = false, want true", c)
		}
	}

	for _, c := range []string{"", "Pink", "light pink", "Plain white"} {
		if ValidColor(c) {
			t.Errorf("ValidColor(%q) = true, want false", c)
		}
	}
}
