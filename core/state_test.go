package core

import "testing"

func TestDisplayStateString(t *testing.T) {
	tests := []struct {
		state DisplayState
		want  string
	}{
		{StateClosed, "Closed"},
		{StateAnimatingHorizontal, "AnimatingHorizontal"},
		{StateAnimatingVertical, "AnimatingVertical"},
		{StateHorizontalWithNumbers, "HorizontalWithNumbers"},
		{StateVerticalWithNumbers, "VerticalWithNumbers"},
		{StateOpened, "Opened"},
		{DisplayState(42), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}

func TestDisplayStatePredicates(t *testing.T) {
	for _, s := range []DisplayState{StateAnimatingHorizontal, StateAnimatingVertical} {
		if !s.IsAnimating() {
			t.Errorf("Expected %s to be animating", s)
		}
		if s.ShowsNumbers() {
			t.Errorf("Expected %s to hide numbers", s)
		}
	}
	for _, s := range []DisplayState{StateHorizontalWithNumbers, StateVerticalWithNumbers} {
		if !s.ShowsNumbers() {
			t.Errorf("Expected %s to show numbers", s)
		}
	}
	if StateClosed.IsAnimating() || StateOpened.IsAnimating() {
		t.Error("Closed and Opened must not report animating")
	}
}

func TestFlapVariantFor(t *testing.T) {
	for n := 1; n <= 8; n++ {
		if got := FlapVariantFor(n); int(got) != n {
			t.Errorf("Expected variant %d, got %d", n, got)
		}
	}
	for _, n := range []int{-1, 0, 9} {
		if got := FlapVariantFor(n); got != 0 {
			t.Errorf("Expected no variant for %d, got %d", n, got)
		}
	}
}
