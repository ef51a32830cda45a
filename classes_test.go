package linebreak

import "testing"

func TestDefaultResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  LineBreakClass
		gc   GeneralCategory
		want LineBreakClass
	}{
		{"ambiguous to AL", AI, "", AL},
		{"surrogate to AL", SG, "", AL},
		{"unknown to AL", XX, "", AL},
		{"complex-context nonspacing to CM", SA, GCMn, CM},
		{"complex-context spacing to CM", SA, GCMc, CM},
		{"complex-context letter to AL", SA, "Lo", AL},
		{"conditional japanese to NS", CJ, "", NS},
		{"ordinary class passes through", AL, "Ll", AL},
		{"numeric passes through", NU, "Nd", NU},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultResolution(tt.raw, tt.gc); got != tt.want {
				t.Errorf("DefaultResolution(%s, %s) = %s, want %s", tt.raw, tt.gc, got, tt.want)
			}
		})
	}
}
