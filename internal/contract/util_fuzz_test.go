package contract

import "testing"

// FuzzParseScoreAssignment fuzzes the --score flag parser with random input.
func FuzzParseScoreAssignment(f *testing.F) {
	seeds := []string{"sharpness=80", "a=", "=1", "noise=1e308", "x=NaN", "", "구도=55.5", "a=b=c"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		name, _, err := ParseScoreAssignment(s)
		if err == nil && name == "" {
			t.Errorf("accepted %q with an empty name", s)
		}
	})
}

// FuzzParseFloatList fuzzes the grid level parser.
func FuzzParseFloatList(f *testing.F) {
	for _, seed := range []string{"20,40,60,80,100", "", ",,,", "1e3, -4", "a,b"} {
		f.Add(seed)
	}

	f.Fuzz(func(_ *testing.T, s string) {
		_, _ = ParseFloatList(s)
	})
}
