package version

import (
	"slices"
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2.2", "2.10", -1},
		{"2.10", "2.2", 1},
		{"2.2.0", "2.2", 0},
		{"2.2", "2.2.0.0", 0},
		{"2.3", "2.2.99", 1},
		{"2.2", "2.2.1", -1},
		{"8.5", "2.2", 1},
		{"1.0", "1.0", 0},
		{"1.0.a", "1.0.1", 1},
		{"1.0.b", "1.0.a", 1},
		{"", "", 0},
		{"", "1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	versions := []string{"1", "1.0", "1.0.1", "1.2", "1.10", "2.2", "2.2.99", "2.3", "1.0.a"}
	for _, a := range versions {
		for _, b := range versions {
			if sign(Compare(a, b)) != -sign(Compare(b, a)) {
				t.Errorf("Compare(%q, %q) and Compare(%q, %q) disagree", a, b, b, a)
			}
		}
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		v, baseline string
		want        bool
	}{
		{"2.2", "2.2", true},
		{"2.2.0", "2.2", true},
		{"2.1", "2.2", false},
		{"2.10", "2.2", true},
		{"8.5", "2.2", true},
	}

	for _, tt := range tests {
		if got := AtLeast(tt.v, tt.baseline); got != tt.want {
			t.Errorf("AtLeast(%q, %q) = %v, want %v", tt.v, tt.baseline, got, tt.want)
		}
	}
}

func TestSegments(t *testing.T) {
	segs := Segments("1..2-rc1")
	if len(segs) != 3 {
		t.Fatalf("Segments() len = %d, want 3: %+v", len(segs), segs)
	}
	if !segs[0].Numeric || segs[0].Number != 1 {
		t.Errorf("segs[0] = %+v, want numeric 1", segs[0])
	}
	if segs[2].Numeric || segs[2].Text != "rc1" {
		t.Errorf("segs[2] = %+v, want text rc1", segs[2])
	}
}

func TestCompareQualified(t *testing.T) {
	ordered := []string{
		"1.0-alpha1",
		"1.0-alpha2",
		"1.0-beta1",
		"1.0-M1",
		"1.0-rc1",
		"1.0-SNAPSHOT",
		"1.0",
		"1.0-sp1",
		"1.0.1",
		"1.1",
		"1.10",
	}

	for i := 0; i < len(ordered)-1; i++ {
		a, b := ordered[i], ordered[i+1]
		if CompareQualified(a, b) >= 0 {
			t.Errorf("CompareQualified(%q, %q) >= 0, want < 0", a, b)
		}
		if CompareQualified(b, a) <= 0 {
			t.Errorf("CompareQualified(%q, %q) <= 0, want > 0", b, a)
		}
	}

	equal := [][2]string{
		{"1.0", "1.0.0"},
		{"1.0-final", "1.0"},
		{"1.0-RC1", "1.0-rc1"},
	}
	for _, pair := range equal {
		if c := CompareQualified(pair[0], pair[1]); c != 0 {
			t.Errorf("CompareQualified(%q, %q) = %d, want 0", pair[0], pair[1], c)
		}
	}
}

func TestSortDescending(t *testing.T) {
	got := []string{"1.0", "2.0-rc1", "1.10", "1.9", "2.0-SNAPSHOT"}
	SortDescending(got)

	want := []string{"2.0-SNAPSHOT", "2.0-rc1", "1.10", "1.9", "1.0"}
	if !slices.Equal(got, want) {
		t.Errorf("SortDescending() = %v, want %v", got, want)
	}
}

func TestQualifiers(t *testing.T) {
	tests := []struct {
		v    string
		want []string
	}{
		{"1.0", nil},
		{"1.0-RC2", []string{"rc"}},
		{"2.0.0-M1", []string{"m"}},
		{"33.0.0-jre", []string{"jre"}},
		{"1.0-beta-2-SNAPSHOT", []string{"beta", "snapshot"}},
	}
	for _, tt := range tests {
		if got := Qualifiers(tt.v); !slices.Equal(got, tt.want) {
			t.Errorf("Qualifiers(%q) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
