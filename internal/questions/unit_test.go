package questions

import "testing"

func TestNormalizeUnit(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Unit 07", "7"},
		{"7", "7"},
		{"unit_id:7", "7"},
		{"07", "7"},
		{"Unit 12 review", "12"},
		{"algebra basics", ""},
		{"", ""},
		{"  UNIT 3  ", "3"},
	}

	for _, c := range cases {
		if got := NormalizeUnit(c.in); got != c.want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeUnit_Idempotent(t *testing.T) {
	for _, in := range []string{"Unit 07", "3", "no digits"} {
		once := NormalizeUnit(in)
		if twice := NormalizeUnit(once); twice != once {
			t.Errorf("NormalizeUnit not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestRowUnitNorm_FallsBackToRawColumns(t *testing.T) {
	row := Row{Raw: map[string]string{"unit": "Unit 4"}}
	if got := row.UnitNorm(); got != "4" {
		t.Errorf("UnitNorm() = %q, want %q", got, "4")
	}

	row = Row{UnitID: "Unit 2", Raw: map[string]string{"unit": "Unit 4"}}
	if got := row.UnitNorm(); got != "2" {
		t.Errorf("UnitNorm() = %q, want %q (canonical field wins)", got, "2")
	}
}
