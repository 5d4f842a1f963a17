package motion

import "testing"

func TestMarker_Layout(t *testing.T) {
	tests := []struct {
		m    Marker
		idx  int
		file string
		name string
	}{
		{Chest, 0, "marker_1.txt", "chest"},
		{Stomach, 1, "marker_2.txt", "stomach"},
		{LeftKnee, 2, "marker_3.txt", "left_knee"},
		{RightKnee, 3, "marker_4.txt", "right_knee"},
		{LeftFoot, 4, "marker_5.txt", "left_foot"},
		{RightFoot, 5, "marker_6.txt", "right_foot"},
	}

	for _, tt := range tests {
		if int(tt.m) != tt.idx {
			t.Errorf("%s index = %d, want %d", tt.name, int(tt.m), tt.idx)
		}
		if tt.m.FileName() != tt.file {
			t.Errorf("%s file = %s, want %s", tt.name, tt.m.FileName(), tt.file)
		}
		if tt.m.String() != tt.name {
			t.Errorf("String() = %s, want %s", tt.m.String(), tt.name)
		}
	}

	if len(Markers()) != NumMarkers {
		t.Errorf("Markers() has %d entries", len(Markers()))
	}
	if Marker(7).Valid() {
		t.Error("Marker(7) should be invalid")
	}
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		in   string
		want Marker
		ok   bool
	}{
		{"chest", Chest, true},
		{"LeftKnee", LeftKnee, true},
		{"right-foot", RightFoot, true},
		{"left_foot", LeftFoot, true},
		{"elbow", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseMarker(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseMarker(%q) err = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseMarker(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseConditionAndJumpType(t *testing.T) {
	if c, err := ParseCondition("bad"); err != nil || c != Bad {
		t.Errorf("ParseCondition(bad) = %v, %v", c, err)
	}
	if _, err := ParseCondition("ugly"); err == nil {
		t.Error("expected error for unknown condition")
	}
	if j, err := ParseJumpType("2d"); err != nil || j != TwoD {
		t.Errorf("ParseJumpType(2d) = %v, %v", j, err)
	}
	if _, err := ParseJumpType("3d"); err == nil {
		t.Error("expected error for unknown jump type")
	}
	if k := (Key{Good, TwoD}); k.String() != "good/2d" {
		t.Errorf("Key.String() = %s", k.String())
	}
}

func TestParseAxis(t *testing.T) {
	if a, err := ParseAxis("y"); err != nil || a != Y {
		t.Errorf("ParseAxis(y) = %v, %v", a, err)
	}
	if a, err := ParseAxis("X"); err != nil || a != X {
		t.Errorf("ParseAxis(X) = %v, %v", a, err)
	}
	if _, err := ParseAxis("z"); err == nil {
		t.Error("expected error for unknown axis")
	}
}
