package charges

import (
	"encoding/json"
	"testing"
)

func TestArray_UsesOverridesAndFallback(t *testing.T) {
	s := New()
	s.Set(1, 100)
	s.Set(3, 200)

	got := s.Array(4, 10)
	want := []float64{100, 10, 200, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Array(4, 10) = %v, want %v", got, want)
		}
	}
}

func TestArray_SurvivesMonthCountChanges(t *testing.T) {
	s := New()
	s.Fill(24, 50)
	s.Set(18, 999)

	short := s.Array(12, 0)
	if len(short) != 12 {
		t.Fatalf("len = %d, want 12", len(short))
	}
	if _, ok := s.Get(18); !ok {
		t.Fatal("month 18 override lost after shrinking")
	}

	long := s.Array(24, 0)
	if long[17] != 999 {
		t.Fatalf("month 18 = %v, want 999", long[17])
	}
}

func TestArray_NonPositiveMonths(t *testing.T) {
	if got := New().Array(0, 5); len(got) != 0 {
		t.Fatalf("Array(0) = %v, want empty", got)
	}
}

func TestSyncAndClear(t *testing.T) {
	s := New()
	s.Sync([]float64{1, 2, 3})
	if v, _ := s.Get(3); v != 3 {
		t.Fatalf("Get(3) = %v, want 3", v)
	}
	if months := s.Months(); len(months) != 3 || months[0] != 1 || months[2] != 3 {
		t.Fatalf("Months() = %v", months)
	}

	c := s.Clone()
	s.Clear()
	if len(s) != 0 {
		t.Fatalf("len after Clear = %d", len(s))
	}
	if len(c) != 3 {
		t.Fatal("Clone shares state with the original")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := New()
	s.Set(1, 100)
	s.Set(12, 42.5)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"1":100,"12":42.5}` {
		t.Fatalf("Marshal = %s", data)
	}

	var back Storage
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if v, _ := back.Get(12); v != 42.5 {
		t.Fatalf("Get(12) = %v, want 42.5", v)
	}
}

func TestUnmarshal_RejectsBadKeys(t *testing.T) {
	var s Storage
	if err := json.Unmarshal([]byte(`{"zero":1}`), &s); err == nil {
		t.Fatal("expected error for non-numeric key")
	}
	if err := json.Unmarshal([]byte(`{"0":1}`), &s); err == nil {
		t.Fatal("expected error for month 0")
	}
}
