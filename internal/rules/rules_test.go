package rules

import "testing"

func TestStreetNext(t *testing.T) {
	t.Parallel()

	order := []Street{PreFlop, Flop, Turn, River, Showdown}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Fatalf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
	if got := Showdown.Next(); got != Showdown {
		t.Fatalf("Showdown.Next() = %s, want Showdown", got)
	}
}

func TestStreetString(t *testing.T) {
	t.Parallel()

	want := map[Street]string{
		PreFlop:  "Pre-flop",
		Flop:     "Flop",
		Turn:     "Turn",
		River:    "River",
		Showdown: "Showdown",
	}
	for s, name := range want {
		if s.String() != name {
			t.Fatalf("Street(%d).String() = %q, want %q", s, s.String(), name)
		}
	}
}

func TestActionString(t *testing.T) {
	t.Parallel()

	want := map[Action]string{
		Fold:  "fold",
		Check: "check",
		Call:  "call",
		Bet:   "bet",
		Raise: "raise",
	}
	for a, name := range want {
		if a.String() != name {
			t.Fatalf("Action(%d).String() = %q, want %q", a, a.String(), name)
		}
	}
}

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	r := Default()
	if r.StartingChips != 1000 {
		t.Fatalf("StartingChips = %d, want 1000", r.StartingChips)
	}
	if r.HoleCards != 2 || r.FlopCards != 3 || r.TurnCards != 1 || r.RiverCards != 1 {
		t.Fatalf("unexpected deal counts: %+v", r)
	}
}
