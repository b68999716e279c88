package game

import "testing"

func TestApplyStatModifierTreatsMissingFieldsAsZero(t *testing.T) {
	base := CitizenStats{Survival: 0.5, Defense: 10, Wound: 0.2, Terror: 0.3}
	got := ApplyStatModifier(base, StatModifier{Defense: 5})
	want := CitizenStats{Survival: 0.5, Defense: 15, Wound: 0.2, Terror: 0.3}
	if got != want {
		t.Fatalf("ApplyStatModifier() = %+v, want %+v", got, want)
	}
}

func TestApplyStatMultiplierTreatsMissingFieldsAsOne(t *testing.T) {
	base := CitizenStats{Survival: 0.5, Defense: 10, Wound: 0.2, Terror: 0.3}
	got := ApplyStatMultiplier(base, StatMultiplier{Defense: Times(2), Terror: Times(0)})
	want := CitizenStats{Survival: 0.5, Defense: 20, Wound: 0.2, Terror: 0}
	if got != want {
		t.Fatalf("ApplyStatMultiplier() = %+v, want %+v", got, want)
	}
	if got := ApplyStatMultiplier(base, StatMultiplier{}); got != base {
		t.Fatalf("empty multiplier changed stats: %+v", got)
	}
}

func TestFactor(t *testing.T) {
	var unset Factor
	if unset.IsSet() || unset.Value() != 1 {
		t.Fatalf("zero Factor should be unset identity, got set=%v value=%v", unset.IsSet(), unset.Value())
	}
	zero := Times(0)
	if !zero.IsSet() || zero.Value() != 0 {
		t.Fatalf("Times(0) should be set to 0, got set=%v value=%v", zero.IsSet(), zero.Value())
	}
}

func TestStatModifierAdd(t *testing.T) {
	got := StatModifier{Survival: 0.05}.Add(StatModifier{Survival: -0.04, Terror: 0.1})
	if got.Terror != 0.1 || got.Defense != 0 || got.Wound != 0 {
		t.Fatalf("unexpected sum: %+v", got)
	}
	if !(StatModifier{}).IsZero() {
		t.Fatalf("expected empty modifier to be zero")
	}
}
