package game

import "fmt"

type Status int

const (
	StatusGhoul Status = iota
	StatusImmune
	StatusTerror
	StatusThirst
	StatusDehydration
	StatusDrugged
	StatusAddict
	StatusInfection
	StatusDrunk
	StatusHungover
	StatusWound
	StatusHealed
	StatusTamerGuard
	StatusTamerGuardSteak

	statusCount
)

var statusNames = [statusCount]string{
	StatusGhoul:           "Ghoul",
	StatusImmune:          "Immune",
	StatusTerror:          "Terror",
	StatusThirst:          "Thirst",
	StatusDehydration:     "Dehydration",
	StatusDrugged:         "Drugged",
	StatusAddict:          "Addict",
	StatusInfection:       "Infection",
	StatusDrunk:           "Drunk",
	StatusHungover:        "Hungover",
	StatusWound:           "Wound",
	StatusHealed:          "Healed",
	StatusTamerGuard:      "Tamer Guard",
	StatusTamerGuardSteak: "Tamer Guard Steak",
}

func (s Status) String() string {
	if s < 0 || s >= statusCount {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

func AllStatuses() []Status {
	out := make([]Status, 0, statusCount)
	for s := Status(0); s < statusCount; s++ {
		out = append(out, s)
	}
	return out
}

var statusModifiers = [statusCount]StatModifier{
	StatusGhoul:           {Survival: 0.05},
	StatusImmune:          {Survival: 0.01},
	StatusTerror:          {Survival: -0.05, Defense: -30},
	StatusThirst:          {Defense: -5},
	StatusDehydration:     {Survival: -0.03, Defense: -10},
	StatusDrugged:         {Defense: 10},
	StatusAddict:          {Survival: -0.06, Defense: 10},
	StatusInfection:       {Survival: -0.1, Defense: -15},
	StatusDrunk:           {Survival: 0.02, Defense: 15},
	StatusHungover:        {Survival: -0.06, Defense: -15},
	StatusWound:           {Survival: -0.1, Defense: -15},
	StatusHealed:          {Survival: -0.05, Defense: -15},
	StatusTamerGuard:      {Survival: 0.02, Defense: 10},
	StatusTamerGuardSteak: {Survival: 0.03, Defense: 15},
}

// StatusModifier looks s up in the status table. Statuses outside the
// table report false and must be ignored by callers.
func StatusModifier(s Status) (StatModifier, bool) {
	if s < 0 || s >= statusCount {
		return StatModifier{}, false
	}
	return statusModifiers[s], true
}
