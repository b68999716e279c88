package game

import "slices"

const bathSurvivalModifier = 0.01

// PreviousBathsModifier replays the watch history day by day. A bath taken
// while some fatigue malus is pending cancels part of it and is rewarded
// with a flat survival bonus.
func PreviousBathsModifier(bathDays, watchDays []int, curve []float64) StatModifier {
	return StatModifier{Survival: float64(EffectiveBaths(bathDays, watchDays, curve)) * bathSurvivalModifier}
}

// EffectiveBaths counts the baths that reduced a pending malus.
func EffectiveBaths(bathDays, watchDays []int, curve []float64) int {
	lastDay := 0
	if len(bathDays) > 0 {
		lastDay = max(lastDay, slices.Max(bathDays))
	}
	if len(watchDays) > 0 {
		lastDay = max(lastDay, slices.Max(watchDays))
	}

	baths := daySet(bathDays)
	watches := daySet(watchDays)

	malus := 0.0
	malusIndex := 0
	effective := 0
	for day := 1; day <= lastDay; day++ {
		if baths[day] && malus > 0 {
			malus = max(0, malus-bathSurvivalModifier)
			effective++
		}
		if watches[day] {
			malus -= boundedAt(curve, malusIndex)
			malusIndex++
			malus += boundedAt(curve, malusIndex)
		}
	}
	return effective
}

func ShowerActionModifier(tookShower bool) StatModifier {
	if !tookShower {
		return StatModifier{}
	}
	return StatModifier{Terror: -0.025, Wound: -0.025}
}

func daySet(days []int) map[int]bool {
	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}
