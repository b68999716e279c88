package game

// BaseTerrorAndWound derives the base terror and wound chances from the
// survival chance reached so far. Pandemonium towns use steeper ratios.
func BaseTerrorAndWound(survival float64, pandemonium bool) (terror, wound float64) {
	woundRatio, terrorRatio := 0.2, 0.1
	if pandemonium {
		woundRatio, terrorRatio = 0.3, 0.2
	}
	wound = RoundTo(clampFloat(survival-survival*woundRatio, 0, 1), 2)
	terror = RoundTo(clampFloat(survival-survival*terrorRatio, 0, 1), 2)
	return terror, wound
}

func withBaseTerrorAndWound(stats CitizenStats, pandemonium bool) CitizenStats {
	stats.Terror, stats.Wound = BaseTerrorAndWound(stats.Survival, pandemonium)
	return stats
}
