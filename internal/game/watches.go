package game

// PreviousWatchesModifier is the fatigue malus after count previous watches.
func PreviousWatchesModifier(count int, l SuperLevel) StatModifier {
	return StatModifier{Survival: -boundedAt(SurvivalMalusCurve(l), count)}
}
