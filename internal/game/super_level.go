package game

import "fmt"

type SuperLevel int

const (
	SuperLevelNone SuperLevel = iota
	SuperLevelBeginner
	SuperLevelApprentice
	SuperLevelExpert
	SuperLevelMaster

	superLevelCount
)

func (l SuperLevel) String() string {
	switch l {
	case SuperLevelNone:
		return "None"
	case SuperLevelBeginner:
		return "Beginner"
	case SuperLevelApprentice:
		return "Apprentice"
	case SuperLevelExpert:
		return "Expert"
	case SuperLevelMaster:
		return "Master"
	default:
		return fmt.Sprintf("SuperLevel(%d)", int(l))
	}
}

func (l SuperLevel) Valid() bool {
	return l >= SuperLevelNone && l < superLevelCount
}

func AllSuperLevels() []SuperLevel {
	out := make([]SuperLevel, 0, superLevelCount)
	for l := SuperLevelNone; l < superLevelCount; l++ {
		out = append(out, l)
	}
	return out
}

var superLevelModifiers = [superLevelCount]StatModifier{
	SuperLevelNone:       {},
	SuperLevelBeginner:   {Defense: 10},
	SuperLevelApprentice: {Defense: 10},
	SuperLevelExpert:     {Defense: 10},
	SuperLevelMaster:     {Defense: 10, Survival: 0.02},
}

func SuperLevelModifier(l SuperLevel) StatModifier {
	if !l.Valid() {
		return StatModifier{}
	}
	return superLevelModifiers[l]
}

var (
	malusBaseCurve     = []float64{0, 0.01, 0.04, 0.09, 0.2, 0.3, 0.42, 0.56, 0.72, 0.9}
	malusProGuardCurve = []float64{0, 0.01, 0.04, 0.09, 0.15, 0.2, 0.3, 0.4, 0.5, 0.6, 0.75, 0.9}
)

// SurvivalMalusCurve returns the survival malus by number of previous
// watches. Expert and Master watchers use the pro-guard curve.
func SurvivalMalusCurve(l SuperLevel) []float64 {
	switch l {
	case SuperLevelExpert, SuperLevelMaster:
		return append([]float64(nil), malusProGuardCurve...)
	default:
		return append([]float64(nil), malusBaseCurve...)
	}
}
