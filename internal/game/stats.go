package game

// CitizenStats is the stat vector threaded through the watch pipeline.
// Survival is a chance, the other fields are accumulators.
type CitizenStats struct {
	Survival float64 `json:"survival"`
	Defense  float64 `json:"defense"`
	Wound    float64 `json:"wound"`
	Terror   float64 `json:"terror"`
}

// StatModifier is added field by field. A field left at zero changes nothing.
type StatModifier struct {
	Survival float64
	Defense  float64
	Wound    float64
	Terror   float64
}

// Factor is an optional multiplicative factor. The zero Factor leaves the
// stat untouched.
type Factor struct {
	value float64
	set   bool
}

func Times(v float64) Factor {
	return Factor{value: v, set: true}
}

func (f Factor) IsSet() bool {
	return f.set
}

func (f Factor) Value() float64 {
	if !f.set {
		return 1
	}
	return f.value
}

func (f Factor) apply(v float64) float64 {
	if !f.set {
		return v
	}
	return v * f.value
}

type StatMultiplier struct {
	Survival Factor
	Defense  Factor
	Wound    Factor
	Terror   Factor
}

func ApplyStatModifier(base CitizenStats, m StatModifier) CitizenStats {
	return CitizenStats{
		Survival: base.Survival + m.Survival,
		Defense:  base.Defense + m.Defense,
		Wound:    base.Wound + m.Wound,
		Terror:   base.Terror + m.Terror,
	}
}

func ApplyStatMultiplier(base CitizenStats, m StatMultiplier) CitizenStats {
	return CitizenStats{
		Survival: m.Survival.apply(base.Survival),
		Defense:  m.Defense.apply(base.Defense),
		Wound:    m.Wound.apply(base.Wound),
		Terror:   m.Terror.apply(base.Terror),
	}
}

// Add sums two modifiers.
func (m StatModifier) Add(o StatModifier) StatModifier {
	return StatModifier{
		Survival: m.Survival + o.Survival,
		Defense:  m.Defense + o.Defense,
		Wound:    m.Wound + o.Wound,
		Terror:   m.Terror + o.Terror,
	}
}

func (m StatModifier) IsZero() bool {
	return m == StatModifier{}
}
