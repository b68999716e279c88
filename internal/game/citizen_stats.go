package game

// Calculator runs the watch pipeline against an item catalog.
type Calculator struct {
	Items ItemCatalog
}

func NewCalculator(items ItemCatalog) Calculator {
	if items == nil {
		items = DefaultItemCatalog()
	}
	return Calculator{Items: items}
}

var defaultCalculator = NewCalculator(nil)

// ComputeCitizenStats runs the watch pipeline with the default item catalog.
func ComputeCitizenStats(town TownContext, citizen CitizenContext) CitizenResult {
	return defaultCalculator.CitizenStats(town, citizen)
}

// CitizenStats computes the watch stats of citizen in town. The order of the
// steps is significant: the base terror and wound derive from the survival
// reached after job and fatigue, and the base snapshot is taken before
// items, statuses, buildings and shower.
func (c Calculator) CitizenStats(town TownContext, citizen CitizenContext) CitizenResult {
	stats := CitizenBaseStats

	stats = ApplyStatModifier(stats, JobModifier(citizen.Job))
	stats = ApplyStatModifier(stats, PreviousWatchesModifier(len(citizen.PreviousWatchDays), citizen.SLevel))
	stats = withBaseTerrorAndWound(stats, town.Pandemonium)
	stats = ApplyStatModifier(stats, PreviousBathsModifier(
		citizen.PreviousBathDays,
		citizen.PreviousWatchDays,
		SurvivalMalusCurve(citizen.SLevel),
	))

	base := stats

	for _, item := range citizen.Items {
		stats = ApplyStatModifier(stats, c.Items.Modifier(item, town))
	}
	for _, status := range citizen.Statuses {
		if m, ok := StatusModifier(status); ok {
			stats = ApplyStatModifier(stats, m)
		}
	}
	stats = ApplyStatModifier(stats, BuildingsModifier(town))
	stats = ApplyStatModifier(stats, ShowerActionModifier(citizen.TookShowerToday))

	stats = ApplyStatModifier(stats, PandemoniumModifier(town, stats.Survival))
	base = ApplyStatModifier(base, PandemoniumModifier(town, base.Survival))

	stats = ApplyStatModifier(stats, SuperLevelModifier(citizen.SLevel))
	base = ApplyStatModifier(base, SuperLevelModifier(citizen.SLevel))

	stats = ApplyStatMultiplier(stats, SmallTrebuchetMultiplier(town))

	stats.Survival = RoundTo(stats.Survival, 4)
	return CitizenResult{CitizenStats: stats, BaseSurvival: base.Survival}
}
