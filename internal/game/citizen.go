package game

// CitizenBaseStats is the starting point of every watcher.
var CitizenBaseStats = CitizenStats{
	Survival: 0.92,
	Defense:  10,
	Wound:    0,
	Terror:   0,
}

// CitizenContext is everything the watch computation needs about one
// citizen on the computed day. Dead citizens carry no statuses, no items
// and no shower.
type CitizenContext struct {
	Name   string
	Tag    string
	Job    Job
	SLevel SuperLevel
	Dead   bool

	PreviousWatchDays []int
	PreviousBathDays  []int
	Statuses          []Status
	Items             []Item
	TookShowerToday   bool
}

// CitizenResult is the output of the watch pipeline. BaseSurvival ignores
// items, statuses, buildings and the shower.
type CitizenResult struct {
	CitizenStats
	BaseSurvival float64 `json:"base_survival"`
}
