package game

import "fmt"

// Building identifies a construction site or upgrade that matters during
// the watch.
type Building int

const (
	BuildingGasGun Building = iota
	BuildingGuardRoom
	BuildingSmallTrebuchet
	BuildingAutomaticSprinklers
	BuildingPetShop
	BuildingFilthyGutters
	BuildingSwedishWorkshop
	BuildingManualGrinder
	BuildingBattlementsLevel3
	BuildingDumpLevel1
	BuildingDumpLevel2

	buildingCount
)

var buildingNames = [buildingCount]string{
	BuildingGasGun:              "Gas Gun",
	BuildingGuardRoom:           "Guard Room",
	BuildingSmallTrebuchet:      "Small Trebuchet",
	BuildingAutomaticSprinklers: "Automatic Sprinklers",
	BuildingPetShop:             "Pet Shop",
	BuildingFilthyGutters:       "Filthy Gutters",
	BuildingSwedishWorkshop:     "Swedish Workshop",
	BuildingManualGrinder:       "Manual Grinder",
	BuildingBattlementsLevel3:   "Battlements Level 3",
	BuildingDumpLevel1:          "Dump Level 1",
	BuildingDumpLevel2:          "Dump Level 2",
}

func (b Building) String() string {
	if b < 0 || b >= buildingCount {
		return fmt.Sprintf("Building(%d)", int(b))
	}
	return buildingNames[b]
}

func AllBuildings() []Building {
	out := make([]Building, 0, buildingCount)
	for b := Building(0); b < buildingCount; b++ {
		out = append(out, b)
	}
	return out
}

// TownContext is the state of the town on the day being computed.
type TownContext struct {
	Pandemonium                 bool
	GasGunBuilt                 bool
	GuardRoomBuilt              bool
	SmallTrebuchetBuilt         bool
	AutomaticSprinklersBuilt    bool
	PetShopBuilt                bool
	FilthyGuttersBuilt          bool
	SwedishWorkshopBuilt        bool
	ManualGrinderBuilt          bool
	BattlementsUpgradedToLevel3 bool
	DumpUpgradedToLevel1        bool
	DumpUpgradedToLevel2        bool

	// Build days are informational; the watch pipeline does not read them.
	PoolBuildDay   *int
	ShowerBuildDay *int
}

// Has reports whether b is built in the town.
func (t TownContext) Has(b Building) bool {
	switch b {
	case BuildingGasGun:
		return t.GasGunBuilt
	case BuildingGuardRoom:
		return t.GuardRoomBuilt
	case BuildingSmallTrebuchet:
		return t.SmallTrebuchetBuilt
	case BuildingAutomaticSprinklers:
		return t.AutomaticSprinklersBuilt
	case BuildingPetShop:
		return t.PetShopBuilt
	case BuildingFilthyGutters:
		return t.FilthyGuttersBuilt
	case BuildingSwedishWorkshop:
		return t.SwedishWorkshopBuilt
	case BuildingManualGrinder:
		return t.ManualGrinderBuilt
	case BuildingBattlementsLevel3:
		return t.BattlementsUpgradedToLevel3
	case BuildingDumpLevel1:
		return t.DumpUpgradedToLevel1
	case BuildingDumpLevel2:
		return t.DumpUpgradedToLevel2
	default:
		return false
	}
}

// With returns a copy of the town with b built.
func (t TownContext) With(b Building) TownContext {
	switch b {
	case BuildingGasGun:
		t.GasGunBuilt = true
	case BuildingGuardRoom:
		t.GuardRoomBuilt = true
	case BuildingSmallTrebuchet:
		t.SmallTrebuchetBuilt = true
	case BuildingAutomaticSprinklers:
		t.AutomaticSprinklersBuilt = true
	case BuildingPetShop:
		t.PetShopBuilt = true
	case BuildingFilthyGutters:
		t.FilthyGuttersBuilt = true
	case BuildingSwedishWorkshop:
		t.SwedishWorkshopBuilt = true
	case BuildingManualGrinder:
		t.ManualGrinderBuilt = true
	case BuildingBattlementsLevel3:
		t.BattlementsUpgradedToLevel3 = true
	case BuildingDumpLevel1:
		t.DumpUpgradedToLevel1 = true
	case BuildingDumpLevel2:
		t.DumpUpgradedToLevel2 = true
	}
	return t
}

func BuildingsModifier(t TownContext) StatModifier {
	var total StatModifier
	if t.GasGunBuilt {
		total = total.Add(StatModifier{Terror: 0.1})
	}
	if t.GuardRoomBuilt {
		total = total.Add(StatModifier{Survival: 0.05})
	}
	if t.BattlementsUpgradedToLevel3 {
		total = total.Add(StatModifier{Survival: 0.01})
	}
	if t.AutomaticSprinklersBuilt {
		total = total.Add(StatModifier{Survival: -0.04})
	}
	return total
}

// PandemoniumModifier doubles the distance below a full survival chance.
// It is not a clamp.
func PandemoniumModifier(t TownContext, survival float64) StatModifier {
	if !t.Pandemonium || survival >= 1 {
		return StatModifier{}
	}
	return StatModifier{Survival: survival - 1}
}

func SmallTrebuchetMultiplier(t TownContext) StatMultiplier {
	if !t.SmallTrebuchetBuilt {
		return StatMultiplier{}
	}
	return StatMultiplier{Terror: Times(0)}
}
