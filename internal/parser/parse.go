package parser

import (
	"strconv"
	"strings"

	"github.com/appengine-ltd/ideawatch/internal/game"
)

var (
	jobs        = defaultJobRegistry()
	statuses    = defaultStatusRegistry()
	items       = NewItemRegistry(game.AllItems())
	buildings   = defaultBuildingRegistry()
	superLevels = defaultSuperLevelRegistry()
)

func ResolveJob(raw string) (game.Job, error) {
	j, _, err := jobs.Resolve(raw)
	return j, err
}

func ResolveStatus(raw string) (game.Status, error) {
	s, _, err := statuses.Resolve(raw)
	return s, err
}

// ResolveItem resolves against the built-in item list. Use NewItemRegistry
// for catalogs with extra items.
func ResolveItem(raw string) (game.Item, error) {
	i, _, err := items.Resolve(raw)
	return i, err
}

func ResolveBuilding(raw string) (game.Building, error) {
	b, _, err := buildings.Resolve(raw)
	return b, err
}

// ResolveSuperLevel accepts a level ordinal (0-4) or its name.
func ResolveSuperLevel(raw string) (game.SuperLevel, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		l := game.SuperLevel(n)
		if !l.Valid() {
			return 0, &UnknownNameError{Kind: KindSuperLevel, Name: raw, Suggestions: []string{"0", "1", "2", "3", "4"}}
		}
		return l, nil
	}
	l, _, err := superLevels.Resolve(raw)
	return l, err
}

func defaultJobRegistry() *Registry[game.Job] {
	r := NewRegistry[game.Job](KindJob)
	r.Register(game.JobGuard.String(), game.JobGuard, "guardian", "watchman")
	r.Register(game.JobTamer.String(), game.JobTamer, "beast tamer")
	r.Register(game.JobOther.String(), game.JobOther, "citizen", "none")
	return r
}

var statusAliases = map[game.Status][]string{
	game.StatusGhoul:           {"ghoulish"},
	game.StatusImmune:          {"immunised", "immunized"},
	game.StatusTerror:          {"terrorised", "terrorized", "terrified"},
	game.StatusThirst:          {"thirsty"},
	game.StatusDehydration:     {"dehydrated", "dehydratation"},
	game.StatusDrugged:         {"high"},
	game.StatusAddict:          {"drug addict", "addicted"},
	game.StatusInfection:       {"infected"},
	game.StatusDrunk:           {"drunken"},
	game.StatusHungover:        {"hangover"},
	game.StatusWound:           {"wounded", "injured"},
	game.StatusHealed:          {"bandaged"},
	game.StatusTamerGuard:      {"tamer guarded"},
	game.StatusTamerGuardSteak: {"tamer guard with steak"},
}

func defaultStatusRegistry() *Registry[game.Status] {
	r := NewRegistry[game.Status](KindStatus)
	for _, s := range game.AllStatuses() {
		r.Register(s.String(), s, statusAliases[s]...)
	}
	return r
}

var itemAliases = map[game.Item][]string{
	game.ItemShoppingTrolley:             {"trolley", "caddie"},
	game.ItemEmptyVendingMachine:         {"vending machine"},
	game.ItemWaterCoolerBottle3:          {"water cooler"},
	game.ItemPsychedelicSpiritualCounsel: {"psychadelic spiritual counsel"},
	game.ItemBurningLaserPointer4:        {"laser pointer"},
	game.ItemBatteryLauncherMkII:         {"battery launcher mk2", "battery launcher 2"},
	game.ItemWaterPistol3:                {"water pistol"},
	game.ItemAquaSplash5:                 {"aqua splash"},
	game.ItemFlatpackedFurniture:         {"flatpacked furniture", "flatpack furniture"},
	game.ItemEktorpGlutenChair:           {"ektorp chair"},
}

// NewItemRegistry registers every item under its display name plus the
// known aliases.
func NewItemRegistry(names []game.Item) *Registry[game.Item] {
	r := NewRegistry[game.Item](KindItem)
	for _, item := range names {
		r.Register(string(item), item, itemAliases[item]...)
	}
	return r
}

var buildingAliases = map[game.Building][]string{
	game.BuildingGasGun:              {"gas cannon"},
	game.BuildingGuardRoom:           {"guardroom"},
	game.BuildingSmallTrebuchet:      {"trebuchet"},
	game.BuildingAutomaticSprinklers: {"sprinklers", "automatic spriklers"},
	game.BuildingPetShop:             {"petshop"},
	game.BuildingFilthyGutters:       {"gutters"},
	game.BuildingSwedishWorkshop:     {"workshop"},
	game.BuildingManualGrinder:       {"grinder"},
	game.BuildingBattlementsLevel3:   {"battlements 3", "battlements upgraded to level 3"},
	game.BuildingDumpLevel1:          {"dump 1", "dump upgraded to level 1"},
	game.BuildingDumpLevel2:          {"dump 2", "dump upgraded to level 2"},
}

func defaultBuildingRegistry() *Registry[game.Building] {
	r := NewRegistry[game.Building](KindBuilding)
	for _, b := range game.AllBuildings() {
		r.Register(b.String(), b, buildingAliases[b]...)
	}
	return r
}

func defaultSuperLevelRegistry() *Registry[game.SuperLevel] {
	r := NewRegistry[game.SuperLevel](KindSuperLevel)
	for _, l := range game.AllSuperLevels() {
		r.Register(l.String(), l)
	}
	return r
}
