package game

import (
	"maps"
	"slices"
)

type Item string

const (
	// Heavy items. A citizen carries at most one of each.
	ItemShoppingTrolley     Item = "Shopping Trolley"
	ItemChainsaw            Item = "Chainsaw"
	ItemStakeLauncher       Item = "Stake Launcher"
	ItemLawnmower           Item = "Lawnmower"
	ItemStinkingPig         Item = "Stinking Pig"
	ItemEmptyVendingMachine Item = "Empty Vending Machine"
	ItemWaterCoolerBottle3  Item = "Water Cooler Bottle (3)"
	ItemKalashniSplash      Item = "Kalashni-Splash"
	ItemMattress            Item = "Mattress"
	ItemCarDoor             Item = "Car Door"
	ItemImpressivePumpkin   Item = "Impressive Pumpkin"
	ItemRockingChair        Item = "Rocking Chair"
	ItemBeerFridge          Item = "Beer Fridge"
	ItemFlatpackedFurniture Item = "Flat-packed Furniture"
	ItemEktorpGlutenChair   Item = "Ektorp-Gluten Chair"

	// Light items, any number.
	ItemManbag                      Item = "Manbag"
	ItemUltraRucksack               Item = "Ultra Rucksack"
	ItemPocketBelt                  Item = "Pocket Belt"
	ItemPsychedelicSpiritualCounsel Item = "Psychedelic Spiritual Counsel"
	ItemClaymoreMine                Item = "Claymore Mine"
	ItemFuriousKitten               Item = "Furious Kitten"
	ItemMangyDachshund              Item = "Mangy Dachshund"
	ItemJerrycanGun                 Item = "Jerrycan Gun"
	ItemBurningLaserPointer4        Item = "Burning Laser Pointer (4)"
	ItemGuardDog                    Item = "Guard Dog"
	ItemSpyFlare                    Item = "Spy Flare"
	ItemTorch                       Item = "Torch"
	ItemHumanFlesh                  Item = "Human Flesh"
	ItemElectricWhisk               Item = "Electric Whisk"
	ItemMachete                     Item = "Machete"
	ItemEasterEgg                   Item = "Easter Egg"
	ItemCollectorPins               Item = "Collector Pins"
	ItemAquaSplash5                 Item = "Aqua-Splash (5)"
	ItemExplodingGrapefruit         Item = "Exploding Grapefruit"
	ItemExplodingWaterBomb          Item = "Exploding Water Bomb"
	ItemGiantRat                    Item = "Giant Rat"
	ItemBatteryLauncherMkII         Item = "Battery Launcher Mk II"
	ItemSerratedKnife               Item = "Serrated Knife"
	ItemMakeshiftGuitar             Item = "Makeshift Guitar"
	ItemWaterBomb                   Item = "Water Bomb"
	ItemBatteryLauncher             Item = "Battery Launcher"
	ItemBoxCutter                   Item = "Box Cutter"
	ItemWaterPistol3                Item = "Water Pistol (3)"
	ItemPatheticPenknife            Item = "Pathetic Penknife"
	ItemBrokenHumanBone             Item = "Broken Human Bone"
	ItemTaser                       Item = "Taser"
	ItemBloodyHotCoffee             Item = "Bloody Hot Coffee"
)

func HeavyItems() []Item {
	return []Item{
		ItemShoppingTrolley,
		ItemChainsaw,
		ItemStakeLauncher,
		ItemLawnmower,
		ItemStinkingPig,
		ItemEmptyVendingMachine,
		ItemWaterCoolerBottle3,
		ItemKalashniSplash,
		ItemMattress,
		ItemCarDoor,
		ItemImpressivePumpkin,
		ItemRockingChair,
		ItemBeerFridge,
		ItemFlatpackedFurniture,
		ItemEktorpGlutenChair,
	}
}

func LightItems() []Item {
	return []Item{
		ItemManbag,
		ItemUltraRucksack,
		ItemPocketBelt,
		ItemPsychedelicSpiritualCounsel,
		ItemClaymoreMine,
		ItemFuriousKitten,
		ItemMangyDachshund,
		ItemJerrycanGun,
		ItemBurningLaserPointer4,
		ItemGuardDog,
		ItemSpyFlare,
		ItemTorch,
		ItemHumanFlesh,
		ItemElectricWhisk,
		ItemMachete,
		ItemEasterEgg,
		ItemCollectorPins,
		ItemAquaSplash5,
		ItemExplodingGrapefruit,
		ItemExplodingWaterBomb,
		ItemGiantRat,
		ItemBatteryLauncherMkII,
		ItemSerratedKnife,
		ItemMakeshiftGuitar,
		ItemWaterBomb,
		ItemBatteryLauncher,
		ItemBoxCutter,
		ItemWaterPistol3,
		ItemPatheticPenknife,
		ItemBrokenHumanBone,
		ItemTaser,
		ItemBloodyHotCoffee,
	}
}

func AllItems() []Item {
	return append(HeavyItems(), LightItems()...)
}

// ItemBoost is an extra modifier an item gets once a building is up.
type ItemBoost struct {
	Building Building
	Modifier StatModifier
}

type ItemData struct {
	Modifier StatModifier
	Boost    *ItemBoost
}

// ItemCatalog maps each watch item to its modifiers.
type ItemCatalog map[Item]ItemData

// Modifier is the contribution of one carried item in town t. Items missing
// from the catalog contribute nothing.
func (c ItemCatalog) Modifier(item Item, t TownContext) StatModifier {
	data, ok := c[item]
	if !ok {
		return StatModifier{}
	}
	m := data.Modifier
	if data.Boost != nil && t.Has(data.Boost.Building) {
		m = m.Add(data.Boost.Modifier)
	}
	return m
}

// Clone returns a copy that can be modified without touching c.
func (c ItemCatalog) Clone() ItemCatalog {
	return maps.Clone(c)
}

// Items lists the catalog's items, sorted by name.
func (c ItemCatalog) Items() []Item {
	return slices.Sorted(maps.Keys(c))
}

func boosted(def float64, b Building, extra float64) ItemData {
	return ItemData{
		Modifier: StatModifier{Defense: def},
		Boost:    &ItemBoost{Building: b, Modifier: StatModifier{Defense: extra}},
	}
}

func plain(m StatModifier) ItemData {
	return ItemData{Modifier: m}
}

// DefaultItemCatalog returns the built-in watch item table. The values are
// placeholders; a catalog file is expected to override them.
func DefaultItemCatalog() ItemCatalog {
	return ItemCatalog{
		ItemShoppingTrolley:     plain(StatModifier{Defense: 10}),
		ItemChainsaw:            boosted(30, BuildingManualGrinder, 5),
		ItemStakeLauncher:       plain(StatModifier{Defense: 25}),
		ItemLawnmower:           plain(StatModifier{Defense: 20}),
		ItemStinkingPig:         boosted(15, BuildingPetShop, 5),
		ItemEmptyVendingMachine: plain(StatModifier{Defense: 15}),
		ItemWaterCoolerBottle3:  boosted(20, BuildingFilthyGutters, 5),
		ItemKalashniSplash:      boosted(25, BuildingFilthyGutters, 5),
		ItemMattress:            boosted(12, BuildingSwedishWorkshop, 3),
		ItemCarDoor:             plain(StatModifier{Defense: 15}),
		ItemImpressivePumpkin:   plain(StatModifier{Defense: 10}),
		ItemRockingChair:        boosted(10, BuildingSwedishWorkshop, 5),
		ItemBeerFridge:          plain(StatModifier{Defense: 12, Terror: -0.02}),
		ItemFlatpackedFurniture: boosted(10, BuildingSwedishWorkshop, 10),
		ItemEktorpGlutenChair:   boosted(8, BuildingSwedishWorkshop, 8),

		ItemManbag:                      plain(StatModifier{}),
		ItemUltraRucksack:               plain(StatModifier{}),
		ItemPocketBelt:                  plain(StatModifier{}),
		ItemPsychedelicSpiritualCounsel: plain(StatModifier{Terror: -0.05}),
		ItemClaymoreMine:                plain(StatModifier{Defense: 20}),
		ItemFuriousKitten:               boosted(8, BuildingPetShop, 4),
		ItemMangyDachshund:              boosted(6, BuildingPetShop, 4),
		ItemJerrycanGun:                 plain(StatModifier{Defense: 8}),
		ItemBurningLaserPointer4:        plain(StatModifier{Defense: 12}),
		ItemGuardDog:                    boosted(10, BuildingPetShop, 5),
		ItemSpyFlare:                    plain(StatModifier{Defense: 5, Terror: -0.02}),
		ItemTorch:                       plain(StatModifier{Defense: 5, Terror: -0.03}),
		ItemHumanFlesh:                  plain(StatModifier{Defense: 4}),
		ItemElectricWhisk:               plain(StatModifier{Defense: 6}),
		ItemMachete:                     boosted(10, BuildingManualGrinder, 3),
		ItemEasterEgg:                   plain(StatModifier{Defense: 10}),
		ItemCollectorPins:               plain(StatModifier{Defense: 2}),
		ItemAquaSplash5:                 boosted(12, BuildingFilthyGutters, 3),
		ItemExplodingGrapefruit:         plain(StatModifier{Defense: 12}),
		ItemExplodingWaterBomb:          boosted(15, BuildingFilthyGutters, 3),
		ItemGiantRat:                    boosted(5, BuildingPetShop, 3),
		ItemBatteryLauncherMkII:         plain(StatModifier{Defense: 12}),
		ItemSerratedKnife:               boosted(7, BuildingManualGrinder, 2),
		ItemMakeshiftGuitar:             plain(StatModifier{Defense: 6, Terror: -0.02}),
		ItemWaterBomb:                   boosted(8, BuildingFilthyGutters, 2),
		ItemBatteryLauncher:             plain(StatModifier{Defense: 8}),
		ItemBoxCutter:                   boosted(5, BuildingManualGrinder, 2),
		ItemWaterPistol3:                boosted(6, BuildingFilthyGutters, 2),
		ItemPatheticPenknife:            boosted(3, BuildingManualGrinder, 2),
		ItemBrokenHumanBone:             plain(StatModifier{Defense: 4}),
		ItemTaser:                       plain(StatModifier{Defense: 6}),
		ItemBloodyHotCoffee:             plain(StatModifier{Survival: 0.01, Terror: -0.02}),
	}
}
