// Package classify maps source-specific category and region identifiers into
// the internal taxonomy. Classification is total: unmapped input yields
// models.CategoryUnknown (or NTSC for regions), never an error.
package classify

import (
	"shaktool/feature/records/models"
)

// Speedrun.com encodes several categories behind a shared leaderboard id,
// distinguished by a variable value. These are the variable ids involved.
const (
	// VarLowPercent selects the low% sub-category.
	VarLowPercent = "onv6jzw8"
	// VarGTCode selects the GT code sub-category.
	VarGTCode = "kn02d083"
	// VarMiniboss selects the boss for the mini-boss RTA leaderboard.
	VarMiniboss = "wl360wwl"
	// VarRegion selects NTSC vs PAL.
	VarRegion = "wle6dpr8"
)

// deerTierCategories maps deertier's flat category strings.
var deerTierCategories = map[string]models.Category{
	"AnyPercentRealTime":      models.AnyPercent,
	"OneHundredPercent":       models.OneHundredPercent,
	"OneHundredPercentMap":    models.MapCompletion,
	"LowPercentIce":           models.LowPercentIce,
	"LowPercentSpeed":         models.LowPercentSpeed,
	"RBO":                     models.RBO,
	"Ceres":                   models.CeresEscape,
	"SporeSpawnRTA":           models.SporeSpawnRTA,
	"AnyPercentGlitched":      models.AnyPercentGlitched,
	"AnyPercentGTCode":        models.AnyPercentGTCode,
	"GTClassic":               models.GTClassic,
	"LowPercentGlitched":      models.LowPercentGlitched,
	"LowPercentAllBosses":     models.LowPercentAllBosses,
	"PALAnyPercentRealTime":   models.AnyPercent,
	"PALLowPercentIceboots":   models.LowPercentIceBoots,
	"PALLowPercentSpeedBoots": models.LowPercentSpeedBoots,
	"LowPercentIceBooster":    models.LowPercentIceBooster,
	"LowPercentXIce":          models.LowPercentXIce,
	"BotwoonRTA":              models.BotwoonRTA,
	"CrocomireRTA":            models.CrocomireRTA,
}

// deerTierPALCategories are the deertier category strings for PAL boards.
var deerTierPALCategories = map[string]struct{}{
	"PALAnyPercentRealTime":   {},
	"PALLowPercentIceboots":   {},
	"PALLowPercentSpeedBoots": {},
}

// srcCategories maps unambiguous speedrun.com category ids.
var srcCategories = map[string]models.Category{
	"9d8v96lk": models.AnyPercent,
	"xd1mpewd": models.OneHundredPercent,
	"ndx8qmvk": models.RBO,
	"w20zowod": models.AnyPercentGlitched,
	"xd1mplwd": models.MapCompletion,
	"n2y1y182": models.CeresEscape,
	"w2018jok": models.LowPercentGlitched,
}

// srcVariableCategories resolves the ambiguous speedrun.com category ids via
// the value of their distinguishing variable.
var srcVariableCategories = map[string]struct {
	variable string
	values   map[string]models.Category
}{
	"wdmqjw32": {
		variable: VarGTCode,
		values: map[string]models.Category{
			"81w422oq": models.GTClassic,
			"5lmo33j1": models.AnyPercentGTCode,
		},
	},
	"rklgyq8d": {
		variable: VarLowPercent,
		values: map[string]models.Category{
			"4lx07prl": models.LowPercentIce,
			"814k0yjl": models.LowPercentSpeed,
			"z195omkq": models.LowPercentIceBooster,
			"p12oydkl": models.LowPercentXIce,
			"xqk9yjy1": models.LowPercentIceBoots,
			"gq79mjyl": models.LowPercentSpeedBoots,
		},
	},
	"7kjrnrx2": {
		variable: VarMiniboss,
		values: map[string]models.Category{
			"21gezknl": models.SporeSpawnRTA,
			"jqzvzogl": models.CrocomireRTA,
			"klrjo8jq": models.BotwoonRTA,
		},
	},
}

// srcRegions maps speedrun.com region variable values.
var srcRegions = map[string]models.Region{
	"21gezkxl": models.NTSC,
	"jqzvzo4l": models.PAL,
}

// FromDeerTier classifies a deertier category string.
func FromDeerTier(category string) (models.Category, models.Region) {
	c, ok := deerTierCategories[category]
	if !ok {
		return models.CategoryUnknown, models.NTSC
	}
	if _, pal := deerTierPALCategories[category]; pal {
		return c, models.PAL
	}
	return c, models.NTSC
}

// FromSpeedrun classifies a speedrun.com category id plus the run's variable
// values. The iceboots/speedboots categories are PAL-only boards by community
// convention and are wired to PAL regardless of the region variable.
func FromSpeedrun(categoryID string, values map[string]string) (models.Category, models.Region) {
	category := speedrunCategory(categoryID, values)

	switch category {
	case models.LowPercentIceBoots, models.LowPercentSpeedBoots:
		return category, models.PAL
	}

	if region, ok := srcRegions[values[VarRegion]]; ok {
		return category, region
	}
	return category, models.NTSC
}

func speedrunCategory(categoryID string, values map[string]string) models.Category {
	if c, ok := srcCategories[categoryID]; ok {
		return c
	}
	if sub, ok := srcVariableCategories[categoryID]; ok {
		if c, ok := sub.values[values[sub.variable]]; ok {
			return c
		}
	}
	return models.CategoryUnknown
}
