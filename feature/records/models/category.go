package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Category is the closed set of tracked run categories.
//
// The integer codes are the stable storage encoding and must never be
// renumbered; the production database predates this implementation.
type Category int

const (
	AnyPercent           Category = 0
	AnyPercentGlitched   Category = 1
	AnyPercentGTCode     Category = 2
	OneHundredPercent    Category = 3
	LowPercentIce        Category = 4
	LowPercentSpeed      Category = 5
	LowPercentXIce       Category = 6
	LowPercentSpeedBoots Category = 7
	LowPercentIceBoots   Category = 8
	LowPercentIceBooster Category = 9
	LowPercentAllBosses  Category = 10
	LowPercentGlitched   Category = 11
	RBO                  Category = 12
	GTClassic            Category = 13
	CeresEscape          Category = 14
	MapCompletion        Category = 15
	SporeSpawnRTA        Category = 16
	BotwoonRTA           Category = 17
	CrocomireRTA         Category = 18
	CategoryUnknown      Category = 19
)

// categoryNames is the canonical display string per category.
var categoryNames = map[Category]string{
	AnyPercent:           "Any%",
	AnyPercentGlitched:   "Any% Glitched",
	AnyPercentGTCode:     "Any% GT Code",
	OneHundredPercent:    "100%",
	LowPercentIce:        "14% Ice",
	LowPercentSpeed:      "14% Speed",
	LowPercentXIce:       "14% X-Ice",
	LowPercentSpeedBoots: "14% SpeedBoots",
	LowPercentIceBoots:   "14% IceBoots",
	LowPercentIceBooster: "14% IceBooster",
	LowPercentAllBosses:  "Low% Glitched All Bosses",
	LowPercentGlitched:   "Low% Glitched",
	RBO:                  "RBO",
	GTClassic:            "GT Classic",
	CeresEscape:          "Ceres Escape",
	MapCompletion:        "Map Completion",
	SporeSpawnRTA:        "Spore Spawn RTA",
	BotwoonRTA:           "Botwoon RTA",
	CrocomireRTA:         "Crocomire RTA",
	CategoryUnknown:      "Unknown",
}

// categoryAliases maps free-text command input to categories. Keys are
// lowercase; community shorthand and historical names are all accepted.
var categoryAliases = map[string]Category{
	"any%":            AnyPercent,
	"any% pal":        AnyPercent,
	"100%":            OneHundredPercent,
	"100% map":        MapCompletion,
	"map completion":  MapCompletion,
	"low% ice":        LowPercentIce,
	"14% ice":         LowPercentIce,
	"low% speed":      LowPercentSpeed,
	"14% speed":       LowPercentSpeed,
	"rbo":             RBO,
	"ceres":           CeresEscape,
	"ssrta":           SporeSpawnRTA,
	"any% glitched":   AnyPercentGlitched,
	"any% gt":         AnyPercentGTCode,
	"any% gt code":    AnyPercentGTCode,
	"gt classic":      GTClassic,
	"low% glitched":   LowPercentGlitched,
	"3%":              LowPercentGlitched,
	"0%":              LowPercentGlitched,
	"low% all bosses": LowPercentAllBosses,
	"12%":             LowPercentAllBosses,
	"low% iceboots":   LowPercentIceBoots,
	"14% iceboots":    LowPercentIceBoots,
	"low% speedboots": LowPercentSpeedBoots,
	"14% speedboots":  LowPercentSpeedBoots,
	"low% icebooster": LowPercentIceBooster,
	"14% icebooster":  LowPercentIceBooster,
	"low% xice":       LowPercentXIce,
	"low% x-ice":      LowPercentXIce,
	"14% xice":        LowPercentXIce,
	"14% x-ice":       LowPercentXIce,
	"crocomire rta":   CrocomireRTA,
}

// ParseCategory maps free-text command input to a category.
// Unrecognized input yields CategoryUnknown, never an error.
func ParseCategory(name string) Category {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CategoryUnknown
}

// DecodeCategory maps a stored integer code back to a category.
// Codes outside the closed set decode to CategoryUnknown.
func DecodeCategory(code int) Category {
	c := Category(code)
	if _, ok := categoryNames[c]; !ok {
		return CategoryUnknown
	}
	return c
}

// Code returns the stable integer encoding used for storage.
func (c Category) Code() int { return int(c) }

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Scan implements sql.Scanner so stored codes are validated once at the
// store boundary.
func (c *Category) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		*c = DecodeCategory(int(v))
		return nil
	case []byte:
		var code int
		if _, err := fmt.Sscanf(string(v), "%d", &code); err != nil {
			return fmt.Errorf("invalid category value %q", v)
		}
		*c = DecodeCategory(code)
		return nil
	default:
		return fmt.Errorf("invalid category value type %T", value)
	}
}

// Value implements driver.Valuer.
func (c Category) Value() (driver.Value, error) {
	return int64(c.Code()), nil
}

// Region is the closed set of console regions a run can be performed on.
type Region int

const (
	NTSC Region = 0
	PAL  Region = 1
)

// DecodeRegion maps a stored integer code back to a region, defaulting
// to NTSC for anything unrecognized.
func DecodeRegion(code int) Region {
	if Region(code) == PAL {
		return PAL
	}
	return NTSC
}

// Code returns the stable integer encoding used for storage.
func (r Region) Code() int { return int(r) }

func (r Region) String() string {
	if r == PAL {
		return "PAL"
	}
	return "NTSC"
}

// Scan implements sql.Scanner.
func (r *Region) Scan(value any) error {
	switch v := value.(type) {
	case int64:
		*r = DecodeRegion(int(v))
		return nil
	case []byte:
		var code int
		if _, err := fmt.Sscanf(string(v), "%d", &code); err != nil {
			return fmt.Errorf("invalid region value %q", v)
		}
		*r = DecodeRegion(code)
		return nil
	default:
		return fmt.Errorf("invalid region value type %T", value)
	}
}

// Value implements driver.Valuer.
func (r Region) Value() (driver.Value, error) {
	return int64(r.Code()), nil
}
