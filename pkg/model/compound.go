package model

// Location is the coarse storage place of a container. The set is closed at
// the write boundary; values already in the store are tolerated as-is.
type Location string

const (
	LocationNormal   Location = "Normal"
	LocationSolvent  Location = "Solvent"
	LocationSaltAcid Location = "Salt and acid"
	LocationDryBox   Location = "Dry box"
	LocationHood     Location = "Hood"
	LocationFridge4  Location = "4℃ fridge"
	LocationFreezer  Location = "-20℃ fridge"
	LocationGlovebox Location = "Glovebox"
	LocationOutside  Location = "Outside"
	LocationOther    Location = "Other"
)

// Locations returns the option set in display order.
func Locations() []Location {
	return []Location{
		LocationNormal, LocationSolvent, LocationSaltAcid, LocationDryBox,
		LocationHood, LocationFridge4, LocationFreezer, LocationGlovebox,
		LocationOutside, LocationOther,
	}
}

func (l Location) Valid() bool {
	for _, v := range Locations() {
		if l == v {
			return true
		}
	}
	return false
}

// LidColor is stored as the bare key; the emoji label is display-only.
type LidColor string

const (
	LidWhite  LidColor = "White"
	LidBlack  LidColor = "Black"
	LidRed    LidColor = "Red"
	LidBlue   LidColor = "Blue"
	LidYellow LidColor = "Yellow"
	LidOther  LidColor = "Other"
)

var lidColorLabels = map[LidColor]string{
	LidWhite:  "⚪ White",
	LidBlack:  "⚫ Black",
	LidRed:    "🔴 Red",
	LidBlue:   "🔵 Blue",
	LidYellow: "🟡 Yellow",
	LidOther:  "❓ Other",
}

func LidColors() []LidColor {
	return []LidColor{LidWhite, LidBlack, LidRed, LidBlue, LidYellow, LidOther}
}

func (c LidColor) Valid() bool {
	_, ok := lidColorLabels[c]
	return ok
}

// Label maps the key to its display label. Unknown legacy values fall back to
// the Other label instead of being rejected.
func (c LidColor) Label() string {
	if label, ok := lidColorLabels[c]; ok {
		return label
	}
	return lidColorLabels[LidOther]
}

type Appearance string

const (
	AppearanceSolid  Appearance = "Solid"
	AppearanceLiquid Appearance = "Liquid"
	AppearanceGas    Appearance = "Gas"
	AppearanceOther  Appearance = "Other"
)

func Appearances() []Appearance {
	return []Appearance{AppearanceSolid, AppearanceLiquid, AppearanceGas, AppearanceOther}
}

func (a Appearance) Valid() bool {
	switch a {
	case AppearanceSolid, AppearanceLiquid, AppearanceGas, AppearanceOther:
		return true
	}
	return false
}

// Compound is a single chemical container on a shelf. Records are created and
// deleted, never updated.
type Compound struct {
	BaseModel
	EnglishName     string     `gorm:"type:varchar(255);not null;index:idx_compound_english_name" json:"english_name"`
	Formula         string     `gorm:"type:text" json:"formula"`
	MolecularWeight *float64   `gorm:"column:mw;type:double precision" json:"mw"`
	CAS             string     `gorm:"type:varchar(64);index:idx_compound_cas" json:"cas"`
	PackageSize     string     `gorm:"type:varchar(64)" json:"package_size"`
	Location        Location   `gorm:"type:varchar(32);index:idx_compound_location" json:"location"`
	LocationDetail  string     `gorm:"type:varchar(255)" json:"location_detail"`
	LidColor        LidColor   `gorm:"type:varchar(32)" json:"lid_color"`
	Appearance      Appearance `gorm:"type:varchar(32)" json:"appearance"`
}

func (*Compound) TableName() string { return "compound" }
