package compound

import (
	"time"

	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
)

// InsertReq carries the add-form fields. MolecularWeight arrives as the raw
// form text; it is parsed and validated in the business layer so a non-numeric
// value is rejected before anything touches the store.
type InsertReq struct {
	EnglishName     string `json:"english_name" binding:"required"`
	Formula         string `json:"formula"`
	MolecularWeight string `json:"mw"`
	CAS             string `json:"cas"`
	PackageSize     string `json:"package_size"`
	Location        string `json:"location" binding:"required"`
	LocationDetail  string `json:"location_detail"`
	LidColor        string `json:"lid_color" binding:"required"`
	Appearance      string `json:"appearance" binding:"required"`
}

type InsertResp struct {
	ID int64 `json:"id"`
}

// SearchReq mirrors the search form: free-text keyword plus the two
// enumerated filters, "All" (or empty) meaning unconstrained.
type SearchReq struct {
	Keyword  string `form:"q"`
	Location string `form:"location"`
	LidColor string `form:"lid_color"`
}

type CompoundResponse struct {
	ID              int64     `json:"id"`
	EnglishName     string    `json:"english_name"`
	Formula         string    `json:"formula"`
	MolecularWeight *float64  `json:"mw"`
	CAS             string    `json:"cas"`
	PackageSize     string    `json:"package_size"`
	Location        string    `json:"location"`
	LocationDetail  string    `json:"location_detail"`
	LidColor        string    `json:"lid_color"`
	LidColorLabel   string    `json:"lid_color_label"`
	Appearance      string    `json:"appearance"`
	CreatedAt       time.Time `json:"created_at"`
}

type SearchResp struct {
	Total int                 `json:"total"`
	List  []*CompoundResponse `json:"list"`
}

// DeleteRequestReq starts the two-step delete; the reply token must be sent
// back within ExpiresIn seconds to actually remove the record.
type DeleteRequestReq struct {
	ID int64 `json:"id" binding:"required"`
}

type DeleteRequestResp struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

type DeleteConfirmReq struct {
	Token string `json:"token" binding:"required"`
}

// CAS lookup against PubChem.
type CasReq struct {
	CAS string `form:"cas" json:"cas" binding:"required"`
}

type CasResp struct {
	Name             string   `json:"name"`
	MolecularFormula string   `json:"molecular_formula"`
	MolecularWeight  *float64 `json:"molecular_weight"`
	SMILES           string   `json:"smiles"`
}

// OptionsResp feeds the form selects: the closed option sets with display
// labels.
type OptionsResp struct {
	Locations   []model.Location   `json:"locations"`
	LidColors   []LidColorOption   `json:"lid_colors"`
	Appearances []model.Appearance `json:"appearances"`
}

type LidColorOption struct {
	Key   model.LidColor `json:"key"`
	Label string         `json:"label"`
}
