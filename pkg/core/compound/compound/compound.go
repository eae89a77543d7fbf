package compound

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	config "github.com/wen89126-oss/lab-compound-db/internal/config"
	code "github.com/wen89126-oss/lab-compound-db/pkg/common/code"
	core "github.com/wen89126-oss/lab-compound-db/pkg/core/compound"
	query "github.com/wen89126-oss/lab-compound-db/pkg/core/compound/query"
	logger "github.com/wen89126-oss/lab-compound-db/pkg/middleware/logger"
	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
	repo "github.com/wen89126-oss/lab-compound-db/pkg/repo"
	repoCompound "github.com/wen89126-oss/lab-compound-db/pkg/repo/compound"
	repoConfirm "github.com/wen89126-oss/lab-compound-db/pkg/repo/confirm"
	repoPubchem "github.com/wen89126-oss/lab-compound-db/pkg/repo/pubchem"
)

type compoundImpl struct {
	store      repo.CompoundRepo
	pubchem    repo.PubChemRepo
	tokens     repo.ConfirmTokenRepo
	confirmTTL time.Duration
}

func New() core.Service {
	return &compoundImpl{
		store:      repoCompound.NewCompoundRepo(),
		pubchem:    repoPubchem.NewPubChemRepo(),
		tokens:     repoConfirm.NewConfirmTokenRepo(),
		confirmTTL: time.Duration(config.Global().Delete.ConfirmTTL) * time.Second,
	}
}

// Insert validates at the boundary — an invalid request never reaches the
// store, so no partial write can occur.
func (s *compoundImpl) Insert(ctx context.Context, req *core.InsertReq) (*core.InsertResp, error) {
	name := strings.TrimSpace(req.EnglishName)
	if name == "" {
		return nil, code.ParamErr.WithMsg("english_name must not be empty")
	}

	var mw *float64
	if raw := strings.TrimSpace(req.MolecularWeight); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, code.ParamErr.WithMsgf("mw must be a number, got %q", raw)
		}
		mw = &v
	}

	location := model.Location(req.Location)
	if !location.Valid() {
		return nil, code.ParamErr.WithMsgf("unknown location %q", req.Location)
	}
	lidColor := model.LidColor(req.LidColor)
	if !lidColor.Valid() {
		return nil, code.ParamErr.WithMsgf("unknown lid_color %q", req.LidColor)
	}
	appearance := model.Appearance(req.Appearance)
	if !appearance.Valid() {
		return nil, code.ParamErr.WithMsgf("unknown appearance %q", req.Appearance)
	}

	data := &model.Compound{
		EnglishName:     name,
		Formula:         strings.TrimSpace(req.Formula),
		MolecularWeight: mw,
		CAS:             strings.TrimSpace(req.CAS),
		PackageSize:     strings.TrimSpace(req.PackageSize),
		Location:        location,
		LocationDetail:  strings.TrimSpace(req.LocationDetail),
		LidColor:        lidColor,
		Appearance:      appearance,
	}

	if err := s.store.Create(ctx, data); err != nil {
		logger.Errorf(ctx, "CreateCompound err: %+v", err)
		return nil, err
	}

	return &core.InsertResp{ID: data.ID}, nil
}

// Search re-reads live store state on every call — other sessions insert and
// delete concurrently, so nothing is cached. Exact filters are pushed down to
// the store scan; keyword matching and ordering run in the query layer.
func (s *compoundImpl) Search(ctx context.Context, req *core.SearchReq) (*core.SearchResp, error) {
	list, err := s.scanAndMatch(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := &core.SearchResp{
		Total: len(list),
		List:  make([]*core.CompoundResponse, 0, len(list)),
	}
	for _, c := range list {
		resp.List = append(resp.List, toResponse(c))
	}
	return resp, nil
}

func (s *compoundImpl) scanAndMatch(ctx context.Context, req *core.SearchReq) ([]*model.Compound, error) {
	f := query.NewFilter(req.Keyword, req.Location, req.LidColor)

	scan := repo.ScanQuery{}
	if f.Location != query.FilterAll {
		loc := model.Location(f.Location)
		scan.Location = &loc
	}
	if f.LidColor != query.FilterAll {
		lid := model.LidColor(f.LidColor)
		scan.LidColor = &lid
	}

	list, err := s.store.Scan(ctx, scan)
	if err != nil {
		return nil, err
	}
	return query.Apply(list, f), nil
}

var csvHeader = []string{
	"id", "english_name", "formula", "mw", "cas", "package_size",
	"location", "location_detail", "lid_color", "appearance", "created_at",
}

// ExportCSV writes the search result as CSV with a UTF-8 BOM so spreadsheet
// tools pick up the encoding, matching the original export format.
func (s *compoundImpl) ExportCSV(ctx context.Context, req *core.SearchReq, w io.Writer) error {
	list, err := s.scanAndMatch(ctx, req)
	if err != nil {
		return err
	}

	if _, err := w.Write([]byte("\xEF\xBB\xBF")); err != nil {
		return code.UnDefineErr.WithErr(err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return code.UnDefineErr.WithErr(err)
	}
	for _, c := range list {
		mw := ""
		if c.MolecularWeight != nil {
			mw = strconv.FormatFloat(*c.MolecularWeight, 'f', -1, 64)
		}
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.EnglishName,
			c.Formula,
			mw,
			c.CAS,
			c.PackageSize,
			string(c.Location),
			c.LocationDetail,
			c.LidColor.Label(),
			string(c.Appearance),
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return code.UnDefineErr.WithErr(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return code.UnDefineErr.WithErr(err)
	}
	return nil
}

func (s *compoundImpl) RequestDelete(ctx context.Context, req *core.DeleteRequestReq) (*core.DeleteRequestResp, error) {
	token, err := s.tokens.Issue(ctx, req.ID, s.confirmTTL)
	if err != nil {
		return nil, err
	}
	return &core.DeleteRequestResp{
		Token:     token,
		ExpiresIn: int64(s.confirmTTL / time.Second),
	}, nil
}

func (s *compoundImpl) ConfirmDelete(ctx context.Context, req *core.DeleteConfirmReq) error {
	id, err := s.tokens.Consume(ctx, req.Token)
	if err != nil {
		return err
	}
	// DeleteByID is idempotent: the record may already be gone if another
	// session removed it while the confirmation was pending.
	return s.store.DeleteByID(ctx, id)
}

func (s *compoundImpl) QueryCAS(ctx context.Context, req *core.CasReq) (*core.CasResp, error) {
	info, err := s.pubchem.GetCompoundByCAS(ctx, strings.TrimSpace(req.CAS))
	if err != nil {
		return nil, err
	}
	return &core.CasResp{
		Name:             info.Name,
		MolecularFormula: info.MolecularFormula,
		MolecularWeight:  info.MolecularWeight,
		SMILES:           info.SMILES,
	}, nil
}

func (s *compoundImpl) Options(_ context.Context) *core.OptionsResp {
	lids := make([]core.LidColorOption, 0, len(model.LidColors()))
	for _, c := range model.LidColors() {
		lids = append(lids, core.LidColorOption{Key: c, Label: c.Label()})
	}
	return &core.OptionsResp{
		Locations:   model.Locations(),
		LidColors:   lids,
		Appearances: model.Appearances(),
	}
}

func toResponse(c *model.Compound) *core.CompoundResponse {
	return &core.CompoundResponse{
		ID:              c.ID,
		EnglishName:     c.EnglishName,
		Formula:         c.Formula,
		MolecularWeight: c.MolecularWeight,
		CAS:             c.CAS,
		PackageSize:     c.PackageSize,
		Location:        string(c.Location),
		LocationDetail:  c.LocationDetail,
		LidColor:        string(c.LidColor),
		LidColorLabel:   c.LidColor.Label(),
		Appearance:      string(c.Appearance),
		CreatedAt:       c.CreatedAt,
	}
}
