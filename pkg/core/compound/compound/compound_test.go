package compound

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	code "github.com/wen89126-oss/lab-compound-db/pkg/common/code"
	core "github.com/wen89126-oss/lab-compound-db/pkg/core/compound"
	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
	repo "github.com/wen89126-oss/lab-compound-db/pkg/repo"
	memstore "github.com/wen89126-oss/lab-compound-db/pkg/repo/memstore"
)

// memTokens is an in-process ConfirmTokenRepo with real expiry semantics.
type memTokens struct {
	entries map[string]memToken
}

type memToken struct {
	id       int64
	deadline time.Time
}

func newMemTokens() *memTokens {
	return &memTokens{entries: map[string]memToken{}}
}

func (m *memTokens) Issue(_ context.Context, id int64, ttl time.Duration) (string, error) {
	token := uuid.Must(uuid.NewV4()).String()
	m.entries[token] = memToken{id: id, deadline: time.Now().Add(ttl)}
	return token, nil
}

func (m *memTokens) Consume(_ context.Context, token string) (int64, error) {
	entry, ok := m.entries[token]
	delete(m.entries, token)
	if !ok || time.Now().After(entry.deadline) {
		return 0, code.ConfirmExpiredErr
	}
	return entry.id, nil
}

type mockPubChem struct {
	mock.Mock
}

func (m *mockPubChem) GetCompoundByCAS(ctx context.Context, cas string) (*repo.CompoundInfo, error) {
	args := m.Called(ctx, cas)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.CompoundInfo), args.Error(1)
}

// busyStore simulates an exhausted connection pool on every call.
type busyStore struct{}

func (busyStore) Create(context.Context, *model.Compound) error { return code.StoreBusyErr }
func (busyStore) DeleteByID(context.Context, int64) error       { return code.StoreBusyErr }
func (busyStore) Scan(context.Context, repo.ScanQuery) ([]*model.Compound, error) {
	return nil, code.StoreBusyErr
}

func newService(store repo.CompoundRepo) *compoundImpl {
	return &compoundImpl{
		store:      store,
		pubchem:    &mockPubChem{},
		tokens:     newMemTokens(),
		confirmTTL: 5 * time.Minute,
	}
}

func insertReq(name, cas string) *core.InsertReq {
	return &core.InsertReq{
		EnglishName: name,
		CAS:         cas,
		Location:    "Normal",
		LidColor:    "White",
		Appearance:  "Solid",
	}
}

func TestInsertValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	_, err := svc.Insert(ctx, insertReq("", ""))
	assert.ErrorIs(t, err, code.ParamErr)

	_, err = svc.Insert(ctx, insertReq("   ", ""))
	assert.ErrorIs(t, err, code.ParamErr)

	bad := insertReq("Ethanol", "64-17-5")
	bad.MolecularWeight = "abc"
	_, err = svc.Insert(ctx, bad)
	assert.ErrorIs(t, err, code.ParamErr)

	badLoc := insertReq("Ethanol", "")
	badLoc.Location = "Basement"
	_, err = svc.Insert(ctx, badLoc)
	assert.ErrorIs(t, err, code.ParamErr)

	// nothing was written
	resp, err := svc.Search(ctx, &core.SearchReq{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
}

func TestInsertSearchRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	req := insertReq("  Ethanol  ", " 64-17-5 ")
	req.Formula = "C2H6O"
	req.MolecularWeight = " 46.07 "
	req.PackageSize = "500 mL"
	req.LocationDetail = "Shelf 2"

	created, err := svc.Insert(ctx, req)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	resp, err := svc.Search(ctx, &core.SearchReq{Keyword: "Ethanol"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)

	got := resp.List[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ethanol", got.EnglishName) // trimmed
	assert.Equal(t, "C2H6O", got.Formula)
	assert.Equal(t, "64-17-5", got.CAS)
	require.NotNil(t, got.MolecularWeight)
	assert.InDelta(t, 46.07, *got.MolecularWeight, 1e-9)
	assert.Equal(t, "Normal", got.Location)
	assert.Equal(t, "⚪ White", got.LidColorLabel)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSearchOrderingAndFilters(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	cases := []struct {
		name, cas, location string
	}{
		{"seven", "7-1-1", "Normal"},
		{"ten", "10-1-1", "Hood"},
		{"two", "2-5-5", "Normal"},
		{"broken", "abc-1-2", "Normal"},
	}
	for _, tc := range cases {
		req := insertReq(tc.name, tc.cas)
		req.Location = tc.location
		_, err := svc.Insert(ctx, req)
		require.NoError(t, err)
	}

	resp, err := svc.Search(ctx, &core.SearchReq{})
	require.NoError(t, err)
	require.Equal(t, 4, resp.Total)
	assert.Equal(t, "2-5-5", resp.List[0].CAS)
	assert.Equal(t, "7-1-1", resp.List[1].CAS)
	assert.Equal(t, "10-1-1", resp.List[2].CAS)
	assert.Equal(t, "abc-1-2", resp.List[3].CAS) // unparsable sorts last, still included

	resp, err = svc.Search(ctx, &core.SearchReq{Location: "Hood"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "ten", resp.List[0].EnglishName)

	resp, err = svc.Search(ctx, &core.SearchReq{Keyword: "1", Location: "Normal"})
	require.NoError(t, err)
	// CAS mode: prefix "1" over Normal-located records matches nothing
	// ("7-1-1", "2-5-5", "abc-1-2" do not start with 1)
	assert.Zero(t, resp.Total)
}

func TestSearchBusyStoreIsNotEmptyResult(t *testing.T) {
	ctx := context.Background()
	svc := newService(busyStore{})

	resp, err := svc.Search(ctx, &core.SearchReq{})
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, code.StoreBusyErr)

	var ec *code.ErrCode
	require.ErrorAs(t, err, &ec)
	assert.True(t, ec.Retryable)
}

func TestTwoStepDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	created, err := svc.Insert(ctx, insertReq("Ethanol", "64-17-5"))
	require.NoError(t, err)

	issued, err := svc.RequestDelete(ctx, &core.DeleteRequestReq{ID: created.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, issued.Token)
	assert.Equal(t, int64(300), issued.ExpiresIn)

	// record is still present until the confirmation lands
	resp, err := svc.Search(ctx, &core.SearchReq{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	require.NoError(t, svc.ConfirmDelete(ctx, &core.DeleteConfirmReq{Token: issued.Token}))

	resp, err = svc.Search(ctx, &core.SearchReq{})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)

	// the token is one-shot
	err = svc.ConfirmDelete(ctx, &core.DeleteConfirmReq{Token: issued.Token})
	assert.ErrorIs(t, err, code.ConfirmExpiredErr)
}

func TestConfirmDeleteIsIdempotentOnStore(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	created, err := svc.Insert(ctx, insertReq("Ethanol", "64-17-5"))
	require.NoError(t, err)

	// two outstanding confirmations for the same record
	first, err := svc.RequestDelete(ctx, &core.DeleteRequestReq{ID: created.ID})
	require.NoError(t, err)
	second, err := svc.RequestDelete(ctx, &core.DeleteRequestReq{ID: created.ID})
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmDelete(ctx, &core.DeleteConfirmReq{Token: first.Token}))
	// the second confirm deletes an id that is already gone: a no-op
	require.NoError(t, svc.ConfirmDelete(ctx, &core.DeleteConfirmReq{Token: second.Token}))
}

func TestConfirmDeleteUnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	err := svc.ConfirmDelete(ctx, &core.DeleteConfirmReq{Token: "nope"})
	assert.ErrorIs(t, err, code.ConfirmExpiredErr)
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	req := insertReq("Ethanol", "64-17-5")
	req.Formula = "C2H6O"
	req.MolecularWeight = "46.07"
	_, err := svc.Insert(ctx, req)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &core.SearchReq{}, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(csvHeader, ","), lines[0])
	assert.Contains(t, lines[1], "Ethanol")
	assert.Contains(t, lines[1], "64-17-5")
	assert.Contains(t, lines[1], "⚪ White") // lid color exported as display label
}

func TestExportCSVPropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	svc := newService(busyStore{})

	var buf bytes.Buffer
	err := svc.ExportCSV(ctx, &core.SearchReq{}, &buf)
	assert.ErrorIs(t, err, code.StoreBusyErr)
	assert.Zero(t, buf.Len())
}

func TestQueryCAS(t *testing.T) {
	ctx := context.Background()
	svc := newService(memstore.New())

	mw := 46.07
	pc := svc.pubchem.(*mockPubChem)
	pc.On("GetCompoundByCAS", mock.Anything, "64-17-5").Return(&repo.CompoundInfo{
		Name:             "Ethanol",
		MolecularFormula: "C2H6O",
		MolecularWeight:  &mw,
		SMILES:           "CCO",
	}, nil)

	resp, err := svc.QueryCAS(ctx, &core.CasReq{CAS: " 64-17-5 "})
	require.NoError(t, err)
	assert.Equal(t, "Ethanol", resp.Name)
	assert.Equal(t, "C2H6O", resp.MolecularFormula)
	assert.Equal(t, "CCO", resp.SMILES)

	pc.On("GetCompoundByCAS", mock.Anything, "0-0-0").Return(nil, code.RPCHttpErr.WithErr(errors.New("boom")))
	_, err = svc.QueryCAS(ctx, &core.CasReq{CAS: "0-0-0"})
	assert.ErrorIs(t, err, code.RPCHttpErr)
}

func TestOptions(t *testing.T) {
	svc := newService(memstore.New())
	opts := svc.Options(context.Background())

	assert.Len(t, opts.Locations, 10)
	assert.Len(t, opts.Appearances, 4)
	require.Len(t, opts.LidColors, 6)
	assert.Equal(t, model.LidWhite, opts.LidColors[0].Key)
	assert.Equal(t, "⚪ White", opts.LidColors[0].Label)
}
