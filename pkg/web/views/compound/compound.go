package compound

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	common "github.com/wen89126-oss/lab-compound-db/pkg/common"
	code "github.com/wen89126-oss/lab-compound-db/pkg/common/code"
	coreCompound "github.com/wen89126-oss/lab-compound-db/pkg/core/compound"
	compoundImpl "github.com/wen89126-oss/lab-compound-db/pkg/core/compound/compound"
)

type Handle struct{ svc coreCompound.Service }

func NewHandle() *Handle { return &Handle{svc: compoundImpl.New()} }

func (h *Handle) Insert(ctx *gin.Context) {
	in := &coreCompound.InsertReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	resp, err := h.svc.Insert(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Search(ctx *gin.Context) {
	in := &coreCompound.SearchReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.Search(ctx, in)
	common.Reply(ctx, err, resp)
}

// Export replies with the current search result as CSV, same columns as the
// result table. The document is buffered first so a store failure (a busy
// pool included) gets its proper error status instead of a truncated 200.
func (h *Handle) Export(ctx *gin.Context) {
	in := &coreCompound.SearchReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := h.svc.ExportCSV(ctx, in, &buf); err != nil {
		common.ReplyErr(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="chemicals.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handle) RequestDelete(ctx *gin.Context) {
	in := &coreCompound.DeleteRequestReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.RequestDelete(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) ConfirmDelete(ctx *gin.Context) {
	in := &coreCompound.DeleteConfirmReq{}
	if err := ctx.ShouldBindJSON(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	common.Reply(ctx, h.svc.ConfirmDelete(ctx, in))
}

func (h *Handle) QueryCAS(ctx *gin.Context) {
	in := &coreCompound.CasReq{}
	if err := ctx.ShouldBindQuery(in); err != nil {
		common.ReplyErr(ctx, code.ParamErr.WithMsg(err.Error()))
		return
	}
	resp, err := h.svc.QueryCAS(ctx, in)
	common.Reply(ctx, err, resp)
}

func (h *Handle) Options(ctx *gin.Context) {
	common.Reply(ctx, nil, h.svc.Options(ctx))
}
