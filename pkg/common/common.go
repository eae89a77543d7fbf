package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wen89126-oss/lab-compound-db/pkg/common/code"
)

// Response is the JSON envelope every handler replies with.
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// Reply writes data on success or maps err onto the envelope. Handlers pass the
// service result straight through: common.Reply(ctx, err, resp).
func Reply(g *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(g, err)
		return
	}

	resp := &Response{Code: 0, Msg: "ok"}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	g.JSON(http.StatusOK, resp)
}

// ReplyErr maps an error to its HTTP status. Unknown error types degrade to an
// opaque 500 so internals never leak.
func ReplyErr(g *gin.Context, err error) {
	var ec *code.ErrCode
	if errors.As(err, &ec) {
		g.JSON(ec.HTTPCode, &Response{Code: ec.Code, Msg: ec.Msg})
		return
	}
	g.JSON(http.StatusInternalServerError, &Response{
		Code: code.UnDefineErr.Code,
		Msg:  code.UnDefineErr.Msg,
	})
}
