package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"NFTMarketLedger/src/errcode"
)

// Response 统一响应体,code=200为成功
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: errcode.CodeOK,
		Msg:  "success",
		Data: data,
	})
}

// Error 业务错误统一从这里出口,账本错误翻译成对外错误码,其余按未知错误兜底
func Error(c *gin.Context, err error) {
	e, ok := err.(*errcode.Err)
	if !ok {
		e = errcode.FromLedgerErr(err)
	}
	c.JSON(http.StatusOK, Response{
		Code: e.Code(),
		Msg:  e.Error(),
	})
}
