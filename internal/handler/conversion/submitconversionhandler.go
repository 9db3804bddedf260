// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package conversion

import (
	"net/http"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/logic/conversion"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func SubmitConversionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ConvertRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrBadRequest(err.Error()))
			return
		}

		l := conversion.NewSubmitConversionLogic(r.Context(), svcCtx)
		resp, err := l.SubmitConversion(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
