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

func GetConversionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetConversionRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrBadRequest(err.Error()))
			return
		}

		l := conversion.NewGetConversionLogic(r.Context(), svcCtx)
		resp, err := l.GetConversion(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
