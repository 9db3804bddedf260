// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package convert

import (
	"net/http"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/logic/convert"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ConvertHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ConvertRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrBadRequest(err.Error()))
			return
		}

		l := convert.NewConvertLogic(r.Context(), svcCtx)
		resp, err := l.Convert(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
