// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/font"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListFontStylesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListFontStylesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListFontStylesLogic {
	return &ListFontStylesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListFontStylesLogic) ListFontStyles(req *types.ListFontStylesRequest) (resp *types.ListFontStylesResponse, err error) {
	styles := l.svcCtx.Catalog.StylesFor(req.Family)
	if len(styles) == 0 {
		return nil, errorx.ErrNotFound("font family not found: " + req.Family)
	}

	resp = &types.ListFontStylesResponse{
		Family: req.Family,
		Styles: make([]types.FontStyleInfo, 0, len(styles)),
	}
	for _, style := range styles {
		resp.Styles = append(resp.Styles, types.FontStyleInfo{
			Style:  style,
			Weight: font.WeightToNumber(style),
		})
	}
	return resp, nil
}
