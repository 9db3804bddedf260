// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package conversion

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetConversionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetConversionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetConversionLogic {
	return &GetConversionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetConversionLogic) GetConversion(req *types.GetConversionRequest) (resp *types.ConversionResponse, err error) {
	conv, err := l.svcCtx.Conversions.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	events, err := l.svcCtx.Events.FindByConversion(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.ErrInternal("failed to load events: " + err.Error())
	}

	return types.NewConversionResponse(conv, events), nil
}
