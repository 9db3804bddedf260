// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package conversion

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/model"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/bionic"

	"github.com/zeromicro/go-zero/core/logx"
)

type SubmitConversionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmitConversionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitConversionLogic {
	return &SubmitConversionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SubmitConversionLogic) SubmitConversion(req *types.ConvertRequest) (resp *types.SubmitConversionResponse, err error) {
	s := bionic.Settings{FixationStrength: req.FixationStrength, Contrast: req.Contrast}

	id, err := l.svcCtx.Engine.Submit(l.ctx, req.NodeIds, s)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	l.Infow("Conversion queued", logx.Field("id", id), logx.Field("nodes", len(req.NodeIds)))
	return &types.SubmitConversionResponse{
		Id:     id,
		Status: model.StatusPending,
	}, nil
}
