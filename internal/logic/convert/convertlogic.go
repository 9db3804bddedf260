// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package convert

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/bionic"

	"github.com/zeromicro/go-zero/core/logx"
)

type ConvertLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConvertLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConvertLogic {
	return &ConvertLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ConvertLogic) Convert(req *types.ConvertRequest) (resp *types.ConvertResponse, err error) {
	s := bionic.Settings{FixationStrength: req.FixationStrength, Contrast: req.Contrast}

	summary, err := l.svcCtx.Engine.ConvertNow(l.ctx, req.NodeIds, s)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	return types.NewConvertResponse(summary), nil
}
