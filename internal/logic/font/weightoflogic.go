// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package font

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/font"

	"github.com/zeromicro/go-zero/core/logx"
)

type WeightOfLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWeightOfLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WeightOfLogic {
	return &WeightOfLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *WeightOfLogic) WeightOf(req *types.WeightOfRequest) (resp *types.WeightOfResponse, err error) {
	return &types.WeightOfResponse{
		Name:   req.Name,
		Weight: font.WeightToNumber(req.Name),
	}, nil
}
