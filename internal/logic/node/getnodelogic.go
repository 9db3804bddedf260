// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package node

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetNodeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetNodeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetNodeLogic {
	return &GetNodeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetNodeLogic) GetNode(req *types.GetNodeRequest) (resp *types.NodeResponse, err error) {
	node, err := l.svcCtx.Docs.Nodes.FindOne(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	doc, err := l.svcCtx.Docs.Document(l.ctx, req.Id)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	out := types.NewNodeResponse(node, doc)
	return &out, nil
}
