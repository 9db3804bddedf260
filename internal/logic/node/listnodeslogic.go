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

type ListNodesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListNodesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListNodesLogic {
	return &ListNodesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

const maxListLimit = 500

func (l *ListNodesLogic) ListNodes(req *types.ListNodesRequest) (resp *types.ListNodesResponse, err error) {
	limit := req.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	nodes, err := l.svcCtx.Docs.Nodes.List(l.ctx, limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list nodes: " + err.Error())
	}

	total, err := l.svcCtx.Docs.Nodes.Count(l.ctx)
	if err != nil {
		return nil, errorx.ErrInternal("failed to count nodes: " + err.Error())
	}

	resp = &types.ListNodesResponse{
		Nodes: make([]types.NodeResponse, 0, len(nodes)),
		Total: total,
	}
	for _, node := range nodes {
		doc, err := l.svcCtx.Docs.Document(l.ctx, node.Id)
		if err != nil {
			l.Errorw("Skipping unreadable node", logx.Field("id", node.Id), logx.Field("error", err.Error()))
			continue
		}
		resp.Nodes = append(resp.Nodes, types.NewNodeResponse(node, doc))
	}
	return resp, nil
}
