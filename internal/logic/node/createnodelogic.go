// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package node

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateNodeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateNodeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateNodeLogic {
	return &CreateNodeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateNodeLogic) CreateNode(req *types.CreateNodeRequest) (resp *types.NodeResponse, err error) {
	doc, err := documentFrom(req)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	id, err := l.svcCtx.Docs.Create(l.ctx, req.Name, doc)
	if err != nil {
		return nil, errorx.ErrInternal("failed to store node: " + err.Error())
	}

	node, err := l.svcCtx.Docs.Nodes.FindOne(l.ctx, id)
	if err != nil {
		return nil, errorx.FromError(err)
	}

	l.Infow("Node created",
		logx.Field("id", id),
		logx.Field("characters", doc.Len()),
		logx.Field("runs", len(doc.Runs())),
	)

	out := types.NewNodeResponse(node, doc)
	return &out, nil
}

// documentFrom builds the node document from explicit runs, or from a single
// font covering the whole text.
func documentFrom(req *types.CreateNodeRequest) (*host.Document, error) {
	if len(req.Runs) == 0 {
		if req.Family == "" {
			return nil, errorx.ErrBadRequest("family is required when no runs are given")
		}
		return host.NewDocument(req.Text, font.FontName{Family: req.Family, Style: req.Style}), nil
	}

	runs := make([]host.Run, 0, len(req.Runs))
	for _, r := range req.Runs {
		runs = append(runs, host.Run{
			Start: r.Start,
			End:   r.End,
			Font:  font.FontName{Family: r.Family, Style: r.Style},
		})
	}
	return host.FromRuns(req.Text, runs)
}
