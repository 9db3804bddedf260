// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package node

import (
	"context"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/export"

	"github.com/zeromicro/go-zero/core/logx"
)

type ExportNodeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewExportNodeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ExportNodeLogic {
	return &ExportNodeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ExportNodeLogic) ExportNode(req *types.ExportNodeRequest) (string, error) {
	doc, err := l.svcCtx.Docs.Document(l.ctx, req.Id)
	if err != nil {
		return "", errorx.FromError(err)
	}

	var out string
	switch req.Format {
	case "email":
		out, err = l.svcCtx.Email.Render(doc)
	default:
		out, err = export.RenderHTML(doc)
	}
	if err != nil {
		return "", errorx.ErrInternal("export failed: " + err.Error())
	}
	return out, nil
}
