// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package convert

import (
	"context"
	"strings"

	"github.com/joeblew999/plat-bionic/internal/errorx"
	"github.com/joeblew999/plat-bionic/internal/svc"
	"github.com/joeblew999/plat-bionic/internal/types"
	"github.com/joeblew999/plat-bionic/pkg/bionic"
	"github.com/joeblew999/plat-bionic/pkg/font"
	"github.com/joeblew999/plat-bionic/pkg/host"

	"github.com/zeromicro/go-zero/core/logx"
)

type SuggestContrastLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSuggestContrastLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestContrastLogic {
	return &SuggestContrastLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SuggestContrastLogic) SuggestContrast(req *types.SuggestContrastRequest) (resp *types.SuggestContrastResponse, err error) {
	nodes := splitIDs(req.Ids)
	if len(nodes) == 0 {
		return nil, errorx.FromError(bionic.ErrNoSelection)
	}

	h := host.NewMemoryHost(font.NewManagerWithCatalog(l.svcCtx.Catalog))
	if err := l.svcCtx.Docs.LoadInto(l.ctx, h, nodes); err != nil {
		return nil, errorx.FromError(err)
	}

	opts := bionic.Analyze(l.ctx, h, nodes)
	return &types.SuggestContrastResponse{
		ContrastSteps: opts.Steps,
		MaxWeights:    opts.MaxWeights,
	}, nil
}

// splitIDs parses a comma separated list of node IDs.
func splitIDs(raw string) []host.NodeID {
	var ids []host.NodeID
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, host.NodeID(id))
		}
	}
	return ids
}
