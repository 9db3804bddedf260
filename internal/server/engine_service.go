package server

import "github.com/joeblew999/plat-bionic/internal/engine"

// engineService adapts engine.Engine to the service.Service interface.
type engineService struct {
	engine *engine.Engine
}

func newEngineService(engine *engine.Engine) *engineService {
	return &engineService{engine: engine}
}

func (s *engineService) Start() {
	s.engine.Start()
}

func (s *engineService) Stop() {
	s.engine.Stop()
}
