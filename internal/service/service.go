package service

import (
	"log/slog"

	"github.com/hance08/cardcore/internal/config"
	"github.com/hance08/cardcore/internal/store"
)

type Service struct {
	Processor *Processor
	Query     *QueryService
	Card      *CardService
	Config    *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, log *slog.Logger) *Service {
	return &Service{
		Processor: NewProcessor(repo, cfg, log),
		Query:     NewQueryService(repo),
		Card:      NewCardService(repo, log),
		Config:    cfg,
	}
}
