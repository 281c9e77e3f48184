package handler

import (
	"context"

	"github.com/Astemirdum/bookaloo/stats/internal/model"
	"github.com/Astemirdum/bookaloo/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context, visitorIdentifier string) ([]model.VisitorStats, error)
}

var _ StatsService = (*service.Service)(nil)
