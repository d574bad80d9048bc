package queries

import (
	"context"

	"github.com/google/uuid"
)

type CarQueries interface {
	List(ctx context.Context, region *string) ([]*CarView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CarView, error)
}

type carQueriesImpl struct {
	repo CarViewRepo
}

func NewCarQueries(repo CarViewRepo) CarQueries {
	return &carQueriesImpl{repo: repo}
}

func (q *carQueriesImpl) List(ctx context.Context, region *string) ([]*CarView, error) {
	return q.repo.FindAll(ctx, region)
}

func (q *carQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CarView, error) {
	return q.repo.FindByID(ctx, id)
}
