// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/feedwise/feedmix-service/internal/domain/model"
)

type MockFeedMixRepositoryInterface struct {
	mock.Mock
}

func (m *MockFeedMixRepositoryInterface) Insert(ctx context.Context, mix *model.FeedMix) error {
	args := m.Called(ctx, mix)
	return args.Error(0)
}

func (m *MockFeedMixRepositoryInterface) List(ctx context.Context, ownerID string, limit int) ([]model.FeedMix, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeedMix), args.Error(1)
}

func (m *MockFeedMixRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.FeedMix, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FeedMix), args.Error(1)
}

func (m *MockFeedMixRepositoryInterface) Count(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}
