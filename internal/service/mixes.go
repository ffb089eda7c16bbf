package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/feedwise/feedmix-service/internal/domain/dto"
	"github.com/feedwise/feedmix-service/internal/domain/model"
	"github.com/feedwise/feedmix-service/internal/repository"
)

var (
	// ErrMixNotFound is returned when a saved mix does not exist.
	ErrMixNotFound = errors.New("mix not found")
	// ErrInvalidMixID is returned when a mix ID is not a valid ObjectID.
	ErrInvalidMixID = errors.New("invalid mix id")
)

// MixService finalizes and retrieves saved feed mixes. Saving runs the
// formulation engine so the stored record carries the computed nutrient
// blend, findings, and cost at save time.
type MixService interface {
	// SaveMix formulates the mix and persists it as a new document.
	SaveMix(ctx context.Context, req *dto.SaveMixRequest, ownerID string) (*model.FeedMix, error)

	// ListMixes returns saved mixes newest-first, optionally per owner.
	ListMixes(ctx context.Context, ownerID string, limit int) ([]model.FeedMix, error)

	// GetMix returns a saved mix by its hex ID.
	GetMix(ctx context.Context, id string) (*model.FeedMix, error)
}

// MixServiceImpl implements the MixService interface.
type MixServiceImpl struct {
	formulator Formulator
	repo       repository.FeedMixRepositoryInterface
}

// NewMixService creates a new mix service implementation.
func NewMixService(formulator Formulator, repo repository.FeedMixRepositoryInterface) MixService {
	return &MixServiceImpl{
		formulator: formulator,
		repo:       repo,
	}
}

// SaveMix formulates the mix and persists it as a new document.
// The request is expected to be validated already; mixes are append-only
// so a repeated save creates a new record.
func (s *MixServiceImpl) SaveMix(ctx context.Context, req *dto.SaveMixRequest, ownerID string) (*model.FeedMix, error) {
	components := req.DomainComponents()
	result := s.formulator.Formulate(components, req.Mode(), req.Profile())

	mix := &model.FeedMix{
		Name:             req.Name,
		Species:          model.Species(req.Species),
		Goal:             model.Goal(req.Goal),
		AgeClass:         model.AgeClass(req.AgeClass),
		BirdWeightKg:     req.BirdWeightKg,
		UnitMode:         req.Mode(),
		Components:       components,
		BlendedNutrients: result.Nutrients,
		CostPerKg:        result.CostPerKg,
		Findings:         result.Findings,
		OwnerID:          ownerID,
	}

	if err := s.repo.Insert(ctx, mix); err != nil {
		return nil, err
	}
	return mix, nil
}

// ListMixes returns saved mixes newest-first, optionally per owner.
func (s *MixServiceImpl) ListMixes(ctx context.Context, ownerID string, limit int) ([]model.FeedMix, error) {
	return s.repo.List(ctx, ownerID, limit)
}

// GetMix returns a saved mix by its hex ID.
func (s *MixServiceImpl) GetMix(ctx context.Context, id string) (*model.FeedMix, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidMixID
	}

	mix, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if mix == nil {
		return nil, ErrMixNotFound
	}
	return mix, nil
}
