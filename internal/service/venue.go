package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// relocationCascade re-evaluates travel verdicts for future games at a
// venue whose coordinates changed.
type relocationCascade interface {
	OnVenueRelocated(ctx context.Context, venue *domain.Venue, from time.Time) error
}

// VenueService manages venues. Coordinates are derived from the address:
// every address change re-geocodes before anything relying on the venue's
// position runs, and a coordinate change triggers the relocation cascade.
type VenueService struct {
	repo     ports.VenueRepo
	geocoder ports.Geocoder
	cascade  relocationCascade
	logger   logger.Logger
}

func NewVenueService(repo ports.VenueRepo, geocoder ports.Geocoder, cascade relocationCascade, logger logger.Logger) *VenueService {
	return &VenueService{
		repo:     repo,
		geocoder: geocoder,
		cascade:  cascade,
		logger:   logger,
	}
}

func (s *VenueService) Create(ctx context.Context, input domain.VenueInput) (*domain.Venue, error) {
	if err := validateVenue(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	venue := &domain.Venue{
		ID:             uuid.New().String(),
		Name:           input.Name,
		BuildingNumber: input.BuildingNumber,
		Street:         input.Street,
		City:           input.City,
		PostalCode:     input.PostalCode,
		Country:        input.Country,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.geocode(ctx, venue)

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}

	return venue, nil
}

func (s *VenueService) Update(ctx context.Context, id string, input domain.VenueInput) (*domain.Venue, error) {
	if err := validateVenue(input); err != nil {
		return nil, err
	}

	venue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	addressChanged := venue.BuildingNumber != input.BuildingNumber ||
		venue.Street != input.Street ||
		venue.City != input.City ||
		venue.PostalCode != input.PostalCode ||
		venue.Country != input.Country

	venue.Name = input.Name
	venue.BuildingNumber = input.BuildingNumber
	venue.Street = input.Street
	venue.City = input.City
	venue.PostalCode = input.PostalCode
	venue.Country = input.Country
	venue.UpdatedAt = time.Now().UTC()

	moved := false
	if addressChanged {
		before, hadCoords := venue.Coordinates()
		s.geocode(ctx, venue)
		after, hasCoords := venue.Coordinates()
		moved = hadCoords != hasCoords || (hasCoords && before != after)
	}

	if err = s.repo.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}

	if moved {
		if err = s.cascade.OnVenueRelocated(ctx, venue, time.Now().UTC()); err != nil {
			return nil, fmt.Errorf("relocation cascade: %w", err)
		}
	}

	return venue, nil
}

func (s *VenueService) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context) ([]*domain.Venue, error) {
	return s.repo.List(ctx)
}

// geocode resolves the venue's address. A miss clears the coordinates:
// conflict checks involving an ungeocoded venue are skipped rather than run
// against stale positions.
func (s *VenueService) geocode(ctx context.Context, venue *domain.Venue) {
	coords, ok := s.geocoder.Geocode(ctx, venue.Address())
	if !ok {
		s.logger.Warn("venue geocoding failed",
			logger.String("venue_id", venue.ID),
			logger.String("address", venue.Address()),
		)
		venue.Latitude = nil
		venue.Longitude = nil
		return
	}
	venue.Latitude = &coords.Lat
	venue.Longitude = &coords.Lon
}

func validateVenue(input domain.VenueInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Street == "" || input.City == "" || input.Country == "" {
		return fmt.Errorf("%w: street, city and country are required", domain.ErrValidation)
	}
	return nil
}
