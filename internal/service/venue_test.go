package service

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubCascade records relocation cascade invocations.
type stubCascade struct {
	calls []string
	err   error
}

func (s *stubCascade) OnVenueRelocated(_ context.Context, venue *domain.Venue, _ time.Time) error {
	s.calls = append(s.calls, venue.ID)
	return s.err
}

func venueInput() domain.VenueInput {
	return domain.VenueInput{
		Name:           "Central Courts",
		BuildingNumber: "12",
		Street:         "Main",
		City:           "Warsaw",
		PostalCode:     "00-001",
		Country:        "Poland",
	}
}

func TestVenueService_Create_Geocodes(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	cascade := &stubCascade{}
	svc := NewVenueService(repo, geocoder, cascade, newTestLogger(t))

	geocoder.EXPECT().Geocode(mock.Anything, "12 Main, 00-001 Warsaw, Poland").
		Return(domain.Coordinates{Lat: 52.2297, Lon: 21.0122}, true)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), venueInput())

	require.NoError(t, err)
	require.NotNil(t, venue.Latitude)
	assert.InDelta(t, 52.2297, *venue.Latitude, 0.0001)
	require.NotNil(t, venue.Longitude)
	assert.InDelta(t, 21.0122, *venue.Longitude, 0.0001)
	assert.Empty(t, cascade.calls)
}

func TestVenueService_Create_GeocodeMissLeavesNoCoords(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	svc := NewVenueService(repo, geocoder, &stubCascade{}, newTestLogger(t))

	geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).Return(domain.Coordinates{}, false)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Create(context.Background(), venueInput())

	require.NoError(t, err)
	assert.Nil(t, venue.Latitude)
	assert.Nil(t, venue.Longitude)
}

func TestVenueService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	svc := NewVenueService(repo, geocoder, &stubCascade{}, newTestLogger(t))

	input := venueInput()
	input.City = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVenueService_Update_AddressChangeTriggersCascade(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	cascade := &stubCascade{}
	svc := NewVenueService(repo, geocoder, cascade, newTestLogger(t))

	existing := &domain.Venue{
		ID:             "v1",
		Name:           "Central Courts",
		BuildingNumber: "12",
		Street:         "Main",
		City:           "Warsaw",
		PostalCode:     "00-001",
		Country:        "Poland",
		Latitude:       coordsPtr(52.2297),
		Longitude:      coordsPtr(21.0122),
	}

	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	geocoder.EXPECT().Geocode(mock.Anything, "77 Nowa, 00-001 Warsaw, Poland").
		Return(domain.Coordinates{Lat: 52.30, Lon: 21.20}, true)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	input := venueInput()
	input.BuildingNumber = "77"
	input.Street = "Nowa"

	venue, err := svc.Update(context.Background(), "v1", input)

	require.NoError(t, err)
	assert.InDelta(t, 52.30, *venue.Latitude, 0.0001)
	assert.Equal(t, []string{"v1"}, cascade.calls)
}

func TestVenueService_Update_NameOnlySkipsGeocode(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	cascade := &stubCascade{}
	svc := NewVenueService(repo, geocoder, cascade, newTestLogger(t))

	existing := &domain.Venue{
		ID:             "v1",
		Name:           "Old name",
		BuildingNumber: "12",
		Street:         "Main",
		City:           "Warsaw",
		PostalCode:     "00-001",
		Country:        "Poland",
		Latitude:       coordsPtr(52.2297),
		Longitude:      coordsPtr(21.0122),
	}

	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	venue, err := svc.Update(context.Background(), "v1", venueInput())

	require.NoError(t, err)
	assert.Equal(t, "Central Courts", venue.Name)
	assert.InDelta(t, 52.2297, *venue.Latitude, 0.0001)
	assert.Empty(t, cascade.calls)
}

func TestVenueService_Update_SameCoordinatesSkipsCascade(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	cascade := &stubCascade{}
	svc := NewVenueService(repo, geocoder, cascade, newTestLogger(t))

	existing := &domain.Venue{
		ID:             "v1",
		Name:           "Central Courts",
		BuildingNumber: "12",
		Street:         "Main",
		City:           "Warsaw",
		PostalCode:     "00-002", // postal code fixed, same building
		Country:        "Poland",
		Latitude:       coordsPtr(52.2297),
		Longitude:      coordsPtr(21.0122),
	}

	repo.EXPECT().GetByID(mock.Anything, "v1").Return(existing, nil)
	geocoder.EXPECT().Geocode(mock.Anything, mock.Anything).
		Return(domain.Coordinates{Lat: 52.2297, Lon: 21.0122}, true)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Update(context.Background(), "v1", venueInput())

	require.NoError(t, err)
	assert.Empty(t, cascade.calls)
}

func TestVenueService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockVenueRepo(t)
	geocoder := mocks.NewMockGeocoder(t)
	svc := NewVenueService(repo, geocoder, &stubCascade{}, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.Update(context.Background(), "missing", venueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}
