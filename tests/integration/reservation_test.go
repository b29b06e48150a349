//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luis-duque-azumo/reservation-api/internal/catalog"
	"github.com/luis-duque-azumo/reservation-api/internal/dto"
	"github.com/luis-duque-azumo/reservation-api/internal/repository"
	"github.com/luis-duque-azumo/reservation-api/internal/service"
)

var testCatalog = catalog.New([]catalog.Restaurant{
	{ID: 1, Name: "La Parrilla del Sur", Cuisine: "Argentinian", PriceRange: "$$$"},
})

func newReservationService() service.ReservationService {
	repo := repository.NewReservationRepository(testDB)
	return service.NewReservationService(repo, testCatalog, nil, zap.NewNop())
}

func createRequest(name string) dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		CustomerName:    name,
		PartySize:       2,
		ReservationDate: time.Now().Add(48 * time.Hour).UTC(),
		RestaurantID:    1,
	}
}

func TestCreateAndGetReservation(t *testing.T) {
	cleanTables()
	svc := newReservationService()

	created, err := svc.CreateReservation(context.Background(), createRequest("Ana"))
	require.NoError(t, err)
	assert.Len(t, created.Code, 6)
	assert.Nil(t, created.ConfirmedAt)
	require.NotNil(t, created.Restaurant)
	assert.Equal(t, "La Parrilla del Sur", created.Restaurant.Name)

	fetched, err := svc.GetReservation(context.Background(), created.Code)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Ana", fetched.CustomerName)
}

func TestConfirmReservation_Idempotent(t *testing.T) {
	cleanTables()
	svc := newReservationService()

	created, err := svc.CreateReservation(context.Background(), createRequest("Ana"))
	require.NoError(t, err)

	first, err := svc.ConfirmReservation(context.Background(), created.Code)
	require.NoError(t, err)
	require.NotNil(t, first.ConfirmedAt)

	second, err := svc.ConfirmReservation(context.Background(), created.Code)
	require.NoError(t, err)
	require.NotNil(t, second.ConfirmedAt)
	assert.Equal(t, first.ConfirmedAt.UTC(), second.ConfirmedAt.UTC())
}

// Concurrent confirmations of one reservation must all succeed and agree on
// the confirmation time.
func TestConcurrentConfirm(t *testing.T) {
	cleanTables()
	svc := newReservationService()

	created, err := svc.CreateReservation(context.Background(), createRequest("Ana"))
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	results := make(chan *dto.ReservationResponse, callers)

	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			confirmed, err := svc.ConfirmReservation(context.Background(), created.Code)
			assert.NoError(t, err)
			results <- confirmed
		}()
	}
	wg.Wait()
	close(results)

	var stamps []time.Time
	for confirmed := range results {
		require.NotNil(t, confirmed.ConfirmedAt)
		stamps = append(stamps, confirmed.ConfirmedAt.UTC())
	}
	require.Len(t, stamps, callers)
	for _, stamp := range stamps {
		assert.Equal(t, stamps[0], stamp)
	}
}

func TestListReservations(t *testing.T) {
	cleanTables()
	svc := newReservationService()

	views, err := svc.ListReservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)

	_, err = svc.CreateReservation(context.Background(), createRequest("Ana"))
	require.NoError(t, err)
	_, err = svc.CreateReservation(context.Background(), createRequest("Bruno"))
	require.NoError(t, err)

	views, err = svc.ListReservations(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 2)
}

func TestGetReservation_NotFound(t *testing.T) {
	cleanTables()
	svc := newReservationService()

	_, err := svc.GetReservation(context.Background(), "NOPE22")
	assert.ErrorIs(t, err, service.ErrReservationNotFound)
}
