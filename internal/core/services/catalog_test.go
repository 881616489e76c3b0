package services

import (
	"context"
	"errors"
	"testing"

	"github.com/elitemotors/storefront/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type loadResult struct {
	vehicles []domain.Vehicle
	err      error
}

// gatedSource answers each ListCars call with whatever is sent on that
// call's channel. Tests start calls one at a time and pick completion order.
type gatedSource struct {
	started chan int
	replies []chan loadResult
	calls   int
}

func newGatedSource(n int) *gatedSource {
	src := &gatedSource{started: make(chan int, n)}
	for i := 0; i < n; i++ {
		src.replies = append(src.replies, make(chan loadResult, 1))
	}
	return src
}

func (g *gatedSource) ListCars(ctx context.Context) ([]domain.Vehicle, error) {
	call := g.calls
	g.calls++
	g.started <- call
	res := <-g.replies[call]
	return res.vehicles, res.err
}

func TestCatalog_LoadInstallsCatalog(t *testing.T) {
	api := new(mockDealership)
	api.On("ListCars", mock.Anything).Return(sampleCatalog(), nil).Once()
	metrics := &recordingMetrics{}
	catalog := NewCatalog(api, nopLogger{}, metrics)

	assert.False(t, catalog.Loaded())
	assert.Empty(t, catalog.Current())

	vehicles, err := catalog.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)
	assert.True(t, catalog.Loaded())
	assert.Equal(t, vehicles, catalog.Current())
	assert.Equal(t, []string{loadSuccess}, metrics.results)
	api.AssertExpectations(t)
}

func TestCatalog_FailureInstallsEmptyCatalog(t *testing.T) {
	api := new(mockDealership)
	api.On("ListCars", mock.Anything).Return(sampleCatalog(), nil).Once()
	api.On("ListCars", mock.Anything).Return(nil, domain.ErrNetwork).Once()
	metrics := &recordingMetrics{}
	catalog := NewCatalog(api, nopLogger{}, metrics)

	_, err := catalog.Load(context.Background())
	require.NoError(t, err)

	vehicles, err := catalog.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles, "a failed reload shows an empty inventory, not the stale one")
	assert.Empty(t, catalog.Current())
	assert.Equal(t, []string{loadSuccess, loadFailure}, metrics.results)
}

func TestCatalog_StaleResponseDoesNotOverwriteNewer(t *testing.T) {
	src := newGatedSource(2)
	metrics := &recordingMetrics{}
	catalog := NewCatalog(src, nopLogger{}, metrics)
	ctx := context.Background()

	older := []domain.Vehicle{{ID: 1, Name: "older"}}
	newer := []domain.Vehicle{{ID: 2, Name: "newer"}}

	firstDone := make(chan loadResult, 1)
	go func() {
		v, err := catalog.Load(ctx)
		firstDone <- loadResult{v, err}
	}()
	require.Equal(t, 0, <-src.started)

	secondDone := make(chan loadResult, 1)
	go func() {
		v, err := catalog.Load(ctx)
		secondDone <- loadResult{v, err}
	}()
	require.Equal(t, 1, <-src.started)

	// The later request resolves first.
	src.replies[1] <- loadResult{vehicles: newer}
	second := <-secondDone
	require.NoError(t, second.err)
	assert.Equal(t, newer, second.vehicles)

	src.replies[0] <- loadResult{vehicles: older}
	first := <-firstDone
	require.NoError(t, first.err)
	assert.Equal(t, newer, first.vehicles, "stale caller sees the newer snapshot")

	assert.Equal(t, newer, catalog.Current())
	assert.Equal(t, []string{loadSuccess, loadStale}, metrics.results)
}

func TestCatalog_StaleFailureDoesNotEmptyNewer(t *testing.T) {
	src := newGatedSource(2)
	catalog := NewCatalog(src, nopLogger{}, &recordingMetrics{})
	ctx := context.Background()

	newer := []domain.Vehicle{{ID: 2, Name: "newer"}}

	firstDone := make(chan error, 1)
	go func() {
		_, err := catalog.Load(ctx)
		firstDone <- err
	}()
	<-src.started

	secondDone := make(chan struct{})
	go func() {
		_, _ = catalog.Load(ctx)
		close(secondDone)
	}()
	<-src.started

	src.replies[1] <- loadResult{vehicles: newer}
	<-secondDone

	src.replies[0] <- loadResult{err: errors.New("connection reset")}
	assert.Error(t, <-firstDone)
	assert.Equal(t, newer, catalog.Current())
}
