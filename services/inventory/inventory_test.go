package inventory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doctigo/models"
)

func newTestManager(stocks ...models.BedStock) *Manager {
	return NewManager(stocks, zap.NewNop())
}

func TestReserveIssuesLowestSerialAboveBaseline(t *testing.T) {
	m := newTestManager(models.BedStock{
		HospitalID: "hosp-city",
		Type:       models.BedTypeGeneralBed,
		Total:      20,
		PreBooked:  12,
	})

	serial, err := m.Reserve("hosp-city", models.BedTypeGeneralBed)
	require.NoError(t, err)
	assert.Equal(t, 13, serial)

	serial, err = m.Reserve("hosp-city", models.BedTypeGeneralBed)
	require.NoError(t, err)
	assert.Equal(t, 14, serial)
}

func TestReserveSingleUnitNoBaseline(t *testing.T) {
	m := newTestManager(models.BedStock{
		HospitalID: "hosp-city",
		Type:       models.BedTypeVIPCabin,
		Total:      1,
		PreBooked:  0,
	})

	serial, err := m.Reserve("hosp-city", models.BedTypeVIPCabin)
	require.NoError(t, err)
	assert.Equal(t, 1, serial)

	_, err = m.Reserve("hosp-city", models.BedTypeVIPCabin)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReserveExhaustionIsPermanent(t *testing.T) {
	m := newTestManager(models.BedStock{
		HospitalID: "hosp-greenview",
		Type:       models.BedTypeVIPCabin,
		Total:      2,
		PreBooked:  1,
	})

	serial, err := m.Reserve("hosp-greenview", models.BedTypeVIPCabin)
	require.NoError(t, err)
	assert.Equal(t, 2, serial)

	// No release path: once exhausted, every further attempt fails.
	for i := 0; i < 3; i++ {
		_, err = m.Reserve("hosp-greenview", models.BedTypeVIPCabin)
		assert.ErrorIs(t, err, ErrUnavailable)
	}
}

func TestReserveUnknownStock(t *testing.T) {
	m := newTestManager()

	_, err := m.Reserve("hosp-nowhere", models.BedTypeGeneralBed)
	assert.ErrorIs(t, err, ErrUnknownStock)
}

func TestReserveStocksAreIndependent(t *testing.T) {
	m := newTestManager(
		models.BedStock{HospitalID: "hosp-city", Type: models.BedTypeGeneralBed, Total: 1, PreBooked: 0},
		models.BedStock{HospitalID: "hosp-city", Type: models.BedTypeGeneralCabin, Total: 1, PreBooked: 0},
		models.BedStock{HospitalID: "hosp-munni", Type: models.BedTypeGeneralBed, Total: 1, PreBooked: 0},
	)

	_, err := m.Reserve("hosp-city", models.BedTypeGeneralBed)
	require.NoError(t, err)

	// Exhausting one stock leaves the sibling stocks untouched.
	_, err = m.Reserve("hosp-city", models.BedTypeGeneralCabin)
	assert.NoError(t, err)
	_, err = m.Reserve("hosp-munni", models.BedTypeGeneralBed)
	assert.NoError(t, err)
	_, err = m.Reserve("hosp-city", models.BedTypeGeneralBed)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReserveConcurrent(t *testing.T) {
	const (
		total     = 20
		preBooked = 12
		attempts  = 50
	)
	m := newTestManager(models.BedStock{
		HospitalID: "hosp-city",
		Type:       models.BedTypeGeneralBed,
		Total:      total,
		PreBooked:  preBooked,
	})

	var (
		mu      sync.Mutex
		serials []int
		wg      sync.WaitGroup
	)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			serial, err := m.Reserve("hosp-city", models.BedTypeGeneralBed)
			if err != nil {
				return
			}
			mu.Lock()
			serials = append(serials, serial)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Successes never exceed capacity, and every serial is distinct and
	// outside the pre-booked baseline.
	assert.Len(t, serials, total-preBooked)
	seen := make(map[int]bool, len(serials))
	for _, s := range serials {
		assert.Greater(t, s, preBooked)
		assert.LessOrEqual(t, s, total)
		assert.False(t, seen[s], "serial %d issued twice", s)
		seen[s] = true
	}
}

func TestAvailability(t *testing.T) {
	m := newTestManager(models.BedStock{
		HospitalID: "hosp-city",
		Type:       models.BedTypeGeneralCabin,
		Total:      8,
		PreBooked:  5,
	})

	free, total, err := m.Availability("hosp-city", models.BedTypeGeneralCabin)
	require.NoError(t, err)
	assert.Equal(t, 3, free)
	assert.Equal(t, 8, total)

	_, err = m.Reserve("hosp-city", models.BedTypeGeneralCabin)
	require.NoError(t, err)

	free, _, err = m.Availability("hosp-city", models.BedTypeGeneralCabin)
	require.NoError(t, err)
	assert.Equal(t, 2, free)

	_, _, err = m.Availability("hosp-city", models.BedTypeVIPCabin)
	assert.ErrorIs(t, err, ErrUnknownStock)
}

func TestHospitalAvailabilitySortedByBedType(t *testing.T) {
	m := newTestManager(
		models.BedStock{HospitalID: "hosp-city", Type: models.BedTypeVIPCabin, Total: 2, PreBooked: 1},
		models.BedStock{HospitalID: "hosp-city", Type: models.BedTypeGeneralBed, Total: 20, PreBooked: 12},
		models.BedStock{HospitalID: "hosp-city", Type: models.BedTypeGeneralCabin, Total: 8, PreBooked: 5},
		models.BedStock{HospitalID: "hosp-munni", Type: models.BedTypeGeneralBed, Total: 20, PreBooked: 12},
	)

	got := m.HospitalAvailability("hosp-city")
	require.Len(t, got, 3)
	assert.Equal(t, []Availability{
		{BedType: models.BedTypeGeneralBed, Free: 8, Total: 20},
		{BedType: models.BedTypeGeneralCabin, Free: 3, Total: 8},
		{BedType: models.BedTypeVIPCabin, Free: 1, Total: 2},
	}, got)

	assert.Empty(t, m.HospitalAvailability("hosp-nowhere"))
}
