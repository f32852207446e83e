package inventory

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"doctigo/models"
)

// Availability is a point-in-time view of one stock's free/total counts.
type Availability struct {
	BedType models.BedType `json:"bedType"`
	Free    int            `json:"free"`
	Total   int            `json:"total"`
}

type stockKey struct {
	hospitalID string
	bedType    models.BedType
}

type stock struct {
	total     int
	preBooked int
	// issued holds serials handed out during this process lifetime. Serials
	// 1..preBooked belong to the startup baseline and are never issued.
	issued map[int]bool
}

func (s *stock) used() int {
	return s.preBooked + len(s.issued)
}

// Manager owns the bed/cabin stock for every hospital and hands out unit
// serials. It is the only shared mutable resource across sessions: the
// exhaustion check and the serial issue run inside one critical section so two
// concurrent reservations can never share a serial or race past capacity.
// There is no release path; free counts only ever decrease.
type Manager struct {
	mu     sync.Mutex
	stocks map[stockKey]*stock
	logger *zap.Logger
}

// NewManager materializes the unit sets described by the startup configuration.
func NewManager(stocks []models.BedStock, logger *zap.Logger) *Manager {
	m := &Manager{
		stocks: make(map[stockKey]*stock, len(stocks)),
		logger: logger,
	}
	for _, cfg := range stocks {
		m.stocks[stockKey{cfg.HospitalID, cfg.Type}] = &stock{
			total:     cfg.Total,
			preBooked: cfg.PreBooked,
			issued:    make(map[int]bool),
		}
	}
	return m
}

// Reserve issues the lowest free serial for the given hospital and bed type,
// or ErrUnavailable when the stock is exhausted. Issuance is final: there is
// no rollback, so an abandoned session leaks nothing it hasn't committed.
func (m *Manager) Reserve(hospitalID string, bedType models.BedType) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.stocks[stockKey{hospitalID, bedType}]
	if !ok {
		return 0, ErrUnknownStock
	}
	if st.used() >= st.total {
		m.logger.Warn("bed stock exhausted",
			zap.String("hospitalId", hospitalID),
			zap.String("bedType", string(bedType)))
		return 0, ErrUnavailable
	}

	// Lowest unissued serial, skipping the pre-booked baseline.
	serial := 1
	for serial <= st.preBooked || st.issued[serial] {
		serial++
	}
	st.issued[serial] = true

	m.logger.Info("bed unit reserved",
		zap.String("hospitalId", hospitalID),
		zap.String("bedType", string(bedType)),
		zap.Int("serial", serial),
		zap.Int("used", st.used()),
		zap.Int("total", st.total))
	return serial, nil
}

// Availability reports free/total counts for one (hospital, bed type) pair.
func (m *Manager) Availability(hospitalID string, bedType models.BedType) (free, total int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.stocks[stockKey{hospitalID, bedType}]
	if !ok {
		return 0, 0, ErrUnknownStock
	}
	return st.total - st.used(), st.total, nil
}

// HospitalAvailability reports free/total counts for every bed type stocked at
// the given hospital. Display use only; the reserve path re-checks under lock.
func (m *Manager) HospitalAvailability(hospitalID string) []Availability {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Availability
	for key, st := range m.stocks {
		if key.hospitalID != hospitalID {
			continue
		}
		out = append(out, Availability{
			BedType: key.bedType,
			Free:    st.total - st.used(),
			Total:   st.total,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BedType < out[j].BedType })
	return out
}
