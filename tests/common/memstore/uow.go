//go:build unit || e2e

package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"showroom-scheduler/internal/domain/appointment"
	"showroom-scheduler/internal/domain/resource"
	"showroom-scheduler/internal/infra"
	"showroom-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is an in-memory shared.UnitOfWork. Transactions are serialized by a
// single mutex and applied copy-on-write, so a failed transaction leaves no trace.
type Store struct {
	mu           sync.Mutex
	customers    map[uuid.UUID]struct{}
	agents       map[uuid.UUID]struct{}
	cars         map[uuid.UUID]struct{}
	appointments map[uuid.UUID]appointment.Record
	jobs         []shared.NotificationJob

	// LockCalls counts LockResource calls, keyed by lock key.
	LockCalls map[string]int
}

func New() *Store {
	return &Store{
		customers:    map[uuid.UUID]struct{}{},
		agents:       map[uuid.UUID]struct{}{},
		cars:         map[uuid.UUID]struct{}{},
		appointments: map[uuid.UUID]appointment.Record{},
		LockCalls:    map[string]int{},
	}
}

func (s *Store) AddCustomer(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[id] = struct{}{}
}

// AddAgent registers a staff user who may be assigned on confirm.
func (s *Store) AddAgent(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[id] = struct{}{}
}

func (s *Store) AddCar(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars[id] = struct{}{}
}

// Put stores an appointment directly, bypassing every rule.
func (s *Store) Put(a *appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID()] = a.ToRecord()
}

func (s *Store) Get(id uuid.UUID) (*appointment.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.appointments[id]
	if !ok {
		return nil, false
	}
	return appointment.ReconstructAppointment(r), true
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.appointments)
}

func (s *Store) Jobs() []shared.NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.NotificationJob, len(s.jobs))
	copy(out, s.jobs)
	return out
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s, state: s.snapshot()}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.state.checkExclusion(); err != nil {
		return err
	}
	s.appointments = tx.state.appointments
	s.jobs = tx.state.jobs
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memReads{store: s, state: s.snapshot()})
}

type state struct {
	appointments map[uuid.UUID]appointment.Record
	jobs         []shared.NotificationJob
}

func (s *Store) snapshot() *state {
	appts := make(map[uuid.UUID]appointment.Record, len(s.appointments))
	for k, v := range s.appointments {
		appts[k] = v
	}
	jobs := make([]shared.NotificationJob, len(s.jobs))
	copy(jobs, s.jobs)
	return &state{appointments: appts, jobs: jobs}
}

// checkExclusion mirrors the database exclusion constraint on active intervals.
func (st *state) checkExclusion() error {
	active := make([]appointment.Record, 0, len(st.appointments))
	for _, r := range st.appointments {
		if r.Status.IsActive() {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Start.Before(active[j].Start) })
	for i := 1; i < len(active); i++ {
		prevEnd := active[i-1].Start.Add(time.Duration(active[i-1].DurationMinutes) * time.Minute)
		if active[i].Start.Before(prevEnd) {
			return infra.WrapRepoErr("appointments_no_overlap", nil, infra.KindConflict)
		}
	}
	return nil
}

type memTx struct {
	store *Store
	state *state
}

func (t *memTx) LockResource(_ context.Context, res resource.Resource) error {
	t.store.LockCalls[res.LockKey()]++
	return nil
}

func (t *memTx) Appointments() shared.AppointmentRepository {
	return &memAppointments{state: t.state}
}

func (t *memTx) Notifications() shared.NotificationRepository {
	return &memNotifications{state: t.state}
}

func (t *memTx) Reads() shared.CommandReads {
	return &memReads{store: t.store, state: t.state}
}

type memAppointments struct {
	state *state
}

func (r *memAppointments) Create(_ context.Context, a *appointment.Appointment) error {
	if _, ok := r.state.appointments[a.ID()]; ok {
		return infra.WrapRepoErr("appointment already exists", nil, infra.KindDuplicateKey)
	}
	r.state.appointments[a.ID()] = a.ToRecord()
	return nil
}

func (r *memAppointments) Update(_ context.Context, a *appointment.Appointment) error {
	if _, ok := r.state.appointments[a.ID()]; !ok {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	r.state.appointments[a.ID()] = a.ToRecord()
	return nil
}

type memNotifications struct {
	state *state
}

func (n *memNotifications) Enqueue(_ context.Context, job shared.NotificationJob) error {
	n.state.jobs = append(n.state.jobs, job)
	return nil
}

func (n *memNotifications) ClaimDue(_ context.Context, now time.Time, limit int32) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for i := range n.state.jobs {
		j := &n.state.jobs[i]
		if int32(len(out)) >= limit { // #nosec G115 -- test store
			break
		}
		if (j.Status == shared.JobStatusQueued || j.Status == shared.JobStatusFailed) && !j.RunAt.After(now) {
			j.Attempts++
			j.RunAt = now.Add(time.Minute)
			out = append(out, *j)
		}
	}
	return out, nil
}

func (n *memNotifications) MarkSent(_ context.Context, id uuid.UUID) error {
	for i := range n.state.jobs {
		if n.state.jobs[i].ID == id {
			n.state.jobs[i].Status = shared.JobStatusSent
			n.state.jobs[i].LastError = nil
		}
	}
	return nil
}

func (n *memNotifications) MarkFailed(_ context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error {
	for i := range n.state.jobs {
		if n.state.jobs[i].ID != id {
			continue
		}
		n.state.jobs[i].Status = shared.JobStatusFailed
		if dead {
			n.state.jobs[i].Status = shared.JobStatusDead
		}
		msg := lastError
		n.state.jobs[i].LastError = &msg
		n.state.jobs[i].RunAt = nextRunAt
	}
	return nil
}

// memReads reads the transaction's snapshot. Callers already hold the store lock.
type memReads struct {
	store *Store
	state *state
}

func (r *memReads) ActiveIntervals(_ context.Context, from, to time.Time) ([]appointment.BookedInterval, error) {
	var out []appointment.BookedInterval
	for _, rec := range r.state.appointments {
		if !rec.Status.IsActive() {
			continue
		}
		end := rec.Start.Add(time.Duration(rec.DurationMinutes) * time.Minute)
		if rec.Start.Before(to) && from.Before(end) {
			out = append(out, appointment.BookedInterval{ID: rec.ID, Start: rec.Start, End: end})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *memReads) AppointmentForUpdate(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	rec, ok := r.state.appointments[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return appointment.ReconstructAppointment(rec), nil
}

func (r *memReads) CustomerExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.store.customers[id]
	return ok, nil
}

func (r *memReads) AgentExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.store.agents[id]
	return ok, nil
}

func (r *memReads) CarExists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.store.cars[id]
	return ok, nil
}
