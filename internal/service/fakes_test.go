package service_test

import (
	"context"
	"time"

	"github.com/appdotbuilder/elegant-wedding-invitation/internal/domain"
)

// ---------- Fakes ----------

type fakeGuestRepo struct {
	nextID int64
	guests map[int64]*domain.Guest
	rsvps  *fakeRsvpRepo
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{
		nextID: 1,
		guests: make(map[int64]*domain.Guest),
	}
}

func (f *fakeGuestRepo) Create(_ context.Context, req *domain.CreateGuestRequest) (*domain.Guest, error) {
	id := f.nextID
	f.nextID++

	g := &domain.Guest{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	f.guests[id] = g
	return g, nil
}

func (f *fakeGuestRepo) GetByID(_ context.Context, id int64) (*domain.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, nil
	}
	return g, nil
}

func (f *fakeGuestRepo) FindByName(_ context.Context, name string) (*domain.Guest, error) {
	for _, g := range f.guests {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGuestRepo) ListWithRsvps(_ context.Context) ([]domain.GuestWithRSVP, error) {
	var out []domain.GuestWithRSVP
	for _, g := range f.guests {
		gw := domain.GuestWithRSVP{Guest: *g}
		if f.rsvps != nil {
			if id, ok := f.rsvps.byGuest[g.ID]; ok {
				r := *f.rsvps.rsvps[id]
				gw.RSVP = &r
			}
		}
		out = append(out, gw)
	}
	return out, nil
}

type fakeRsvpRepo struct {
	nextID  int64
	rsvps   map[int64]*domain.RSVP
	byGuest map[int64]int64
	guests  *fakeGuestRepo
}

func newFakeRsvpRepo(guests *fakeGuestRepo) *fakeRsvpRepo {
	f := &fakeRsvpRepo{
		nextID:  1,
		rsvps:   make(map[int64]*domain.RSVP),
		byGuest: make(map[int64]int64),
		guests:  guests,
	}
	if guests != nil {
		guests.rsvps = f
	}
	return f
}

// Create mirrors the constraint behavior of the real table: foreign key to
// guests, unique on guest_id.
func (f *fakeRsvpRepo) Create(_ context.Context, req *domain.CreateRsvpRequest) (*domain.RSVP, error) {
	if f.guests != nil {
		if _, ok := f.guests.guests[req.GuestID]; !ok {
			return nil, domain.ErrGuestNotFound
		}
	}
	if _, ok := f.byGuest[req.GuestID]; ok {
		return nil, domain.ErrRSVPExists
	}

	id := f.nextID
	f.nextID++

	now := time.Now()
	v := &domain.RSVP{
		ID:             id,
		GuestID:        req.GuestID,
		WillAttend:     *req.WillAttend,
		NumberOfGuests: req.NumberOfGuests,
		Message:        req.Message,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.rsvps[id] = v
	f.byGuest[req.GuestID] = id
	return v, nil
}

func (f *fakeRsvpRepo) GetByGuestID(_ context.Context, guestID int64) (*domain.RSVP, error) {
	id, ok := f.byGuest[guestID]
	if !ok {
		return nil, nil
	}
	return f.rsvps[id], nil
}

func (f *fakeRsvpRepo) Update(_ context.Context, id int64, patch *domain.UpdateRsvpRequest) (*domain.RSVP, error) {
	v, ok := f.rsvps[id]
	if !ok {
		return nil, nil
	}
	if patch.WillAttend != nil {
		v.WillAttend = *patch.WillAttend
	}
	if patch.NumberOfGuests != nil {
		v.NumberOfGuests = *patch.NumberOfGuests
	}
	if patch.Message.Set {
		v.Message = patch.Message.Ptr()
	}
	v.UpdatedAt = time.Now()
	return v, nil
}

type mockMailer struct {
	lastTo     string
	lastName   string
	lastAttend bool
	lastCount  int
	sent       int
	sendErr    error
}

func (m *mockMailer) SendRsvpConfirmation(toEmail, toName string, willAttend bool, numberOfGuests int) error {
	m.lastTo = toEmail
	m.lastName = toName
	m.lastAttend = willAttend
	m.lastCount = numberOfGuests
	m.sent++
	return m.sendErr
}
