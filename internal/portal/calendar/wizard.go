package calendar

import (
	"context"
	"strings"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"
)

// AdvanceDelay is how long a fresh selection stays highlighted before its panel collapses.
const AdvanceDelay = 300 * time.Millisecond

// Step is the currently open wizard panel.
type Step int

const (
	StepNone Step = iota
	StepDate
	StepTime
	StepAddress
	StepReady
)

func (s Step) String() string {
	switch s {
	case StepDate:
		return "date"
	case StepTime:
		return "time"
	case StepAddress:
		return "address"
	case StepReady:
		return "ready"
	default:
		return "none"
	}
}

var (
	ErrIncomplete      = errors.New("date, time and address must all be selected")
	ErrStepNotOpen     = errors.New("step is not open")
	ErrStepLocked      = errors.New("previous step has no selection")
	ErrDayDisabled     = errors.New("day is in the past")
	ErrSlotUnavailable = errors.New("time slot is unavailable")
	ErrEmptySelection  = errors.New("selection is empty")
	ErrSubmitting      = errors.New("booking is already being submitted")
)

// BookingCreator issues the create-booking call.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req *dto.BookingRequest) (*dto.BookingCreatedResponse, error)
}

// Wizard is the date → time → address booking flow. Exactly one panel is open at a time.
// A selection does not move the open panel immediately: it records a pending transition
// that Advance commits once AdvanceDelay has elapsed.
type Wizard struct {
	open       Step
	pending    Step
	hasPending bool

	date      string
	time      string
	addressID string

	serviceType string
	notes       string
	submitting  bool

	now func() time.Time
}

// NewWizard starts a wizard with the date panel open. A nil now uses time.Now.
func NewWizard(now func() time.Time) *Wizard {
	if now == nil {
		now = time.Now
	}

	return &Wizard{open: StepDate, now: now}
}

// Open returns the open panel.
func (w *Wizard) Open() Step {
	return w.open
}

// Pending returns the transition waiting for Advance.
func (w *Wizard) Pending() (Step, bool) {
	return w.pending, w.hasPending
}

// Advance commits the pending transition. It reports whether anything changed.
func (w *Wizard) Advance() bool {
	if !w.hasPending {
		return false
	}
	w.open = w.pending
	w.hasPending = false

	return true
}

func (w *Wizard) Date() string      { return w.date }
func (w *Wizard) Time() string      { return w.time }
func (w *Wizard) AddressID() string { return w.addressID }

// SelectDate stores a day ("YYYY-MM-DD") from the open date panel.
func (w *Wizard) SelectDate(date string) error {
	if err := w.requireOpen(StepDate); err != nil {
		return err
	}
	if !IsSelectable(date, w.now()) {
		return errors.Wrap(ErrDayDisabled, date)
	}

	if date != w.date {
		w.time = ""
		w.addressID = ""
	}
	w.date = date
	w.schedule(StepTime)

	return nil
}

// SelectTime stores a slot from the open time panel.
func (w *Wizard) SelectTime(slot string) error {
	if err := w.requireOpen(StepTime); err != nil {
		return err
	}
	if !SlotAvailable(slot) {
		return errors.Wrap(ErrSlotUnavailable, slot)
	}

	if slot != w.time {
		w.addressID = ""
	}
	w.time = slot
	w.schedule(StepAddress)

	return nil
}

// SelectAddress stores a saved address id from the open address panel.
func (w *Wizard) SelectAddress(addressID string) error {
	if err := w.requireOpen(StepAddress); err != nil {
		return err
	}
	if strings.TrimSpace(addressID) == "" {
		return ErrEmptySelection
	}

	w.addressID = addressID
	w.schedule(StepReady)

	return nil
}

// Reopen opens an earlier panel. The date panel is always reachable; later panels need
// their prerequisite selection. Any pending transition is dropped.
func (w *Wizard) Reopen(step Step) error {
	switch step {
	case StepDate:
	case StepTime:
		if w.date == "" {
			return ErrStepLocked
		}
	case StepAddress:
		if w.time == "" {
			return ErrStepLocked
		}
	default:
		return errors.Errorf("cannot reopen step %s", step)
	}

	w.open = step
	w.hasPending = false

	return nil
}

// Collapse closes every panel.
func (w *Wizard) Collapse() {
	w.open = StepNone
	w.hasPending = false
}

// SetServiceType picks the cleaning kind; empty restores the default.
func (w *Wizard) SetServiceType(serviceType string) error {
	if serviceType != "" && !entity.ServiceType(serviceType).IsValid() {
		return errors.Errorf("unknown service type %q", serviceType)
	}
	w.serviceType = serviceType

	return nil
}

// ServiceType returns the chosen kind, defaulting to standard.
func (w *Wizard) ServiceType() string {
	if w.serviceType == "" {
		return entity.DefaultServiceType.String()
	}

	return w.serviceType
}

// SetNotes attaches free-form notes to the booking.
func (w *Wizard) SetNotes(notes string) {
	w.notes = notes
}

// CanSubmit reports whether date, time and address are all set.
func (w *Wizard) CanSubmit() bool {
	return w.date != "" && w.time != "" && w.addressID != "" && !w.submitting
}

// Request builds the create-booking body from the current selections.
func (w *Wizard) Request() *dto.BookingRequest {
	req := &dto.BookingRequest{
		Date:        w.date,
		Time:        w.time,
		AddressID:   w.addressID,
		ServiceType: w.ServiceType(),
	}
	if notes := strings.TrimSpace(w.notes); notes != "" {
		req.Notes = &notes
	}

	return req
}

// Submit issues exactly one create call once every selection is made. On success the wizard resets.
func (w *Wizard) Submit(ctx context.Context, creator BookingCreator) (*dto.BookingCreatedResponse, error) {
	if w.submitting {
		return nil, ErrSubmitting
	}
	if !w.CanSubmit() {
		return nil, ErrIncomplete
	}

	w.submitting = true
	defer func() { w.submitting = false }()

	resp, err := creator.CreateBooking(ctx, w.Request())
	if err != nil {
		return nil, errors.Wrap(err, "create booking")
	}

	w.Reset()

	return resp, nil
}

// Reset clears every selection and reopens the date panel.
func (w *Wizard) Reset() {
	*w = Wizard{open: StepDate, now: w.now}
}

func (w *Wizard) requireOpen(step Step) error {
	if w.open != step {
		return errors.Wrapf(ErrStepNotOpen, "%s (open: %s)", step, w.open)
	}

	return nil
}

func (w *Wizard) schedule(next Step) {
	w.pending = next
	w.hasPending = true
}
