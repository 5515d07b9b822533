package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRental/internal/domain"
	"github.com/m04kA/SMC-CarRental/pkg/logger"
)

type sessionsMock struct {
	session *domain.Session
}

func (m *sessionsMock) Current() *domain.Session { return m.session }

type creatorMock struct {
	createFn func(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error)
	drafts   []domain.BookingDraft
}

func (m *creatorMock) Create(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error) {
	m.drafts = append(m.drafts, draft)
	return m.createFn(ctx, draft)
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time { return p.now }

var (
	testSession = &domain.Session{ID: 7, Username: "alice", Roles: []string{domain.RoleUser}, Token: "t"}
	testCar     = domain.Car{ID: 3, Brand: "Toyota", Name: "Corolla", Price: 50}
)

func newTestUseCase(session *domain.Session, creator *creatorMock) *UseCase {
	return NewUseCase(&sessionsMock{session: session}, creator, logger.Discard())
}

func TestReview_Validation(t *testing.T) {
	tests := []struct {
		name    string
		session *domain.Session
		car     domain.Car
		pickup  string
		ret     string
		wantErr error
	}{
		{"no session", nil, testCar, "2024-01-01", "2024-01-04", ErrNoSession},
		{"empty pickup", testSession, testCar, "", "2024-01-04", ErrDatesRequired},
		{"empty return", testSession, testCar, "2024-01-01", " ", ErrDatesRequired},
		{"bad format", testSession, testCar, "01/01/2024", "2024-01-04", ErrInvalidDate},
		{"same day", testSession, testCar, "2024-01-01", "2024-01-01", ErrReturnBeforePickup},
		{"return before pickup", testSession, testCar, "2024-01-05", "2024-01-01", ErrReturnBeforePickup},
		{"invalid car", testSession, domain.Car{ID: 0, Price: 50}, "2024-01-01", "2024-01-04", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &creatorMock{}
			uc := newTestUseCase(tt.session, creator)

			summary, err := uc.Review(context.Background(), &ReviewRequest{Car: tt.car, PickupDate: tt.pickup, ReturnDate: tt.ret})
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, creator.drafts, "validation must not reach the backend")
		})
	}
}

func TestValidateDates(t *testing.T) {
	days, err := ValidateDates(testSession, "2024-01-01", "2024-01-04")
	require.NoError(t, err)
	assert.Equal(t, 3, days)

	_, err = ValidateDates(nil, "2024-01-01", "2024-01-04")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = ValidateDates(testSession, "2024-01-05", "2024-01-01")
	assert.ErrorIs(t, err, ErrReturnBeforePickup)

	_, err = ValidateDates(testSession, "", "2024-01-01")
	assert.ErrorIs(t, err, ErrDatesRequired)
}

func TestReview_ComputesTotalPrice(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		pickup    string
		ret       string
		wantDays  int
		wantTotal float64
	}{
		{"three days", 50, "2024-01-01", "2024-01-04", 3, 150},
		{"two days", 40, "2024-03-01", "2024-03-03", 2, 80},
		{"one day", 99.5, "2024-02-28", "2024-02-29", 1, 99.5},
		{"across month", 10, "2024-01-30", "2024-02-02", 3, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(testSession, &creatorMock{})
			car := testCar
			car.Price = tt.price

			summary, err := uc.Review(context.Background(), &ReviewRequest{Car: car, PickupDate: tt.pickup, ReturnDate: tt.ret})
			require.NoError(t, err)

			assert.NotEmpty(t, summary.DraftID)
			assert.Equal(t, tt.wantDays, summary.Days)
			assert.Equal(t, tt.wantTotal, summary.Draft.TotalPrice)
			assert.Equal(t, domain.CarRef{ID: 3}, summary.Draft.Car)
			assert.Equal(t, domain.UserRef{ID: 7}, summary.Draft.User)
			assert.Equal(t, tt.pickup+"T00:00:00", summary.Draft.PickupDate)
			assert.Equal(t, tt.ret+"T00:00:00", summary.Draft.ReturnDate)
			assert.Equal(t, domain.StatusPending, summary.Draft.Status)
		})
	}
}

func TestConfirm_SubmitsFrozenDraft(t *testing.T) {
	creator := &creatorMock{
		createFn: func(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error) {
			return &domain.Booking{ID: 11, TotalPrice: draft.TotalPrice, Status: draft.Status}, nil
		},
	}
	uc := newTestUseCase(testSession, creator)

	summary, err := uc.Review(context.Background(), &ReviewRequest{Car: testCar, PickupDate: "2024-01-01", ReturnDate: "2024-01-04"})
	require.NoError(t, err)

	got, err := uc.Get(summary.DraftID)
	require.NoError(t, err)
	assert.Equal(t, summary.Draft, got.Draft)

	booking, err := uc.Confirm(context.Background(), &ConfirmRequest{DraftID: summary.DraftID, CarID: testCar.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(11), booking.ID)

	require.Len(t, creator.drafts, 1)
	assert.Equal(t, summary.Draft, creator.drafts[0])

	// повторное подтверждение той же сводки невозможно
	_, err = uc.Confirm(context.Background(), &ConfirmRequest{DraftID: summary.DraftID, CarID: testCar.ID})
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Len(t, creator.drafts, 1)
}

func TestConfirm_FailureDiscardsDraft(t *testing.T) {
	backendErr := errors.New("backend down")
	creator := &creatorMock{
		createFn: func(ctx context.Context, draft domain.BookingDraft) (*domain.Booking, error) {
			return nil, backendErr
		},
	}
	uc := newTestUseCase(testSession, creator)

	summary, err := uc.Review(context.Background(), &ReviewRequest{Car: testCar, PickupDate: "2024-01-01", ReturnDate: "2024-01-02"})
	require.NoError(t, err)

	_, err = uc.Confirm(context.Background(), &ConfirmRequest{DraftID: summary.DraftID, CarID: testCar.ID})
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.ErrorIs(t, err, backendErr)

	_, err = uc.Get(summary.DraftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Len(t, creator.drafts, 1, "failed submission is not retried")
}

func TestConfirm_WrongCar(t *testing.T) {
	creator := &creatorMock{}
	uc := newTestUseCase(testSession, creator)

	summary, err := uc.Review(context.Background(), &ReviewRequest{Car: testCar, PickupDate: "2024-01-01", ReturnDate: "2024-01-02"})
	require.NoError(t, err)

	_, err = uc.Confirm(context.Background(), &ConfirmRequest{DraftID: summary.DraftID, CarID: 999})
	assert.ErrorIs(t, err, ErrDraftNotFound)

	// сводка остается доступной для своего автомобиля
	_, err = uc.Get(summary.DraftID)
	assert.NoError(t, err)
}

func TestDiscardAndReset(t *testing.T) {
	uc := newTestUseCase(testSession, &creatorMock{})

	first, err := uc.Review(context.Background(), &ReviewRequest{Car: testCar, PickupDate: "2024-01-01", ReturnDate: "2024-01-02"})
	require.NoError(t, err)
	second, err := uc.Review(context.Background(), &ReviewRequest{Car: testCar, PickupDate: "2024-01-01", ReturnDate: "2024-01-03"})
	require.NoError(t, err)

	uc.Discard(first.DraftID)
	_, err = uc.Get(first.DraftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = uc.Get(second.DraftID)
	assert.NoError(t, err)

	uc.Reset()
	_, err = uc.Get(second.DraftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftExpiry(t *testing.T) {
	clock := &fixedTime{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	creator := &creatorMock{}
	uc := newTestUseCase(testSession, creator)
	uc.timeProvider = clock

	summary, err := uc.Review(context.Background(), &ReviewRequest{Car: testCar, PickupDate: "2024-01-01", ReturnDate: "2024-01-02"})
	require.NoError(t, err)

	clock.now = clock.now.Add(DraftTTL + time.Minute)

	_, err = uc.Confirm(context.Background(), &ConfirmRequest{DraftID: summary.DraftID, CarID: testCar.ID})
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.Empty(t, creator.drafts)
}
