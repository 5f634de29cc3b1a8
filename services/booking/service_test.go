package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"arenaslot/models"
	"arenaslot/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock BookingRepository for service tests
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) Find(filter models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(filter)
	if v := args.Get(0); v != nil {
		return v.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) Count(filter models.BookingFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) FindViews(filter models.BookingFilter) ([]models.BookingView, error) {
	args := m.Called(filter)
	if v := args.Get(0); v != nil {
		return v.([]models.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) FindViewsByUser(userID string) ([]models.BookingView, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) FindWinners() ([]models.WinnerView, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.WinnerView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) BulkUpdate(filter models.BookingFilter, fields models.BulkRoomUpdate) (*models.BulkUpdateResult, error) {
	args := m.Called(filter, fields)
	if v := args.Get(0); v != nil {
		return v.(*models.BulkUpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) SetWinner(id string, isWinner bool) (*models.Booking, error) {
	args := m.Called(id, isWinner)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock payment gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateOrder(amount int64, receipt string) (*models.PaymentOrder, error) {
	args := m.Called(amount, receipt)
	if v := args.Get(0); v != nil {
		return v.(*models.PaymentOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

// Mock notification dispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, channel models.Channel, recipients []string, subject, message string, batchSize int) models.ChannelReport {
	args := m.Called(ctx, channel, recipients, subject, message, batchSize)
	return args.Get(0).(models.ChannelReport)
}

func (m *MockDispatcher) DispatchAll(ctx context.Context, channels []models.Channel, emails, phones []string, subject, message string) models.DispatchReport {
	args := m.Called(ctx, channels, emails, phones, subject, message)
	return args.Get(0).(models.DispatchReport)
}

func newTestService(repo *MockBookingRepo, gateway *MockGateway, dispatcher *MockDispatcher) *DefaultBookingService {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	return &DefaultBookingService{Repo: repo, Gateway: gateway, Dispatcher: dispatcher, Location: loc}
}

func validConfirmRequest() ConfirmBookingRequest {
	return ConfirmBookingRequest{
		UserID:        "user-1",
		PackageID:     "pkg-1",
		Slot:          "03:30 PM - 04:00 PM",
		SlotDate:      time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC),
		Amount:        9900,
		PaymentStatus: models.PaymentSuccess,
		PaymentID:     "pay_123",
	}
}

func TestConfirmBookingRequiredFields(t *testing.T) {
	repo := new(MockBookingRepo)
	svc := newTestService(repo, new(MockGateway), new(MockDispatcher))

	mutations := map[string]func(*ConfirmBookingRequest){
		"userId":    func(r *ConfirmBookingRequest) { r.UserID = "" },
		"packageId": func(r *ConfirmBookingRequest) { r.PackageID = "" },
		"slot":      func(r *ConfirmBookingRequest) { r.Slot = "" },
		"slotdate":  func(r *ConfirmBookingRequest) { r.SlotDate = time.Time{} },
		"amount":    func(r *ConfirmBookingRequest) { r.Amount = 0 },
		"paymentId": func(r *ConfirmBookingRequest) { r.PaymentID = "" },
	}
	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			req := validConfirmRequest()
			mutate(&req)

			_, err := svc.ConfirmBooking(req)
			require.Error(t, err)
			assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestConfirmBookingNormalizesSlotDateToUTCMidnight(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("Create", mock.Anything).Return(nil)
	svc := newTestService(repo, new(MockGateway), new(MockDispatcher))

	req := validConfirmRequest()
	req.SlotDate = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	booking, err := svc.ConfirmBooking(req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), booking.SlotDate)
}

func TestConfirmBookingConcurrentSameSlot(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("Create", mock.Anything).Return(nil)
	svc := newTestService(repo, new(MockGateway), new(MockDispatcher))

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validConfirmRequest()
			_, errs[i] = svc.ConfirmBooking(req)
		}(i)
	}
	wg.Wait()

	// No capacity check: both confirmations for the same window persist.
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	gateway := new(MockGateway)
	svc := newTestService(new(MockBookingRepo), gateway, new(MockDispatcher))

	for _, amount := range []int64{0, -100} {
		_, err := svc.CreateOrder(amount)
		require.Error(t, err)
		assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
	}
	gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrderWrapsGatewayFailure(t *testing.T) {
	gateway := new(MockGateway)
	gateway.On("CreateOrder", int64(9900), mock.Anything).Return(nil, assert.AnError)
	svc := newTestService(new(MockBookingRepo), gateway, new(MockDispatcher))

	_, err := svc.CreateOrder(9900)
	require.Error(t, err)
	assert.Equal(t, utils.CodeDependency, utils.ErrorCode(err))
}

func TestNotifyNoMatchingBookings(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("FindViews", mock.Anything).Return([]models.BookingView{}, nil)
	dispatcher := new(MockDispatcher)
	svc := newTestService(repo, new(MockGateway), dispatcher)

	_, err := svc.Notify(context.Background(), NotificationRequest{
		Slot:    "03:30 PM - 04:00 PM",
		Date:    "2024-05-01",
		Type:    models.ChannelEmail,
		Message: "match starts soon",
	})
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
	dispatcher.AssertNotCalled(t, "DispatchAll",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyRejectsUnknownChannel(t *testing.T) {
	svc := newTestService(new(MockBookingRepo), new(MockGateway), new(MockDispatcher))

	_, err := svc.Notify(context.Background(), NotificationRequest{
		Type:    models.Channel("pigeon"),
		Message: "hello",
	})
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestNotifyDeduplicatesAddressesAndSkipsSentinels(t *testing.T) {
	views := []models.BookingView{
		{UserEmail: "a@example.com", UserWhatsapp: "9876543210"},
		{UserEmail: "a@example.com", UserWhatsapp: "9876543210"},
		{UserEmail: "N/A", UserWhatsapp: ""},
		{UserEmail: "b@example.com", UserWhatsapp: "9123456780"},
	}
	repo := new(MockBookingRepo)
	repo.On("FindViews", mock.Anything).Return(views, nil)

	dispatcher := new(MockDispatcher)
	dispatcher.On("DispatchAll",
		mock.Anything,
		[]models.Channel{models.ChannelEmail, models.ChannelSMS, models.ChannelWhatsApp},
		[]string{"a@example.com", "b@example.com"},
		[]string{"9876543210", "9123456780"},
		"Notification",
		"room is live",
	).Return(models.DispatchReport{})

	svc := newTestService(repo, new(MockGateway), dispatcher)

	_, err := svc.Notify(context.Background(), NotificationRequest{
		Slot:    "03:30 PM - 04:00 PM",
		Date:    "2024-05-01",
		Type:    models.ChannelAll,
		Message: "room is live",
	})
	require.NoError(t, err)
	dispatcher.AssertExpectations(t)
}

func TestBulkAnnounceZeroMatches(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("BulkUpdate", mock.Anything, mock.Anything).
		Return(&models.BulkUpdateResult{Matched: 0, Modified: 0}, nil)
	svc := newTestService(repo, new(MockGateway), new(MockDispatcher))

	_, err := svc.BulkAnnounce(BulkAnnounceRequest{
		Slot: "03:30 PM - 04:00 PM", Date: "2024-05-01", RoomID: "12345", RoomPass: "pass",
	})
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
}

func TestBulkAnnouncePassesCriteria(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("BulkUpdate",
		models.BookingFilter{Slot: "03:30 PM - 04:00 PM", Date: "2024-05-01", Amount: 9900},
		models.BulkRoomUpdate{Note: "be on time", RoomID: "12345", RoomPass: "pass"},
	).Return(&models.BulkUpdateResult{Matched: 4, Modified: 4}, nil)
	svc := newTestService(repo, new(MockGateway), new(MockDispatcher))

	result, err := svc.BulkAnnounce(BulkAnnounceRequest{
		Slot:            "03:30 PM - 04:00 PM",
		Date:            "2024-05-01",
		SelectedPackage: 9900,
		Note:            "be on time",
		RoomID:          "12345",
		RoomPass:        "pass",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Matched)
}
