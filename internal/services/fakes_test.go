package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/kamrul-dev/roamio/internal/models"
	"github.com/kamrul-dev/roamio/internal/payments"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBookingRepo struct {
	bookings  map[primitive.ObjectID]*models.Booking
	createErr error
	updateErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[primitive.ObjectID]*models.Booking{}}
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking not found")
	}
	copy := *booking
	return &copy, nil
}

func (f *fakeBookingRepo) ListBookingsByTourist(ctx context.Context, email string) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.TouristEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListBookingsByGuide(ctx context.Context, email string) ([]*models.Booking, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		if b.GuideEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, from, to string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return fmt.Errorf("booking is no longer %s", from)
	}
	booking.Status = to
	return nil
}

func (f *fakeBookingRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("booking not found")
	}
	delete(f.bookings, id)
	return nil
}

type fakePackageRepo struct {
	packages map[primitive.ObjectID]*models.TourPackage
}

func newFakePackageRepo() *fakePackageRepo {
	return &fakePackageRepo{packages: map[primitive.ObjectID]*models.TourPackage{}}
}

func (f *fakePackageRepo) CreatePackage(ctx context.Context, pkg *models.TourPackage) (*models.TourPackage, error) {
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	f.packages[pkg.ID] = pkg
	return pkg, nil
}

func (f *fakePackageRepo) ListPackages(ctx context.Context, offset, limit int) ([]*models.TourPackage, int, error) {
	var out []*models.TourPackage
	for _, p := range f.packages {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakePackageRepo) GetPackageByID(ctx context.Context, id primitive.ObjectID) (*models.TourPackage, error) {
	pkg, ok := f.packages[id]
	if !ok {
		return nil, fmt.Errorf("package not found")
	}
	return pkg, nil
}

func (f *fakePackageRepo) RandomPackages(ctx context.Context, n int) ([]*models.TourPackage, error) {
	out, _, _ := f.ListPackages(ctx, 0, n)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (f *fakePackageRepo) DeletePackage(ctx context.Context, id primitive.ObjectID) error {
	delete(f.packages, id)
	return nil
}

type fakeUserRepo struct {
	usersByEmail map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{usersByEmail: map[string]*models.User{}}
	for _, u := range users {
		f.usersByEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (interface{}, error) {
	f.usersByEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) AuthenticateUser(ctx context.Context, email, password string) (interface{}, error) {
	return nil, fmt.Errorf("not supported in fake")
}

func (f *fakeUserRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	return nil, fmt.Errorf("not supported in fake")
}

func (f *fakeUserRepo) SendPasswordReset(ctx context.Context, email string) error {
	return nil
}

func (f *fakeUserRepo) GetUser(ctx context.Context, id uuid.UUID, accessToken string) (*models.User, error) {
	for _, u := range f.usersByEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found")
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (f *fakeUserRepo) ListUsers(ctx context.Context, search, role string, offset, limit int, accessToken string) ([]*models.User, int, error) {
	var out []*models.User
	for _, u := range f.usersByEmail {
		if role == "" || u.SafeRole() == role {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, fields map[string]interface{}, userid uuid.UUID, accessToken string) (*models.User, error) {
	return nil, fmt.Errorf("not supported in fake")
}

func (f *fakeUserRepo) UpdateRoleByEmail(ctx context.Context, email, role, accessToken string) (*models.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, fmt.Errorf("no user found for email %s", email)
	}
	user.Role = role
	return user, nil
}

type fakePaymentRepo struct {
	records   map[primitive.ObjectID]*models.PaymentRecord
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{records: map[primitive.ObjectID]*models.PaymentRecord{}}
}

func (f *fakePaymentRepo) CreatePaymentRecord(ctx context.Context, record *models.PaymentRecord) (*models.PaymentRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.records[record.BookingID]; exists {
		return nil, fmt.Errorf("payment already recorded for booking %s", record.BookingID.Hex())
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	f.records[record.BookingID] = record
	return record, nil
}

func (f *fakePaymentRepo) GetPaymentByBooking(ctx context.Context, bookingID primitive.ObjectID) (*models.PaymentRecord, error) {
	return f.records[bookingID], nil
}

type fakeGateway struct {
	createCalls  int
	confirmCalls int

	confirmStatus string
	confirmErr    error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amountCents int64, currency, bookingID string) (*payments.Intent, error) {
	f.createCalls++
	return &payments.Intent{
		ID:           "pi_test_" + bookingID,
		ClientSecret: "pi_test_" + bookingID + "_secret",
		Status:       payments.StatusRequiresPayment,
	}, nil
}

func (f *fakeGateway) ConfirmIntent(ctx context.Context, intentID, paymentMethodID string, billing payments.Billing) (*payments.Intent, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	status := f.confirmStatus
	if status == "" {
		status = payments.StatusSucceeded
	}
	return &payments.Intent{ID: intentID, Status: status}, nil
}
