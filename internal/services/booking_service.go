package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kamrul-dev/roamio/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
	packageRepo models.PackageRepo
	userService *UserService
}

func NewBookingService(bookingRepo models.BookingRepo, packageRepo models.PackageRepo, userService *UserService) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		userService: userService,
	}
}

// CreateBooking validates the traveler's selection and submits a new pending
// booking. Date and guide are hard requirements here, not just a disabled
// button in the client: a request missing either is rejected before any
// write happens.
func (bs *BookingService) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if strings.TrimSpace(booking.GuideEmail) == "" {
		return nil, fmt.Errorf("a tour guide must be selected")
	}
	if booking.TourDate.IsZero() {
		return nil, fmt.Errorf("a tour date must be selected")
	}
	if err := models.Validate.Struct(booking); err != nil {
		return nil, fmt.Errorf("invalid booking data provided: %v", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	if booking.TourDate.Before(today) {
		return nil, fmt.Errorf("tour date must be today or later")
	}

	pkg, err := bs.packageRepo.GetPackageByID(ctx, booking.PackageID)
	if err != nil {
		return nil, fmt.Errorf("package lookup failed: %v", err)
	}

	guide, err := bs.userService.ResolveGuide(ctx, booking.GuideEmail)
	if err != nil {
		return nil, err
	}

	// Name and price come from the catalog, never from the request body.
	booking.PackageName = pkg.Name
	booking.Price = pkg.Price
	booking.GuideName = guide.FullName
	booking.Status = models.BookingPending
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

func (bs *BookingService) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("invalid booking ID")
	}
	return bs.bookingRepo.GetBookingByID(ctx, id)
}

func (bs *BookingService) ListBookingsByTourist(ctx context.Context, email string) ([]*models.Booking, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	return bs.bookingRepo.ListBookingsByTourist(ctx, email)
}

func (bs *BookingService) ListBookingsByGuide(ctx context.Context, email string) ([]*models.Booking, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("invalid email format: %v", err)
	}
	return bs.bookingRepo.ListBookingsByGuide(ctx, email)
}

// CancelBooking deletes a booking the traveler no longer wants. Only the
// owner (or an admin) may cancel, and only while the booking is pending.
func (bs *BookingService) CancelBooking(ctx context.Context, id primitive.ObjectID, requesterEmail string, isAdmin bool) error {
	booking, err := bs.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return err
	}

	if booking.TouristEmail != requesterEmail && !isAdmin {
		return fmt.Errorf("you can only cancel your own bookings")
	}
	if !booking.CanCancel() {
		return fmt.Errorf("only pending bookings can be cancelled")
	}

	return bs.bookingRepo.DeleteBooking(ctx, id)
}

// DecideBooking records the guide's accept/reject decision on an in-review
// booking. The transition is validated against the lifecycle graph before
// any storage call.
func (bs *BookingService) DecideBooking(ctx context.Context, id primitive.ObjectID, newStatus, requesterEmail string, isAdmin bool) (*models.Booking, error) {
	if newStatus != models.BookingAccepted && newStatus != models.BookingRejected {
		return nil, fmt.Errorf("decision must be %s or %s", models.BookingAccepted, models.BookingRejected)
	}

	booking, err := bs.bookingRepo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.GuideEmail != requesterEmail && !isAdmin {
		return nil, fmt.Errorf("only the assigned guide can decide this booking")
	}
	if !models.CanTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("cannot move booking from %s to %s", booking.Status, newStatus)
	}

	if err := bs.bookingRepo.UpdateBookingStatus(ctx, id, booking.Status, newStatus); err != nil {
		return nil, err
	}

	booking.Status = newStatus
	return booking, nil
}
