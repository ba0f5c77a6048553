package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kamrul-dev/roamio/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBookingFixture(t *testing.T) (*BookingService, *fakeBookingRepo, *models.TourPackage) {
	t.Helper()

	packageRepo := newFakePackageRepo()
	pkg, err := packageRepo.CreatePackage(context.Background(), &models.TourPackage{
		Name:     "Sundarbans Delta Expedition",
		Price:    500,
		Location: "Khulna",
	})
	if err != nil {
		t.Fatalf("seeding package: %v", err)
	}

	userRepo := newFakeUserRepo(
		&models.User{Email: "guide@roamio.app", FullName: "Rahim Uddin", Role: models.RoleGuide},
		&models.User{Email: "tourist@roamio.app", FullName: "Salma Khatun", Role: models.RoleUser},
	)

	bookingRepo := newFakeBookingRepo()
	svc := NewBookingService(bookingRepo, packageRepo, NewUserService(userRepo))
	return svc, bookingRepo, pkg
}

func validBooking(pkg *models.TourPackage) *models.Booking {
	return &models.Booking{
		PackageID:    pkg.ID,
		TouristName:  "Salma Khatun",
		TouristEmail: "tourist@roamio.app",
		GuideEmail:   "guide@roamio.app",
		TourDate:     time.Now().AddDate(0, 0, 7),
	}
}

func TestCreateBookingRequiresGuideAndDate(t *testing.T) {
	svc, repo, pkg := newBookingFixture(t)

	missingGuide := validBooking(pkg)
	missingGuide.GuideEmail = ""
	if _, err := svc.CreateBooking(context.Background(), missingGuide); err == nil {
		t.Fatal("expected error for missing guide selection")
	}

	missingDate := validBooking(pkg)
	missingDate.TourDate = time.Time{}
	if _, err := svc.CreateBooking(context.Background(), missingDate); err == nil {
		t.Fatal("expected error for missing tour date")
	}

	if len(repo.bookings) != 0 {
		t.Fatalf("invalid submissions must not reach storage, found %d bookings", len(repo.bookings))
	}
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	svc, repo, pkg := newBookingFixture(t)

	booking := validBooking(pkg)
	booking.TourDate = time.Now().AddDate(0, 0, -2)

	if _, err := svc.CreateBooking(context.Background(), booking); err == nil {
		t.Fatal("expected error for past tour date")
	}
	if len(repo.bookings) != 0 {
		t.Fatal("past-dated booking must not be stored")
	}
}

func TestCreateBookingRejectsUnknownPackage(t *testing.T) {
	svc, _, pkg := newBookingFixture(t)

	booking := validBooking(pkg)
	booking.PackageID = primitive.NewObjectID()

	if _, err := svc.CreateBooking(context.Background(), booking); err == nil {
		t.Fatal("expected error for unknown package")
	}
}

func TestCreateBookingRejectsNonGuide(t *testing.T) {
	svc, _, pkg := newBookingFixture(t)

	booking := validBooking(pkg)
	booking.GuideEmail = "tourist@roamio.app"

	_, err := svc.CreateBooking(context.Background(), booking)
	if err == nil {
		t.Fatal("expected error when selected guide does not hold the guide role")
	}
	if !strings.Contains(err.Error(), "not a tour guide") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateBookingRoundTrip(t *testing.T) {
	svc, _, pkg := newBookingFixture(t)

	created, err := svc.CreateBooking(context.Background(), validBooking(pkg))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if created.Status != models.BookingPending {
		t.Errorf("new booking status = %q, want %q", created.Status, models.BookingPending)
	}
	if created.Price != pkg.Price {
		t.Errorf("booking price = %v, want catalog price %v", created.Price, pkg.Price)
	}
	if created.PackageName != pkg.Name {
		t.Errorf("booking package name = %q, want %q", created.PackageName, pkg.Name)
	}
	if created.GuideName != "Rahim Uddin" {
		t.Errorf("booking guide name = %q, want resolved guide name", created.GuideName)
	}

	listed, err := svc.ListBookingsByTourist(context.Background(), "tourist@roamio.app")
	if err != nil {
		t.Fatalf("ListBookingsByTourist: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("listing after create should include the new booking, got %d", len(listed))
	}
	if listed[0].Status != models.BookingPending {
		t.Errorf("listed booking status = %q, want pending", listed[0].Status)
	}
}

func TestCancelBookingOnlyWhilePending(t *testing.T) {
	svc, repo, pkg := newBookingFixture(t)

	created, err := svc.CreateBooking(context.Background(), validBooking(pkg))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	repo.bookings[created.ID].Status = models.BookingInReview
	if err := svc.CancelBooking(context.Background(), created.ID, "tourist@roamio.app", false); err == nil {
		t.Fatal("expected cancel of an in-review booking to be refused")
	}

	repo.bookings[created.ID].Status = models.BookingPending
	if err := svc.CancelBooking(context.Background(), created.ID, "somebody@else.com", false); err == nil {
		t.Fatal("expected cancel by a non-owner to be refused")
	}

	if err := svc.CancelBooking(context.Background(), created.ID, "tourist@roamio.app", false); err != nil {
		t.Fatalf("cancel of own pending booking failed: %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatal("cancelled booking should be removed")
	}
}

func TestDecideBooking(t *testing.T) {
	svc, repo, pkg := newBookingFixture(t)

	created, err := svc.CreateBooking(context.Background(), validBooking(pkg))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	// Pending bookings cannot be decided; the traveler has not paid yet.
	if _, err := svc.DecideBooking(context.Background(), created.ID, models.BookingAccepted, "guide@roamio.app", false); err == nil {
		t.Fatal("expected decision on a pending booking to be refused")
	}

	repo.bookings[created.ID].Status = models.BookingInReview

	if _, err := svc.DecideBooking(context.Background(), created.ID, models.BookingRejected, "other@guide.com", false); err == nil {
		t.Fatal("expected decision by a different guide to be refused")
	}

	decided, err := svc.DecideBooking(context.Background(), created.ID, models.BookingRejected, "guide@roamio.app", false)
	if err != nil {
		t.Fatalf("DecideBooking: %v", err)
	}
	if decided.Status != models.BookingRejected {
		t.Errorf("decided status = %q, want rejected", decided.Status)
	}
	if repo.bookings[created.ID].Status != models.BookingRejected {
		t.Error("rejection was not persisted")
	}

	// Rejected is terminal.
	if _, err := svc.DecideBooking(context.Background(), created.ID, models.BookingAccepted, "guide@roamio.app", false); err == nil {
		t.Fatal("expected decision on a settled booking to be refused")
	}
}
