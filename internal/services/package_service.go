package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/kamrul-dev/roamio/internal/helpers"
	"github.com/kamrul-dev/roamio/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PackageService struct {
	packageRepo models.PackageRepo
	cld         *cloudinary.Cloudinary
}

func NewPackageService(packageRepo models.PackageRepo, cld *cloudinary.Cloudinary) *PackageService {
	return &PackageService{
		packageRepo: packageRepo,
		cld:         cld,
	}
}

func (ps *PackageService) CreatePackage(ctx context.Context, pkg *models.TourPackage, createdBy string) (*models.TourPackage, error) {
	if err := models.Validate.Struct(pkg); err != nil {
		return nil, fmt.Errorf("invalid package data provided: %v", err)
	}

	// Upload the gallery before touching the database so a failed upload
	// leaves no half-created package behind.
	var uploadedPublicIDs []string
	if len(pkg.Images) > 0 && ps.cld != nil {
		uploadChan := make(chan struct {
			urls      []string
			publicIDs []string
		}, 1)
		errorChan := make(chan error, 1)

		go func() {
			urls, publicIDs, uploadErr := helpers.UploadImages(ctx, ps.cld, pkg.Images, helpers.PackageFolder)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- struct {
				urls      []string
				publicIDs []string
			}{urls, publicIDs}
		}()

		select {
		case result := <-uploadChan:
			pkg.Images = result.urls
			uploadedPublicIDs = result.publicIDs
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload images: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	now := time.Now()
	pkg.CreatedBy = createdBy
	pkg.CreatedAt = now
	pkg.UpdatedAt = now

	created, err := ps.packageRepo.CreatePackage(ctx, pkg)
	if err != nil {
		if len(uploadedPublicIDs) > 0 {
			helpers.DeleteImages(ctx, ps.cld, uploadedPublicIDs)
		}
		return nil, err
	}

	return created, nil
}

func (ps *PackageService) ListPackages(ctx context.Context, offset, limit int) ([]*models.TourPackage, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}
	return ps.packageRepo.ListPackages(ctx, offset, limit)
}

func (ps *PackageService) GetPackageByID(ctx context.Context, id primitive.ObjectID) (*models.TourPackage, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("invalid package ID")
	}
	return ps.packageRepo.GetPackageByID(ctx, id)
}

func (ps *PackageService) RandomPackages(ctx context.Context, n int) ([]*models.TourPackage, error) {
	if n <= 0 {
		return nil, fmt.Errorf("sample size must be positive")
	}
	return ps.packageRepo.RandomPackages(ctx, n)
}

func (ps *PackageService) DeletePackage(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return fmt.Errorf("invalid package ID")
	}
	return ps.packageRepo.DeletePackage(ctx, id)
}
