package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PackageRepo interface {
	CreatePackage(ctx context.Context, pkg *TourPackage) (*TourPackage, error)
	ListPackages(ctx context.Context, offset, limit int) ([]*TourPackage, int, error)
	GetPackageByID(ctx context.Context, id primitive.ObjectID) (*TourPackage, error)
	RandomPackages(ctx context.Context, n int) ([]*TourPackage, error)
	DeletePackage(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreatePackage(ctx context.Context, pkg *TourPackage) (*TourPackage, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, pkg); err != nil {
		return nil, fmt.Errorf("error inserting package: %v", err)
	}

	return pkg, nil
}

func (mdb *MongodbRepo) ListPackages(ctx context.Context, offset, limit int) ([]*TourPackage, int, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesCollection)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("error counting packages: %v", err)
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding packages: %v", err)
	}
	defer cursor.Close(ctx)

	var packages []*TourPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, 0, fmt.Errorf("error decoding packages: %v", err)
	}

	return packages, int(total), nil
}

func (mdb *MongodbRepo) GetPackageByID(ctx context.Context, id primitive.ObjectID) (*TourPackage, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var pkg TourPackage
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("package not found")
		}
		return nil, fmt.Errorf("error finding package: %v", err)
	}

	return &pkg, nil
}

// RandomPackages powers the home page sampler.
func (mdb *MongodbRepo) RandomPackages(ctx context.Context, n int) ([]*TourPackage, error) {
	col, err := mdb.GetCollection(ctx, DBName, PackagesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error sampling packages: %v", err)
	}
	defer cursor.Close(ctx)

	var packages []*TourPackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("error decoding packages: %v", err)
	}

	return packages, nil
}

func (mdb *MongodbRepo) DeletePackage(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, PackagesCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting package: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("package not found")
	}

	return nil
}
