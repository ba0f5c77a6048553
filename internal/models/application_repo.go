package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, app *GuideApplication) (*GuideApplication, error)
	GetApplicationByID(ctx context.Context, id primitive.ObjectID) (*GuideApplication, error)
	ListApplications(ctx context.Context) ([]*GuideApplication, error)
	DeleteApplication(ctx context.Context, id primitive.ObjectID) error
}

func (mdb *MongodbRepo) CreateApplication(ctx context.Context, app *GuideApplication) (*GuideApplication, error) {
	col, err := mdb.GetCollection(ctx, DBName, ApplicationsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// One open application per applicant.
	var existing GuideApplication
	err = col.FindOne(ctx, bson.M{"applicant_email": app.ApplicantEmail}).Decode(&existing)
	if err == nil {
		return nil, fmt.Errorf("an application for %s is already under review", app.ApplicantEmail)
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error checking existing application: %v", err)
	}

	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, app); err != nil {
		return nil, fmt.Errorf("error inserting application: %v", err)
	}

	return app, nil
}

func (mdb *MongodbRepo) GetApplicationByID(ctx context.Context, id primitive.ObjectID) (*GuideApplication, error) {
	col, err := mdb.GetCollection(ctx, DBName, ApplicationsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var app GuideApplication
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("error finding application: %v", err)
	}

	return &app, nil
}

func (mdb *MongodbRepo) ListApplications(ctx context.Context) ([]*GuideApplication, error) {
	col, err := mdb.GetCollection(ctx, DBName, ApplicationsCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "applied_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding applications: %v", err)
	}
	defer cursor.Close(ctx)

	var apps []*GuideApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, fmt.Errorf("error decoding applications: %v", err)
	}

	return apps, nil
}

func (mdb *MongodbRepo) DeleteApplication(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, ApplicationsCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting application: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("application not found")
	}

	return nil
}
