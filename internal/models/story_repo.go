package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StoryRepo interface {
	CreateStory(ctx context.Context, story *Story) (*Story, error)
	GetStoryByID(ctx context.Context, id primitive.ObjectID) (*Story, error)
	ListStories(ctx context.Context, offset, limit int) ([]*Story, int, error)
	ListStoriesByAuthor(ctx context.Context, email string) ([]*Story, error)
	RandomStories(ctx context.Context, n int) ([]*Story, error)
	UpdateStory(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}, addImages, removeImages []string) (*Story, error)
	DeleteStory(ctx context.Context, id primitive.ObjectID) error
	AddComment(ctx context.Context, storyID primitive.ObjectID, comment *Comment) (*Story, error)
}

func (mdb *MongodbRepo) CreateStory(ctx context.Context, story *Story) (*Story, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if story.ID.IsZero() {
		story.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, story); err != nil {
		return nil, fmt.Errorf("error inserting story: %v", err)
	}

	return story, nil
}

func (mdb *MongodbRepo) GetStoryByID(ctx context.Context, id primitive.ObjectID) (*Story, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var story Story
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("story not found")
		}
		return nil, fmt.Errorf("error finding story: %v", err)
	}

	return &story, nil
}

func (mdb *MongodbRepo) ListStories(ctx context.Context, offset, limit int) ([]*Story, int, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("error counting stories: %v", err)
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding stories: %v", err)
	}
	defer cursor.Close(ctx)

	var stories []*Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, 0, fmt.Errorf("error decoding stories: %v", err)
	}

	return stories, int(total), nil
}

func (mdb *MongodbRepo) ListStoriesByAuthor(ctx context.Context, email string) ([]*Story, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"author_email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding stories: %v", err)
	}
	defer cursor.Close(ctx)

	var stories []*Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("error decoding stories: %v", err)
	}

	return stories, nil
}

func (mdb *MongodbRepo) RandomStories(ctx context.Context, n int) ([]*Story, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error sampling stories: %v", err)
	}
	defer cursor.Close(ctx)

	var stories []*Story
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, fmt.Errorf("error decoding stories: %v", err)
	}

	return stories, nil
}

// UpdateStory sets scalar fields and applies gallery edits in one call.
// addImages uses $push/$each, removeImages uses $pull, so edits compose with
// whatever the gallery currently holds.
func (mdb *MongodbRepo) UpdateStory(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}, addImages, removeImages []string) (*Story, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	update := bson.M{"$set": set}
	if len(addImages) > 0 {
		update["$push"] = bson.M{"images": bson.M{"$each": addImages}}
	}
	if len(removeImages) > 0 {
		update["$pull"] = bson.M{"images": bson.M{"$in": removeImages}}
	}

	// $push and $pull on the same field cannot share one update; apply the
	// pull first when both are requested.
	if len(addImages) > 0 && len(removeImages) > 0 {
		pull := bson.M{"$pull": bson.M{"images": bson.M{"$in": removeImages}}}
		if _, err := col.UpdateOne(ctx, bson.M{"_id": id}, pull); err != nil {
			return nil, fmt.Errorf("error removing story images: %v", err)
		}
		delete(update, "$pull")
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var story Story
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("story not found")
		}
		return nil, fmt.Errorf("error updating story: %v", err)
	}

	return &story, nil
}

func (mdb *MongodbRepo) DeleteStory(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting story: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("story not found")
	}

	return nil
}

func (mdb *MongodbRepo) AddComment(ctx context.Context, storyID primitive.ObjectID, comment *Comment) (*Story, error) {
	col, err := mdb.GetCollection(ctx, DBName, StoriesCollection)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}

	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var story Story
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": storyID}, update, opts).Decode(&story); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("story not found")
		}
		return nil, fmt.Errorf("error adding comment: %v", err)
	}

	return &story, nil
}
