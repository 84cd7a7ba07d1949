package store

import (
	"context"

	"RoomAllocator/internal/allocator"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CourseRepository struct {
	collection *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{collection: db.Collection("courses")}
}

func (r *CourseRepository) UpsertAll(ctx context.Context, courses []*allocator.Course) error {
	for _, course := range courses {
		record := courseRecordFrom(course)
		_, err := r.collection.UpdateOne(ctx,
			bson.M{"name": record.Name},
			bson.M{"$set": record},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CourseRepository) FindByNames(ctx context.Context, names []string) ([]*allocator.Course, error) {
	filter := bson.M{}
	if len(names) > 0 {
		filter["name"] = bson.M{"$in": names}
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var records []*CourseRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	courses := make([]*allocator.Course, len(records))
	for i, rec := range records {
		courses[i] = rec.ToCourse()
	}
	return courses, nil
}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*allocator.Course, error) {
	return r.FindByNames(ctx, nil)
}
