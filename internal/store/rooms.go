package store

import (
	"context"

	"RoomAllocator/internal/allocator"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoomRepository struct {
	collection *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{collection: db.Collection("rooms")}
}

// UpsertAll replaces each room by name, so re-uploading the same CSV is
// idempotent instead of accumulating duplicate rows.
func (r *RoomRepository) UpsertAll(ctx context.Context, rooms []*allocator.Room) error {
	for _, room := range rooms {
		record := roomRecordFrom(room)
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

func (r *RoomRepository) FindByNames(ctx context.Context, names []string) ([]*allocator.Room, error) {
	filter := bson.M{}
	if len(names) > 0 {
		filter["name"] = bson.M{"$in": names}
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var records []*RoomRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	rooms := make([]*allocator.Room, len(records))
	for i, rec := range records {
		rooms[i] = rec.ToRoom()
	}
	return rooms, nil
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*allocator.Room, error) {
	return r.FindByNames(ctx, nil)
}
