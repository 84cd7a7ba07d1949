package runs

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RunRepository struct {
	collection *mongo.Collection
}

func NewRunRepository(db *mongo.Database) *RunRepository {
	return &RunRepository{collection: db.Collection("runs")}
}

func (r *RunRepository) Create(ctx context.Context, run *RunRecord) error {
	run.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, run)
	return err
}

func (r *RunRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*RunRecord, error) {
	var run RunRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&run)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

type SimulationRepository struct {
	collection *mongo.Collection
}

func NewSimulationRepository(db *mongo.Database) *SimulationRepository {
	return &SimulationRepository{collection: db.Collection("simulations")}
}

func (r *SimulationRepository) Create(ctx context.Context, sim *SimulationRecord) error {
	sim.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, sim)
	return err
}

func (r *SimulationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*SimulationRecord, error) {
	var sim SimulationRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sim)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &sim, nil
}

// FindLatest returns the most recently created simulation, or nil if none
// exists yet. Used by ComparisonScheduler to reuse the last-requested
// configuration on its next tick.
func (r *SimulationRepository) FindLatest(ctx context.Context) (*SimulationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(1)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if !cursor.Next(ctx) {
		return nil, nil
	}
	var sim SimulationRecord
	if err := cursor.Decode(&sim); err != nil {
		return nil, err
	}
	return &sim, nil
}
