package auth

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OperatorRepository struct {
	collection *mongo.Collection
}

func NewOperatorRepository(db *mongo.Database) *OperatorRepository {
	return &OperatorRepository{collection: db.Collection("operators")}
}

func (r *OperatorRepository) FindByUsername(ctx context.Context, username string) (*Operator, error) {
	var op Operator
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&op)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("Operator not found")
			return nil, nil
		}
		return nil, err
	}
	return &op, nil
}

func (r *OperatorRepository) CreateOperator(ctx context.Context, op *Operator) error {
	_, err := r.collection.InsertOne(ctx, op)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("username already exists")
		}
		return err
	}
	return nil
}
