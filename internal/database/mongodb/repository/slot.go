package repository

import (
	"context"
	"errors"
	"time"

	"hrdesk/internal/core"
	client "hrdesk/internal/database/client"
	"hrdesk/internal/database/mongodb/model"
	"hrdesk/internal/database/slot"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotRepository struct {
	collection *mongo.Collection
}

func NewSlotRepository(mongoClient *client.MongoClient) *SlotRepository {
	repository := &SlotRepository{
		collection: mongoClient.Database().Collection(string(core.MongoCollectionSlots)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *SlotRepository) ensureIndexes(ctx context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(ctx, model.SlotIndexes)
	return err
}

func (repository *SlotRepository) Get(ctx context.Context, name core.SlotName) ([]byte, error) {
	var document model.Slot
	err := repository.collection.FindOne(ctx, bson.M{"_id": string(name)}).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, slot.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return document.Value, nil
}

func (repository *SlotRepository) Set(ctx context.Context, name core.SlotName, value []byte) error {
	document := model.Slot{Name: string(name), Value: value, UpdatedAt: time.Now().UTC()}
	_, err := repository.collection.ReplaceOne(ctx, bson.M{"_id": document.Name}, document,
		options.Replace().SetUpsert(true))
	return err
}

func (repository *SlotRepository) Delete(ctx context.Context, name core.SlotName) error {
	_, err := repository.collection.DeleteOne(ctx, bson.M{"_id": string(name)})
	return err
}

func (repository *SlotRepository) Names(ctx context.Context) ([]core.SlotName, error) {
	cursor, err := repository.collection.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}).SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []core.SlotName
	for cursor.Next(ctx) {
		var document struct {
			Name string `bson:"_id"`
		}
		if err := cursor.Decode(&document); err != nil {
			return nil, err
		}
		names = append(names, core.SlotName(document.Name))
	}
	return names, cursor.Err()
}

func (repository *SlotRepository) Driver() core.StorageDriver { return core.StorageMongo }
