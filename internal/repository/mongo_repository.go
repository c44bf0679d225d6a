package repository

import (
	"context"
	"errors"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
)

// MongoProductRepository realizes the repository contract over MongoDB.
// Identifiers stay integers: a counter document is incremented
// atomically on create so ids remain monotonic and never reused.
type MongoProductRepository struct {
	products *mongo.Collection
	counters *mongo.Collection
}

var MongoProductRepositoryTracer = otel.Tracer("MongoProductRepository")

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		products: db.Collection("product"),
		counters: db.Collection("counters"),
	}
}

func (r *MongoProductRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "product"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func (r *MongoProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	ctx, span := MongoProductRepositoryTracer.Start(ctx, "MongoProductRepository.GetAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	cursor, err := r.products.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []model.Product
	for cursor.Next(ctx) {
		var product model.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, cursor.Err()
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id int64) (model.Product, error) {
	ctx, span := MongoProductRepositoryTracer.Start(ctx, "MongoProductRepository.GetByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	var product model.Product
	err := r.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return product, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	ctx, span := MongoProductRepositoryTracer.Start(ctx, "MongoProductRepository.Create")
	defer span.End()
	logger.Info(ctx, "Repository")

	id, err := r.nextID(ctx)
	if err != nil {
		return model.Product{}, err
	}
	p.ID = id
	if _, err := r.products.InsertOne(ctx, p); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) Update(ctx context.Context, p model.Product) error {
	ctx, span := MongoProductRepositoryTracer.Start(ctx, "MongoProductRepository.Update")
	defer span.End()
	logger.Info(ctx, "Repository")

	update := bson.M{
		"$set": bson.M{
			"name":        p.Name,
			"price":       p.Price,
			"description": p.Description,
			"stock":       p.Stock,
		},
	}
	res, err := r.products.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := MongoProductRepositoryTracer.Start(ctx, "MongoProductRepository.Delete")
	defer span.End()
	logger.Info(ctx, "Repository")

	res, err := r.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
