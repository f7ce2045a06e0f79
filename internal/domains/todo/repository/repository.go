package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"todos/config"
	"todos/infras/mongo"
	"todos/infras/otel"
	"todos/internal/domains/todo/model"
	"todos/shared/constant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	goMongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	otelCollectionAttribute = "db.collection"
	otelIDAttribute         = "todo.id"
)

// todoProjection limits reads to the fields the API exposes.
var todoProjection = bson.D{
	{Key: model.FieldID, Value: 1},
	{Key: model.FieldText, Value: 1},
	{Key: model.FieldCompleted, Value: 1},
}

type Todo interface {
	Insert(ctx context.Context, todo model.Todo) (model.Todo, error)
	GetAll(ctx context.Context) ([]model.Todo, error)
	// Toggle flips completed in one atomic store call and returns the updated document.
	// A zero model (Exists() == false) means no document has that id.
	Toggle(ctx context.Context, id string) (model.Todo, error)
	// Delete removes the document if present. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db         *mongo.Connection
	collection *goMongo.Collection
	otel       otel.Otel
}

func New(db *mongo.Connection, cfg *config.Config, otel otel.Otel) Todo {
	name := cfg.DB.Mongo.Collection
	if name == "" {
		name = model.CollectionName
	}

	return &repositoryImpl{
		db:         db,
		collection: db.Database.Collection(name),
		otel:       otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, todo model.Todo) (res model.Todo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCollectionAttribute, r.collection.Name())

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	result, err := r.collection.InsertOne(ctx, todo)
	if err != nil {
		return res, fmt.Errorf("inserting %s: %w", model.EntityName, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return res, fmt.Errorf("inserting %s: unexpected id type %T", model.EntityName, result.InsertedID)
	}

	todo.ID = id

	return todo, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) (res []model.Todo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCollectionAttribute, r.collection.Name())

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetProjection(todoProjection))
	if err != nil {
		return nil, fmt.Errorf("finding %ss: %w", model.EntityName, err)
	}

	res = []model.Todo{}
	if err = cursor.All(ctx, &res); err != nil {
		return nil, fmt.Errorf("decoding %ss: %w", model.EntityName, err)
	}

	return res, nil
}

func (r *repositoryImpl) Toggle(ctx context.Context, id string) (res model.Todo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelIDAttribute, id)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid ObjectID, so it cannot name a stored document.
		return res, nil
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	update := goMongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: model.FieldCompleted, Value: bson.D{{Key: "$not", Value: bson.A{"$" + model.FieldCompleted}}}},
		}}},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(todoProjection)

	err = r.collection.FindOneAndUpdate(ctx, bson.D{{Key: model.FieldID, Value: objectID}}, update, opts).Decode(&res)
	if errors.Is(err, goMongo.ErrNoDocuments) {
		return model.Todo{}, nil
	}

	if err != nil {
		return model.Todo{}, fmt.Errorf("toggling %s %s: %w", model.EntityName, id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelIDAttribute, id)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: model.FieldID, Value: objectID}})
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", model.EntityName, id, err)
	}

	scope.SetAttribute("db.deleted_count", result.DeletedCount)

	return nil
}
