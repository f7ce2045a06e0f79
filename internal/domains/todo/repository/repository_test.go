package repository_test

import (
	"context"
	"testing"
	"time"

	"todos/config"
	"todos/infras/mongo"
	"todos/infras/otel/mocks"
	"todos/internal/domains/todo/model"
	"todos/internal/domains/todo/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newRepository(mt *mtest.T) repository.Todo {
	cfg := &config.Config{}
	cfg.DB.Mongo.Collection = model.CollectionName

	conn := mongo.NewConnection(mt.Client, mt.DB.Name(), time.Second)

	return repository.New(conn, cfg, mocks.NewOtel())
}

func namespace(mt *mtest.T) string {
	return mt.DB.Name() + "." + model.CollectionName
}

func TestTodoRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns the store generated id", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		todo, err := repo.Insert(context.Background(), model.Todo{Text: "buy milk"})

		require.NoError(mt, err)
		assert.True(mt, todo.Exists())
		assert.Equal(mt, "buy milk", todo.Text)
		assert.False(mt, todo.Completed)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		todo, err := repo.Insert(context.Background(), model.Todo{Text: "buy milk"})

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "Document failed validation")
		assert.False(mt, todo.Exists())
	})
}

func TestTodoRepository_GetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document", func(mt *mtest.T) {
		repo := newRepository(mt)

		first := primitive.NewObjectID()
		second := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "text", Value: "buy milk"}, {Key: "completed", Value: false}},
			bson.D{{Key: "_id", Value: second}, {Key: "text", Value: "walk dog"}, {Key: "completed", Value: true}},
		))

		todos, err := repo.GetAll(context.Background())

		require.NoError(mt, err)
		require.Len(mt, todos, 2)
		assert.Equal(mt, first, todos[0].ID)
		assert.Equal(mt, "buy milk", todos[0].Text)
		assert.False(mt, todos[0].Completed)
		assert.Equal(mt, second, todos[1].ID)
		assert.True(mt, todos[1].Completed)

		started := mt.GetStartedEvent()
		require.NotNil(mt, started)
		assert.Equal(mt, "find", started.CommandName)

		projection, ok := started.Command.Lookup("projection").DocumentOK()
		require.True(mt, ok)

		for _, field := range []string{model.FieldID, model.FieldText, model.FieldCompleted} {
			_, err := projection.LookupErr(field)
			assert.NoError(mt, err, field)
		}
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		todos, err := repo.GetAll(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, todos)
		assert.Empty(mt, todos)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "query failed",
		}))

		todos, err := repo.GetAll(context.Background())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "query failed")
		assert.Nil(mt, todos)
	})
}

func TestTodoRepository_Toggle(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	id := primitive.NewObjectID()

	mt.Run("returns the flipped document", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: id},
				{Key: "text", Value: "buy milk"},
				{Key: "completed", Value: true},
			}},
		})

		todo, err := repo.Toggle(context.Background(), id.Hex())

		require.NoError(mt, err)
		assert.Equal(mt, id, todo.ID)
		assert.True(mt, todo.Completed)
	})

	mt.Run("unknown id", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		todo, err := repo.Toggle(context.Background(), id.Hex())

		require.NoError(mt, err)
		assert.False(mt, todo.Exists())
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		repo := newRepository(mt)

		todo, err := repo.Toggle(context.Background(), "not-an-object-id")

		require.NoError(mt, err)
		assert.False(mt, todo.Exists())
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "update failed",
		}))

		todo, err := repo.Toggle(context.Background(), id.Hex())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "update failed")
		assert.False(mt, todo.Exists())
	})
}

func TestTodoRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing id", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.NoError(mt, err)
	})

	mt.Run("unknown id is not an error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.NoError(mt, err)
	})

	mt.Run("malformed id is not an error", func(mt *mtest.T) {
		repo := newRepository(mt)

		err := repo.Delete(context.Background(), "42")

		assert.NoError(mt, err)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := newRepository(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "delete failed",
		}))

		err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())

		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "delete failed")
	})
}
