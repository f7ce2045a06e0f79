package dto_test

import (
	"encoding/json"
	"testing"

	"todos/internal/domains/todo/model"
	"todos/internal/domains/todo/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateTodoRequest_ToModel(t *testing.T) {
	req := dto.CreateTodoRequest{
		Text: "buy milk",
	}

	todo := req.ToModel()

	assert.True(t, todo.ID.IsZero(), "expected ID to be left for the store to assign")
	assert.False(t, todo.Exists())
	assert.Equal(t, req.Text, todo.Text)
	assert.False(t, todo.Completed)
}

func TestTodoResponse_FromModel(t *testing.T) {
	id := primitive.NewObjectID()
	todoModel := model.Todo{
		ID:        id,
		Text:      "buy milk",
		Completed: true,
	}

	var response dto.TodoResponse
	response.FromModel(todoModel)

	assert.Equal(t, id.Hex(), response.ID)
	assert.Equal(t, todoModel.Text, response.Text)
	assert.Equal(t, todoModel.Completed, response.Completed)
}

func TestTodoResponse_JSONShape(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("66f1c2a9e4b0a1b2c3d4e5f6")
	require.NoError(t, err)

	var response dto.TodoResponse
	response.FromModel(model.Todo{ID: id, Text: "buy milk"})

	body, err := json.Marshal(response)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"66f1c2a9e4b0a1b2c3d4e5f6","text":"buy milk","completed":false}`, string(body))
}

func TestTodosFromModels(t *testing.T) {
	todos := []model.Todo{
		{ID: primitive.NewObjectID(), Text: "first", Completed: false},
		{ID: primitive.NewObjectID(), Text: "second", Completed: true},
	}

	response := dto.TodosFromModels(todos)

	require.Len(t, response, len(todos))

	for i, todo := range response {
		assert.Equal(t, todos[i].ID.Hex(), todo.ID)
		assert.Equal(t, todos[i].Text, todo.Text)
		assert.Equal(t, todos[i].Completed, todo.Completed)
	}
}

func TestTodosFromModels_EmptyList(t *testing.T) {
	response := dto.TodosFromModels(nil)

	assert.NotNil(t, response)
	assert.Len(t, response, 0)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}
