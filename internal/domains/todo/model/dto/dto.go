package dto

import (
	"todos/internal/domains/todo/model"
)

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required" example:"buy milk"`
}

func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		Text:      c.Text,
		Completed: false,
	}
}

type TodoResponse struct {
	ID        string `json:"id"        example:"66f1c2a9e4b0a1b2c3d4e5f6"`
	Text      string `json:"text"      example:"buy milk"`
	Completed bool   `json:"completed" example:"false"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID.Hex()
	r.Text = model.Text
	r.Completed = model.Completed
}

// TodosFromModels always returns a non-nil slice so an empty store encodes as [].
func TodosFromModels(models []model.Todo) []TodoResponse {
	todos := make([]TodoResponse, len(models))
	for i, mod := range models {
		todos[i].FromModel(mod)
	}

	return todos
}
