package todo

import (
	"net/http"

	"todos/infras/otel"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/service"
	"todos/shared/constant"
	"todos/shared/logger"
	"todos/shared/validator"
	"todos/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	MessageTodoDeleted = "Todo deleted"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Put("/{id}", handler.ToggleTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// GetTodos lists every todo item.
// @Summary List todo items
// @Description Return every stored todo item. An empty store yields an empty array.
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse "List of todo items"
// @Failure 500 {object} response.Error
// @Router /todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		logger.Failure(ctx, err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todos retrieved successfully")

	response.WithJSON(w, http.StatusOK, todos)
}

// CreateTodo handles the creation of a new todo item.
// @Summary Create a todo item
// @Description Create a new, not yet completed, todo item.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.CreateTodoRequest true "Create Todo Request"
// @Success 200 {object} dto.TodoResponse "Created todo item"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos [post]
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logger.Failure(ctx, err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logger.Failure(ctx, err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo created successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// ToggleTodo flips the completed flag of a todo item.
// @Summary Toggle a todo item
// @Description Invert the completed flag of the todo item and return it with its new state.
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} dto.TodoResponse "Updated todo item"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /todos/{id} [put]
func (handler *Handler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	todo, err := handler.service.Toggle(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.Failure(ctx, err).Str("id", id).Msg("failed to toggle todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo toggled successfully")

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo item by its ID.
// @Summary Delete a todo item
// @Description Delete the todo item. Deleting an unknown id still succeeds.
// @Tags Todo
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} response.Message "Todo deleted"
// @Failure 500 {object} response.Error
// @Router /todos/{id} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		logger.Failure(ctx, err).Str("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo deleted successfully")

	response.WithMessage(w, http.StatusOK, MessageTodoDeleted)
}
