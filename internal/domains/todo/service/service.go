package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"

	"todos/infras/otel"
	"todos/internal/domains/todo/model/dto"
	"todos/internal/domains/todo/repository"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/shared/logger"
	"todos/shared/validator"
)

const (
	MessageTodoNotFound = "Todo not found"
)

type Todo interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	Toggle(ctx context.Context, id string) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to get todos")

		return nil, failure.InternalError(err) // nolint:wrapcheck
	}

	scope.SetAttribute("todo.count", len(models))

	return dto.TodosFromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	todo, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("failed to create todo")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	logger.Ctx(ctx).Info().Str("id", todo.ID.Hex()).Msg("todo created")

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todo, err := s.repo.Toggle(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to toggle todo")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	if !todo.Exists() {
		return res, failure.NotFound(MessageTodoNotFound) // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to delete todo")

		return failure.InternalError(err) // nolint:wrapcheck
	}

	return nil
}
