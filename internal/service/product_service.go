package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, expert *domain.User, input domain.CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListByExpert(ctx context.Context, viewer *domain.User, expertID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Product], error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *productService) Create(ctx context.Context, expert *domain.User, input domain.CreateProductInput) (*domain.Product, error) {
	if !expert.HasRole("expert") {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(input.Title) == "" || input.Price <= 0 {
		return nil, ErrValidation
	}

	product := &domain.Product{
		ID:          uuid.New(),
		ExpertID:    expert.ID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListByExpert shows inactive products only to the owning expert and admins.
func (s *productService) ListByExpert(ctx context.Context, viewer *domain.User, expertID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Product], error) {
	activeOnly := true
	if viewer != nil && (viewer.ID == expertID || viewer.HasRole("admin")) {
		activeOnly = false
	}

	products, total, err := s.productRepo.ListByExpert(ctx, expertID, activeOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Product]{}, err
	}
	return domain.NewPaginatedResponse(products, params.Page, params.PageSize, total), nil
}

func (s *productService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateProductInput) (*domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if product.ExpertID != actor.ID && !actor.HasRole("admin") {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrValidation
		}
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, ErrValidation
		}
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if product.ExpertID != actor.ID && !actor.HasRole("admin") {
		return ErrForbidden
	}

	return s.productRepo.Delete(ctx, id)
}
