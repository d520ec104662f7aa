package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/quizhub-api/internal/domain/entity"
	"github.com/yourusername/quizhub-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizhub-api/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory создает новую категорию.
// Имя уникально без учета регистра: "Math" и "math" считаются дубликатами.
func (s *CategoryService) CreateCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("название категории обязательно: %w", apperrors.ErrValidation)
	}

	if err := s.checkNameTaken(name, 0); err != nil {
		return nil, err
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("категория '%s' уже существует: %w", name, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	log.Printf("[CategoryService] Категория '%s' создана с ID=%d", category.Name, category.ID)
	return category, nil
}

// UpdateCategory обновляет название категории
func (s *CategoryService) UpdateCategory(id uint, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("название категории обязательно: %w", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Исключаем саму категорию из проверки уникальности
	if err := s.checkNameTaken(name, id); err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("категория '%s' уже существует: %w", name, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory удаляет категорию.
// Удаление запрещено, пока на категорию ссылается хотя бы один вопрос.
func (s *CategoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountQuestions(id)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("категория используется %d вопросами и не может быть удалена: %w", count, apperrors.ErrConflict)
	}

	return s.categoryRepo.Delete(id)
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(id uint) (*entity.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// ListCategories возвращает все категории
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	return s.categoryRepo.List()
}

// checkNameTaken проверяет занятость имени без учета регистра, исключая категорию excludeID
func (s *CategoryService) checkNameTaken(name string, excludeID uint) error {
	existing, err := s.categoryRepo.GetByNameFold(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if existing.ID != excludeID {
		return fmt.Errorf("категория '%s' уже существует: %w", name, apperrors.ErrConflict)
	}
	return nil
}
