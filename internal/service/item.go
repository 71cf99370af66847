package service

import (
	"intro_web/internal/models"
	"intro_web/internal/repository"
)

type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) ListItems(skip, limit int) []models.Item {
	return s.itemRepo.Slice(skip, limit)
}
