package repository

import "intro_web/internal/models"

type Repositories struct {
	Item ItemRepository
}

func NewRepositories(items []models.Item) *Repositories {
	return &Repositories{
		Item: NewItemRepository(items),
	}
}
