package db

import (
	"github.com/nordvik/inkwell/internal/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	database *gorm.DB
}

func NewPostRepository(database *gorm.DB) *PostRepository {
	return &PostRepository{database: database}
}

func (repo *PostRepository) List(publishedOnly bool) ([]models.Post, error) {
	query := repo.database.Model(&models.Post{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	posts := make([]models.Post, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepository) FindByID(postID uint) (models.Post, error) {
	var post models.Post
	if err := repo.database.First(&post, postID).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (repo *PostRepository) FindBySlug(slug string) (models.Post, error) {
	var post models.Post
	if err := repo.database.Where("slug = ?", slug).First(&post).Error; err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (repo *PostRepository) Create(post *models.Post) error {
	return repo.database.Create(post).Error
}

func (repo *PostRepository) Save(post *models.Post) error {
	return repo.database.Save(post).Error
}

func (repo *PostRepository) Delete(postID uint) error {
	return repo.database.Delete(&models.Post{}, postID).Error
}

type CategoryRepository struct {
	database *gorm.DB
}

func NewCategoryRepository(database *gorm.DB) *CategoryRepository {
	return &CategoryRepository{database: database}
}

func (repo *CategoryRepository) List() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := repo.database.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (repo *CategoryRepository) Create(category *models.Category) error {
	return repo.database.Create(category).Error
}

func (repo *CategoryRepository) Delete(categoryID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("category_id = ?", categoryID).Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, categoryID).Error
	})
}
