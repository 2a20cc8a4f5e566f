package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nordvik/inkwell/internal/models"
)

var (
	ErrMissingPostTitle   = errors.New("post title is required")
	ErrMissingCategory    = errors.New("category name is required")
	ErrPostNotFound       = errors.New("post not found")
	ErrPostNotOwned       = errors.New("post belongs to another author")
	ErrPostNotPublished   = errors.New("post is not published")
	slugInvalidCharacters = regexp.MustCompile(`[^a-z0-9]+`)
)

type PostRepository interface {
	List(publishedOnly bool) ([]models.Post, error)
	FindByID(postID uint) (models.Post, error)
	FindBySlug(slug string) (models.Post, error)
	Create(post *models.Post) error
	Save(post *models.Post) error
	Delete(postID uint) error
}

type CategoryRepository interface {
	List() ([]models.Category, error)
	Create(category *models.Category) error
	Delete(categoryID uint) error
}

type PostInput struct {
	Title      string
	Body       string
	CoverImage string
	CategoryID *uint
	Published  bool
}

type PostService struct {
	posts      PostRepository
	categories CategoryRepository
}

func NewPostService(posts PostRepository, categories CategoryRepository) *PostService {
	return &PostService{posts: posts, categories: categories}
}

func (service *PostService) ListPosts(publishedOnly bool) ([]models.Post, error) {
	return service.posts.List(publishedOnly)
}

func (service *PostService) FindPost(postID uint) (models.Post, error) {
	return service.posts.FindByID(postID)
}

func (service *PostService) FindPublishedBySlug(slug string) (models.Post, error) {
	post, err := service.posts.FindBySlug(slug)
	if err != nil {
		return models.Post{}, err
	}
	if !post.Published {
		return models.Post{}, ErrPostNotPublished
	}
	return post, nil
}

func (service *PostService) CreatePost(authorID uint, input PostInput) (models.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Post{}, ErrMissingPostTitle
	}

	post := models.Post{
		AuthorID:   authorID,
		CategoryID: input.CategoryID,
		Title:      title,
		Slug:       Slugify(title),
		Body:       input.Body,
		CoverImage: strings.TrimSpace(input.CoverImage),
		Published:  input.Published,
	}
	if err := service.posts.Create(&post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (service *PostService) UpdatePost(authorID uint, postID uint, input PostInput) (models.Post, error) {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return models.Post{}, ErrPostNotFound
	}
	if post.AuthorID != authorID {
		return models.Post{}, ErrPostNotOwned
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Post{}, ErrMissingPostTitle
	}

	post.Title = title
	post.Body = input.Body
	post.CoverImage = strings.TrimSpace(input.CoverImage)
	post.CategoryID = input.CategoryID
	post.Published = input.Published

	if err := service.posts.Save(&post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (service *PostService) DeletePost(authorID uint, postID uint) error {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return ErrPostNotFound
	}
	if post.AuthorID != authorID {
		return ErrPostNotOwned
	}
	return service.posts.Delete(postID)
}

func (service *PostService) ListCategories() ([]models.Category, error) {
	return service.categories.List()
}

func (service *PostService) CreateCategory(name string) (models.Category, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.Category{}, ErrMissingCategory
	}
	category := models.Category{Name: trimmed}
	if err := service.categories.Create(&category); err != nil {
		return models.Category{}, err
	}
	return category, nil
}

func (service *PostService) DeleteCategory(categoryID uint) error {
	return service.categories.Delete(categoryID)
}

func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidCharacters.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
