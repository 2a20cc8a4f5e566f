package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nordvik/inkwell/internal/services"
)

func (handler *Handler) ListPosts(c *fiber.Ctx) error {
	_, authenticated := currentUser(c)
	posts, err := handler.postService.ListPosts(!authenticated)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}
	return c.JSON(fiber.Map{"posts": posts})
}

func (handler *Handler) GetPost(c *fiber.Ctx) error {
	postID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid post id")
	}

	post, err := handler.postService.FindPost(postID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "post not found")
	}
	if user, ok := currentUser(c); !post.Published && (!ok || user.ID != post.AuthorID) {
		return apiError(c, fiber.StatusNotFound, "post not found")
	}
	return c.JSON(post)
}

func (handler *Handler) CreatePost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := postPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	post, err := handler.postService.CreatePost(user.ID, services.PostInput{
		Title:      payload.Title,
		Body:       payload.Body,
		CoverImage: payload.CoverImage,
		CategoryID: payload.CategoryID,
		Published:  payload.Published,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissingPostTitle) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

func (handler *Handler) UpdatePost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	postID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid post id")
	}

	payload := postPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	post, err := handler.postService.UpdatePost(user.ID, postID, services.PostInput{
		Title:      payload.Title,
		Body:       payload.Body,
		CoverImage: payload.CoverImage,
		CategoryID: payload.CategoryID,
		Published:  payload.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrPostNotOwned):
			return apiError(c, fiber.StatusForbidden, err.Error())
		case errors.Is(err, services.ErrMissingPostTitle):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
		}
	}
	return c.JSON(post)
}

func (handler *Handler) DeletePost(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	postID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid post id")
	}

	if err := handler.postService.DeletePost(user.ID, postID); err != nil {
		switch {
		case errors.Is(err, services.ErrPostNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrPostNotOwned):
			return apiError(c, fiber.StatusForbidden, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
		}
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListCategories(c *fiber.Ctx) error {
	categories, err := handler.postService.ListCategories()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (handler *Handler) CreateCategory(c *fiber.Ctx) error {
	payload := categoryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	category, err := handler.postService.CreateCategory(payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrMissingCategory) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusConflict, "category already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (handler *Handler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}
	if err := handler.postService.DeleteCategory(categoryID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "store unavailable, try again")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}
