package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/adapter/http/mapper"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
	"tasktrack/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	categories, err := h.categoryService.ListCategories(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang),
		)
		return
	}

	items := mapper.ToCategoryItems(categories)
	c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: items, Count: len(items)})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	categoryID, ok := parseIDParam(c, lang, apierrors.MsgCategoryNotFound)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), categoryID, identity.UserID)
	if err != nil {
		// Absent and owned-by-someone-else both land here.
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetCategory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{Category: mapper.ToCategoryItem(category)})
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	name, ok := bindCategoryName(c, lang)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), name, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryExists) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCategoryExists, lang),
			)
			return
		}

		zap.L().Error("failed to create category", zap.Uint64("user_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCategory, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryResponse{
		Message:  "Category created successfully",
		Category: mapper.ToCategoryItem(category),
	})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	categoryID, ok := parseIDParam(c, lang, apierrors.MsgCategoryNotFound)
	if !ok {
		return
	}

	name, ok := bindCategoryName(c, lang)
	if !ok {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, identity.UserID, name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
		case errors.Is(err, domain.ErrCategoryExists):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCategoryExists, lang),
			)
		default:
			zap.L().Error("failed to update category", zap.Uint64("category_id", categoryID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateCategory, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{
		Message:  "Category updated successfully",
		Category: mapper.ToCategoryItem(category),
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, _ := middleware.GetIdentity(c)

	categoryID, ok := parseIDParam(c, lang, apierrors.MsgCategoryNotFound)
	if !ok {
		return
	}

	category, err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteCategory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryResponse{
		Message:  "Category deleted successfully",
		Category: mapper.ToCategoryItem(category),
	})
}

func bindCategoryName(c *gin.Context, lang string) (string, bool) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCategoryNameNeeded, lang),
		)
		return "", false
	}

	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgCategoryNameNeeded, lang),
		)
		return "", false
	}

	return name, true
}
