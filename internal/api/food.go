package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/foodlog-app/backend/internal/docstore"
	"github.com/foodlog-app/backend/internal/models"
	"github.com/foodlog-app/backend/internal/service"
)

// FoodHandler serves the dashboard listing and the food CRUD endpoints.
type FoodHandler struct {
	foods *service.FoodService
}

func NewFoodHandler(foods *service.FoodService) *FoodHandler {
	return &FoodHandler{foods: foods}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:id", h.GetFood)
		foods.POST("", h.CreateFood)
		foods.PUT("/:id", h.UpdateFood)
		foods.DELETE("/:id", h.DeleteFood)
	}
}

// ListFoods returns one page of the filtered collection. q is the search
// term, page defaults to 1 and is clamped by the listing itself.
func (h *FoodHandler) ListFoods(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = parsed
	}

	listing, err := h.foods.List(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch foods"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	food, err := h.foods.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch food"})
		return
	}

	c.JSON(http.StatusOK, food)
}

// CreateFood accepts a multipart form: foodname, meal, fooddate_at and an
// optional image.
func (h *FoodHandler) CreateFood(c *gin.Context) {
	in, ok := foodInputFromForm(c)
	if !ok {
		return
	}

	img, err := imageFromForm(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.Create(c.Request.Context(), in, img)
	if err != nil {
		if errors.Is(err, service.ErrUploadFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload image"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food"})
		return
	}

	c.JSON(http.StatusCreated, food)
}

// UpdateFood overwrites an entry's content fields; without a new image the
// stored image URL is kept.
func (h *FoodHandler) UpdateFood(c *gin.Context) {
	in, ok := foodInputFromForm(c)
	if !ok {
		return
	}

	img, err := imageFromForm(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.Update(c.Request.Context(), c.Param("id"), in, img)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		if errors.Is(err, service.ErrUploadFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload image"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food"})
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	id := c.Param("id")
	if err := h.foods.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "food deleted successfully", "id": id})
}

func foodInputFromForm(c *gin.Context) (service.FoodInput, bool) {
	name := c.PostForm("foodname")
	date := c.PostForm("fooddate_at")
	if name == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodname and fooddate_at are required"})
		return service.FoodInput{}, false
	}

	meal, err := models.ParseMeal(c.PostForm("meal"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return service.FoodInput{}, false
	}

	return service.FoodInput{FoodName: name, Meal: meal, Date: date}, true
}
