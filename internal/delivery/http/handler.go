package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pantrysync/backend/internal/domain"
	"github.com/pantrysync/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parser     *usecase.IngredientParser
	classifier *usecase.Classifier
	merger     *usecase.MergeService
	builder    *usecase.ListBuilder
	lists      domain.ShoppingListAdmin
	repo       domain.ShoppingListRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(
	parser *usecase.IngredientParser,
	classifier *usecase.Classifier,
	merger *usecase.MergeService,
	builder *usecase.ListBuilder,
	lists domain.ShoppingListAdmin,
	repo domain.ShoppingListRepository,
) *Handler {
	return &Handler{
		parser:     parser,
		classifier: classifier,
		merger:     merger,
		builder:    builder,
		lists:      lists,
		repo:       repo,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pantrysync-backend",
		"version": "1.0.0",
	})
}

type parseRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// ParseIngredients turns free-text ingredient lines into structured form.
func (h *Handler) ParseIngredients(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parsed := make([]domain.ParsedIngredient, 0, len(req.Lines))
	for _, line := range req.Lines {
		parsed = append(parsed, h.parser.Parse(line))
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": parsed})
}

type classifyRequest struct {
	Ingredients []string `json:"ingredients" binding:"required"`
}

// ClassifyRecipe tags an ingredient list with allergen and dietary
// categories, plus the flat category rows the persistence layer stores.
func (h *Handler) ClassifyRecipe(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"allergens":  h.classifier.ClassifyAllergens(req.Ingredients),
		"dietary":    h.classifier.ClassifyDietary(req.Ingredients),
		"categories": h.classifier.ClassifyRecipe(req.Ingredients),
	})
}

// CreateList registers a new empty shopping list.
func (h *Handler) CreateList(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"id": h.lists.CreateList()})
}

// GetList returns a list's items.
func (h *Handler) GetList(c *gin.Context) {
	listID, ok := h.listID(c)
	if !ok {
		return
	}
	items, err := h.repo.ListItems(c.Request.Context(), listID)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type addItemsRequest struct {
	Items []domain.MergeInput `json:"items" binding:"required"`
}

// AddItems add-or-merges a batch of pre-scaled ingredient mentions into a
// list.
func (h *Handler) AddItems(c *gin.Context) {
	listID, ok := h.listID(c)
	if !ok {
		return
	}
	var req addItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.merger.AddOrMergeAll(c.Request.Context(), listID, req.Items)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type addRecipeRequest struct {
	RecipeName    string   `json:"recipe_name" binding:"required"`
	ServingsRatio float64  `json:"servings_ratio"`
	Ingredients   []string `json:"ingredients" binding:"required"`
}

// AddRecipe parses a recipe's ingredient lines and merges them into a list,
// scaled by the serving ratio.
func (h *Handler) AddRecipe(c *gin.Context) {
	listID, ok := h.listID(c)
	if !ok {
		return
	}
	var req addRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.builder.AddRecipeIngredients(c.Request.Context(), listID, req.RecipeName, req.ServingsRatio, req.Ingredients)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

type addMealPlanRequest struct {
	Recipes []usecase.PlannedRecipe `json:"recipes" binding:"required"`
}

// AddMealPlan merges every recipe of a meal plan into a list, multiplying
// quantities by each recipe's repeat count.
func (h *Handler) AddMealPlan(c *gin.Context) {
	listID, ok := h.listID(c)
	if !ok {
		return
	}
	var req addMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.builder.AddMealPlanIngredients(c.Request.Context(), listID, req.Recipes)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *Handler) listID(c *gin.Context) (uuid.UUID, bool) {
	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid list id"})
		return uuid.Nil, false
	}
	return listID, true
}

func (h *Handler) writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrListNotFound) || errors.Is(err, domain.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
