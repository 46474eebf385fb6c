package api

import (
	"errors"
	"net/http"
	"strconv"

	"rentradar/internal/domain/item"
	reqdto "rentradar/internal/handler/dto/request"
	resdto "rentradar/internal/handler/dto/response"
	"rentradar/internal/handler/middleware"
	"rentradar/internal/usecase/commands"
	"rentradar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItemHandler struct {
	itemCommands commands.ItemCommands
	itemQueries  queries.ItemQueries
}

func NewItemHandler(itemCommands commands.ItemCommands, itemQueries queries.ItemQueries) *ItemHandler {
	return &ItemHandler{
		itemCommands: itemCommands,
		itemQueries:  itemQueries,
	}
}

// @Summary List items
// @Description List the latest available items
// @Tags items
// @Produce json
// @Param limit query int false "Maximum number of items"
// @Success 200 {array} resdto.ItemListResponse
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	views, err := h.itemQueries.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemListItems(views))
}

// @Summary Search items near a point
// @Description Search available items within a radius, nearest first
// @Tags items
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius_km query number false "Search radius in km"
// @Param category query string false "Category filter"
// @Param min_price query number false "Minimum hourly price"
// @Param max_price query number false "Maximum hourly price"
// @Success 200 {array} resdto.ItemListResponse
// @Failure 400 {object} map[string]string
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var q reqdto.SearchItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "lat and lng are required",
		})
		return
	}

	views, err := h.itemQueries.Search(c.Request.Context(), queries.SearchParams{
		Lat:      q.Lat,
		Lng:      q.Lng,
		RadiusKm: q.RadiusKm,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemListItems(views))
}

// @Summary List categories
// @Description List every item category with its display label
// @Tags items
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /items/categories [get]
func (h *ItemHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCategoryViews(h.itemQueries.Categories()))
}

// @Summary Get item
// @Description Get item details by ID
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Quote a rental window
// @Description Price a rental window against an item without booking it
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Param start query string false "Window start (RFC 3339)"
// @Param end query string false "Window end (RFC 3339)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id}/quote [get]
func (h *ItemHandler) Quote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time format, expected RFC 3339",
		})
		return
	}

	view, err := h.itemQueries.Quote(c.Request.Context(), id, q.Start, q.End)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Create item
// @Description List a new item for rent
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateItemRequest true "Item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	itemID, err := h.itemCommands.Create(c.Request.Context(), userID, commands.CreateItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Deposit:      req.Deposit,
		AddressText:  req.AddressText,
		Lat:          req.Lat,
		Lng:          req.Lng,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		h.respondItemValidationError(c, err)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), itemID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partially update an owned item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to update"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /items/{id} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.itemCommands.Update(c.Request.Context(), userID, id, commands.UpdateItemInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		PricePerHour: req.PricePerHour,
		PricePerDay:  req.PricePerDay,
		Deposit:      req.Deposit,
		AddressText:  req.AddressText,
		Lat:          req.Lat,
		Lng:          req.Lng,
		PhotoURL:     req.PhotoURL,
		IsAvailable:  req.IsAvailable,
	})
	if err != nil {
		h.respondItemValidationError(c, err)
		return
	}

	view, err := h.itemQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete item
// @Description Remove an owned item that has no bookings
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item ID format",
		})
		return
	}

	if err := h.itemCommands.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found",
			})
		case errors.Is(err, commands.ErrNotItemOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only the item owner may modify this listing",
			})
		case errors.Is(err, commands.ErrItemHasBookings):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Item has bookings and cannot be deleted",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ItemHandler) respondItemValidationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Item not found",
		})
	case errors.Is(err, commands.ErrNotItemOwner):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Only the item owner may modify this listing",
		})
	case errors.Is(err, item.ErrEmptyTitle),
		errors.Is(err, item.ErrTitleTooLong),
		errors.Is(err, item.ErrInvalidCategory),
		errors.Is(err, item.ErrInvalidHourlyRate),
		errors.Is(err, item.ErrInvalidDailyRate),
		errors.Is(err, item.ErrNegativeDeposit),
		errors.Is(err, item.ErrInvalidLatitude),
		errors.Is(err, item.ErrInvalidLongitude):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
