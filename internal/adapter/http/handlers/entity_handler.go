package handlers

import (
	"net/http"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EntityHandler serves the generic CRUD routes. Each method returns a
// gin.HandlerFunc bound to one collection.
type EntityHandler struct {
	usecase usecase.IEntityUseCase
}

func NewEntityHandler(uc usecase.IEntityUseCase) *EntityHandler {
	return &EntityHandler{usecase: uc}
}

// List godoc
// @Summary      List records
// @Description  Every query parameter is an equality filter. For ordens, mes+ano and ano match data_abertura by prefix and servico_id matches servicos_ids.
// @Tags         entities
// @Produce      json
// @Param        collection  path  string  true  "Collection name"
// @Success      200  {array}   object
// @Failure      400  {object}  pkg.HTTPError
// @Router       /{collection} [get]
func (h *EntityHandler) List(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := make(map[string]string)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				filters[key] = values[0]
			}
		}

		records, err := h.usecase.List(c.Request.Context(), collection, filters)
		if err != nil {
			writeError(c, err, collection)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// Get godoc
// @Summary  Get a record by id
// @Tags     entities
// @Produce  json
// @Param    collection  path  string   true  "Collection name"
// @Param    id          path  integer  true  "Record id"
// @Success  200  {object}  object
// @Failure  404  {object}  pkg.HTTPError
// @Router   /{collection}/{id} [get]
func (h *EntityHandler) Get(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramInt(c, "id")
		if !ok {
			writeAppError(c, errInvalidID)
			return
		}

		record, err := h.usecase.Get(c.Request.Context(), collection, id)
		if err != nil {
			writeError(c, err, collection)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// Create godoc
// @Summary  Create a record
// @Description  The id is always assigned by the store; a client-supplied id is overwritten.
// @Tags     entities
// @Accept   json
// @Produce  json
// @Param    collection  path  string  true  "Collection name"
// @Param    record      body  object  true  "Record fields"
// @Success  201  {object}  object
// @Failure  400  {object}  pkg.HTTPError
// @Router   /{collection} [post]
func (h *EntityHandler) Create(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload entities.Record
		if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
			writeAppError(c, errInvalidRequest)
			return
		}

		created, err := h.usecase.Create(c.Request.Context(), collection, payload)
		if err != nil {
			writeError(c, err, collection)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// Update godoc
// @Summary  Update a record
// @Description  Shallow merge of the body into the stored record. The id cannot change.
// @Tags     entities
// @Accept   json
// @Produce  json
// @Param    collection  path  string   true  "Collection name"
// @Param    id          path  integer  true  "Record id"
// @Param    patch       body  object   true  "Fields to merge"
// @Success  200  {object}  object
// @Failure  404  {object}  pkg.HTTPError
// @Router   /{collection}/{id} [put]
func (h *EntityHandler) Update(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramInt(c, "id")
		if !ok {
			writeAppError(c, errInvalidID)
			return
		}

		var patch entities.Record
		if err := c.ShouldBindJSON(&patch); err != nil {
			writeAppError(c, errInvalidRequest)
			return
		}

		updated, err := h.usecase.Update(c.Request.Context(), collection, id, patch)
		if err != nil {
			writeError(c, err, collection)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// Delete godoc
// @Summary  Delete a record
// @Tags     entities
// @Param    collection  path  string   true  "Collection name"
// @Param    id          path  integer  true  "Record id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /{collection}/{id} [delete]
func (h *EntityHandler) Delete(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramInt(c, "id")
		if !ok {
			writeAppError(c, errInvalidID)
			return
		}

		if err := h.usecase.Delete(c.Request.Context(), collection, id); err != nil {
			writeError(c, err, collection)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
