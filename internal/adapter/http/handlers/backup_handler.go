package handlers

import (
	"net/http"

	response "mecanica_goelzer/internal/adapter/http/dto/response"
	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	usecase usecase.IBackupUseCase
}

func NewBackupHandler(uc usecase.IBackupUseCase) *BackupHandler {
	return &BackupHandler{usecase: uc}
}

// Backup godoc
// @Summary  Dump every collection
// @Tags     backup
// @Produce  json
// @Success  200  {object}  object
// @Router   /backup [get]
func (h *BackupHandler) Backup(c *gin.Context) {
	snapshot, err := h.usecase.Backup(c.Request.Context())
	if err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Restore godoc
// @Summary  Replace the whole store
// @Description  Rejected when any of the ten base collections is missing.
// @Tags     backup
// @Accept   json
// @Produce  json
// @Param    backup  body  object  true  "Document produced by GET /backup"
// @Success  200  {object}  response.SuccessResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /restore [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	var snapshot entities.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		writeAppError(c, errInvalidBackup)
		return
	}

	if err := h.usecase.Restore(c.Request.Context(), snapshot); err != nil {
		writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Sucesso: true})
}
