package api

import (
	"net/http"
	"strings"

	"github.com/Click-facil/fitclick/internal/service"
	"github.com/gin-gonic/gin"
)

type BackupHandler struct {
	backupService service.BackupService
}

func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// CreateBackup godoc
// @Summary Upload a snapshot of all data to object storage
// @Tags Backups
// @Produce json
// @Success 201 {object} domain.Backup
// @Failure 503 {object} gin.H "Backups are disabled"
// @Router /backups [post]
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	backup, err := h.backupService.Backup(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, backup)
}

// DeleteBackup godoc
// @Summary Delete an uploaded snapshot
// @Tags Backups
// @Param key path string true "Object key, e.g. backups/2024/05/20240507T183000Z-<id>.json"
// @Success 204
// @Failure 400 {object} gin.H "Not a backup object key"
// @Failure 503 {object} gin.H "Backups are disabled"
// @Router /backups/{key} [delete]
func (h *BackupHandler) DeleteBackup(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if err := h.backupService.DeleteBackup(c.Request.Context(), key); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
