package usecase

import (
	"context"
	"fmt"
	"strings"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"go.uber.org/zap"
)

// IBackupUseCase dumps and replaces the whole store.
type IBackupUseCase interface {
	Backup(ctx context.Context) (entities.Snapshot, error)
	Restore(ctx context.Context, snapshot entities.Snapshot) error
}

type BackupUseCase struct {
	repo interfaces.IEntityRepository
}

var _ IBackupUseCase = (*BackupUseCase)(nil)

func NewBackupUseCase(repo interfaces.IEntityRepository) *BackupUseCase {
	return &BackupUseCase{repo: repo}
}

func (u *BackupUseCase) Backup(ctx context.Context) (entities.Snapshot, error) {
	return u.repo.Snapshot(ctx)
}

// Restore rejects a payload missing any base collection. Collections added
// after the base set default to empty when absent.
func (u *BackupUseCase) Restore(ctx context.Context, snapshot entities.Snapshot) error {
	if missing := snapshot.MissingCollections(entities.BaseCollections); len(missing) > 0 {
		logger.Log.Warn("[backup][usecase] restore rejected", zap.Strings("missing", missing))
		return fmt.Errorf("%w: missing %s", ErrInvalidBackup, strings.Join(missing, ", "))
	}
	if err := u.repo.Restore(ctx, snapshot); err != nil {
		logger.Log.Error("[backup][usecase] restore failed", zap.Error(err))
		return err
	}
	logger.Log.Info("[backup][usecase] restore success")
	return nil
}
