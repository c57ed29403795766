package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mecanica_goelzer/internal/domain/entities"
	mock_interfaces "mecanica_goelzer/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBackupUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("backup returns every collection", func(t *testing.T) {
		uc := NewBackupUseCase(newStore(t, shopSeed()))
		snap, err := uc.Backup(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snap) != len(entities.AllCollections) || len(snap[entities.CollectionServicos]) != 5 {
			t.Fatalf("unexpected snapshot %v", snap)
		}
	})

	t.Run("restore replaces the store", func(t *testing.T) {
		repo := newStore(t, shopSeed())
		uc := NewBackupUseCase(repo)

		payload := entities.Snapshot{}
		for _, name := range entities.BaseCollections {
			payload[name] = []entities.Record{}
		}
		payload[entities.CollectionClientes] = []entities.Record{{"id": 9, "nome": "Carla"}}

		if err := uc.Restore(ctx, payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap, _ := uc.Backup(ctx)
		if len(snap[entities.CollectionServicos]) != 0 || len(snap[entities.CollectionClientes]) != 1 {
			t.Fatalf("unexpected snapshot %v", snap)
		}
		if snap[entities.CollectionLogs] == nil {
			t.Fatalf("expected collections outside the base set to default to empty")
		}
	})

	t.Run("restore rejects missing base collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntityRepository(ctrl)
		uc := NewBackupUseCase(repo)

		err := uc.Restore(ctx, entities.Snapshot{entities.CollectionClientes: {}})
		if !errors.Is(err, ErrInvalidBackup) {
			t.Fatalf("expected ErrInvalidBackup, got %v", err)
		}
		if !strings.Contains(err.Error(), entities.CollectionDespesasGerais) {
			t.Fatalf("expected missing names in error, got %v", err)
		}
	})

	t.Run("restore propagates store errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEntityRepository(ctrl)
		uc := NewBackupUseCase(repo)

		payload := entities.Snapshot{}
		for _, name := range entities.BaseCollections {
			payload[name] = []entities.Record{}
		}
		repo.EXPECT().Restore(gomock.Any(), payload).Return(entities.ErrPersistence)

		if err := uc.Restore(ctx, payload); !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}
