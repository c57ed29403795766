package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"
	"mecanica_goelzer/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrNotFound                = errors.New("record not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrInvalidBackup           = errors.New("invalid backup")
	ErrReceivableNotApplicable = errors.New("receivable not applicable")
	ErrOrderAlreadyClosed      = errors.New("order already closed")
	ErrUnknownCollection       = entities.ErrUnknownCollection
	ErrPersistence             = entities.ErrPersistence
)

// Query keys with special meaning when listing orders.
const (
	filterMes       = "mes"
	filterAno       = "ano"
	filterServicoID = "servico_id"
)

// IEntityUseCase is the generic CRUD surface over every collection.
//
// Creating records in some collections fills defaults:
//   - ordens: numero and data_abertura
//   - orcamentos: numero and data_emissao
//   - logs, movimentacoes_estoque: timestamp
type IEntityUseCase interface {
	List(ctx context.Context, collection string, filters map[string]string) ([]entities.Record, error)
	Get(ctx context.Context, collection string, id int) (entities.Record, error)
	Create(ctx context.Context, collection string, record entities.Record) (entities.Record, error)
	Update(ctx context.Context, collection string, id int, patch entities.Record) (entities.Record, error)
	Delete(ctx context.Context, collection string, id int) error
}

type EntityUseCase struct {
	repo interfaces.IEntityRepository
	now  func() time.Time
}

var _ IEntityUseCase = (*EntityUseCase)(nil)

func NewEntityUseCase(repo interfaces.IEntityRepository) *EntityUseCase {
	return &EntityUseCase{repo: repo, now: time.Now}
}

func (u *EntityUseCase) List(ctx context.Context, collection string, filters map[string]string) ([]entities.Record, error) {
	if collection != entities.CollectionOrdens {
		return u.repo.List(ctx, collection, filters)
	}

	match, err := orderFilter(filters)
	if err != nil {
		return nil, err
	}
	return u.repo.Find(ctx, collection, match)
}

// orderFilter combines plain equality filters with the order-only ones:
// mes+ano match the opening month, ano alone the opening year, servico_id
// matches membership in servicos_ids.
func orderFilter(filters map[string]string) (func(entities.Record) bool, error) {
	equality := make(map[string]string, len(filters))
	for k, v := range filters {
		equality[k] = v
	}

	var prefix string
	if ano, ok := filters[filterAno]; ok {
		year, err := strconv.Atoi(strings.TrimSpace(ano))
		if err != nil {
			return nil, fmt.Errorf("%w: ano=%q", ErrInvalidInput, ano)
		}
		prefix = fmt.Sprintf("%04d", year)
		if mes, ok := filters[filterMes]; ok {
			month, err := strconv.Atoi(strings.TrimSpace(mes))
			if err != nil || month < 1 || month > 12 {
				return nil, fmt.Errorf("%w: mes=%q", ErrInvalidInput, mes)
			}
			prefix = fmt.Sprintf("%04d-%02d", year, month)
		}
	}
	delete(equality, filterAno)
	delete(equality, filterMes)

	serviceID := 0
	if raw, ok := filters[filterServicoID]; ok {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: servico_id=%q", ErrInvalidInput, raw)
		}
		serviceID = id
		delete(equality, filterServicoID)
	}

	return func(rec entities.Record) bool {
		if prefix != "" && !strings.HasPrefix(rec.String(entities.FieldDataAbertura), prefix) {
			return false
		}
		if serviceID != 0 && !entities.OrderFromRecord(rec).UsesService(serviceID) {
			return false
		}
		for k, want := range equality {
			v, ok := rec[k]
			if !ok || v == nil || entities.FormatValue(v) != want {
				return false
			}
		}
		return true
	}, nil
}

func (u *EntityUseCase) Get(ctx context.Context, collection string, id int) (entities.Record, error) {
	rec, err := u.repo.GetByID(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (u *EntityUseCase) Create(ctx context.Context, collection string, record entities.Record) (entities.Record, error) {
	if record == nil {
		record = entities.Record{}
	}
	now := u.now()

	switch collection {
	case entities.CollectionOrdens:
		return u.createNumbered(ctx, collection, record, entities.FieldDataAbertura, now, nextOrderNumber)
	case entities.CollectionOrcamentos:
		return u.createNumbered(ctx, collection, record, entities.FieldDataEmissao, now, nextBudgetNumber)
	case entities.CollectionLogs, entities.CollectionMovimentacoesEstoque:
		if !record.Has(entities.FieldTimestamp) {
			record = record.Clone()
			record[entities.FieldTimestamp] = now.UTC().Format(time.RFC3339)
		}
	}

	created, err := u.repo.Add(ctx, collection, record)
	if err != nil {
		logger.Log.Error("[entity][usecase] create failed", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	logger.Log.Info("[entity][usecase] created", zap.String("collection", collection), zap.Int("id", created.ID()))
	return created, nil
}

// createNumbered fills the display number and date and inserts the record
// under the same lock, so two concurrent creates never share a number.
func (u *EntityUseCase) createNumbered(
	ctx context.Context,
	collection string,
	record entities.Record,
	dateField string,
	now time.Time,
	number func(interfaces.IEntityTx, time.Time) (string, error),
) (entities.Record, error) {
	var created entities.Record
	err := u.repo.Tx(ctx, func(tx interfaces.IEntityTx) error {
		rec := record.Clone()
		if !rec.Has(entities.FieldNumero) {
			n, err := number(tx, now)
			if err != nil {
				return err
			}
			rec[entities.FieldNumero] = n
		}
		if !rec.Has(dateField) {
			rec[dateField] = now.Format(entities.DateLayout)
		}
		var err error
		created, err = tx.Add(collection, rec)
		return err
	})
	if err != nil {
		logger.Log.Error("[entity][usecase] create failed", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}
	logger.Log.Info("[entity][usecase] created",
		zap.String("collection", collection),
		zap.Int("id", created.ID()),
		zap.String("numero", created.String(entities.FieldNumero)),
	)
	return created, nil
}

func (u *EntityUseCase) Update(ctx context.Context, collection string, id int, patch entities.Record) (entities.Record, error) {
	updated, err := u.repo.Update(ctx, collection, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (u *EntityUseCase) Delete(ctx context.Context, collection string, id int) error {
	removed, err := u.repo.Remove(ctx, collection, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	logger.Log.Info("[entity][usecase] removed", zap.String("collection", collection), zap.Int("id", id))
	return nil
}
