package usecase

import (
	"context"
	"fmt"
	"time"

	"mecanica_goelzer/internal/domain/entities"
	"mecanica_goelzer/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// IFinanceUseCase exposes the read-only reports. Dates are matched by
// string prefix on the "data" field.
type IFinanceUseCase interface {
	Dashboard(ctx context.Context) (entities.Dashboard, error)
	AnnualReport(ctx context.Context, year int) (entities.AnnualReport, error)
	MonthlyReport(ctx context.Context, year, month int) (entities.MonthlyReport, error)
	Margin(ctx context.Context, partID int) (decimal.Decimal, error)
	LowStock(ctx context.Context) ([]entities.Part, error)
	ServiceReport(ctx context.Context, serviceID int) (entities.ServiceReport, error)
}

type FinanceUseCase struct {
	repo interfaces.IEntityRepository
	now  func() time.Time
}

var _ IFinanceUseCase = (*FinanceUseCase)(nil)

func NewFinanceUseCase(repo interfaces.IEntityRepository) *FinanceUseCase {
	return &FinanceUseCase{repo: repo, now: time.Now}
}

func (u *FinanceUseCase) Dashboard(ctx context.Context) (entities.Dashboard, error) {
	var d entities.Dashboard
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) error {
		customers, err := tx.List(entities.CollectionClientes, nil)
		if err != nil {
			return err
		}
		vehicles, err := tx.List(entities.CollectionVeiculos, nil)
		if err != nil {
			return err
		}
		open, err := tx.Find(entities.CollectionOrdens, func(rec entities.Record) bool {
			return entities.IsOpenOrderStatus(rec.String(entities.FieldStatus))
		})
		if err != nil {
			return err
		}

		d.TotalCustomers = len(customers)
		d.TotalVehicles = len(vehicles)
		d.OpenOrders = len(open)
		d.Month, err = summarize(tx, u.now().Format("2006-01"))
		return err
	})
	return d, err
}

func (u *FinanceUseCase) AnnualReport(ctx context.Context, year int) (entities.AnnualReport, error) {
	r := entities.AnnualReport{Year: year}
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) (err error) {
		r.FinancialSummary, err = summarize(tx, fmt.Sprintf("%d", year))
		return err
	})
	return r, err
}

func (u *FinanceUseCase) MonthlyReport(ctx context.Context, year, month int) (entities.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return entities.MonthlyReport{}, fmt.Errorf("%w: mes=%d", ErrInvalidInput, month)
	}
	r := entities.MonthlyReport{Year: year, Month: month}
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) (err error) {
		r.FinancialSummary, err = summarize(tx, fmt.Sprintf("%d-%02d", year, month))
		return err
	})
	return r, err
}

// Margin is zero for a missing part or a part with zero cost.
func (u *FinanceUseCase) Margin(ctx context.Context, partID int) (decimal.Decimal, error) {
	rec, err := u.repo.GetByID(ctx, entities.CollectionPecas, partID)
	if err != nil || rec == nil {
		return decimal.Zero, err
	}
	return entities.PartFromRecord(rec).Margin(), nil
}

func (u *FinanceUseCase) LowStock(ctx context.Context) ([]entities.Part, error) {
	recs, err := u.repo.Find(ctx, entities.CollectionPecas, func(rec entities.Record) bool {
		return entities.PartFromRecord(rec).IsLowStock()
	})
	if err != nil {
		return nil, err
	}
	parts := make([]entities.Part, 0, len(recs))
	for _, rec := range recs {
		parts = append(parts, entities.PartFromRecord(rec))
	}
	return parts, nil
}

// ServiceReport counts every reference to the service across orders and
// bills the labor price once per reference.
func (u *FinanceUseCase) ServiceReport(ctx context.Context, serviceID int) (entities.ServiceReport, error) {
	var r entities.ServiceReport
	err := u.repo.View(ctx, func(tx interfaces.IEntityTx) error {
		rec, err := tx.GetByID(entities.CollectionServicos, serviceID)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}
		r.Service = entities.ServiceFromRecord(rec)

		orders, err := tx.Find(entities.CollectionOrdens, func(o entities.Record) bool {
			return entities.OrderFromRecord(o).UsesService(serviceID)
		})
		if err != nil {
			return err
		}
		for _, o := range orders {
			r.OrderIDs = append(r.OrderIDs, o.ID())
			for _, id := range o.IntSlice(entities.FieldServicosIDs) {
				if id == serviceID {
					r.TimesUsed++
				}
			}
		}
		r.TotalBilled = r.Service.LaborPrice.Mul(decimal.NewFromInt(int64(r.TimesUsed)))
		return nil
	})
	return r, err
}
