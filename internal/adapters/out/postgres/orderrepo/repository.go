package orderrepo

import (
	"context"
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("insert order", err)
	}

	return nil
}

// Update saves an existing order to the database unconditionally.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// UpdateStatusFrom saves the order only if the stored row is still in the
// expected status. Two concurrent transitions from the same status race on
// this condition and exactly one of them sees a row updated; the other gets
// errs.VersionConflictError without having changed anything.
func (r *GormOrderRepository) UpdateStatusFrom(
	ctx context.Context,
	aggregate *order.Order,
	expected order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expected)).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update order status", result.Error)
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or someone else moved the status first.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return errs.NewStorageError("count order rows", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("order", aggregate.ID().String(), expected)
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("select order", err)
	}

	return toDomain(dto)
}

// GetByRequester retrieves a requester's orders, newest placements first.
func (r *GormOrderRepository) GetByRequester(ctx context.Context, requesterID kernel.UUID) ([]*order.Order, error) {
	if err := requesterID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "requester_id = ?", requesterID.Bytes()).Error
	if err != nil {
		return nil, errs.NewStorageError("select orders by requester", err)
	}

	return toDomainSlice(dtos)
}

// GetByTailor retrieves a tailor's orders narrowed by the status filter,
// most recently updated first.
func (r *GormOrderRepository) GetByTailor(
	ctx context.Context,
	tailorID kernel.UUID,
	filter order.ListFilter,
) ([]*order.Order, error) {
	if err := tailorID.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).
		Where("tailor_id = ?", tailorID.Bytes()).
		Order("updated_at DESC")

	switch filter.Kind() {
	case order.FilterOngoing:
		statuses := make([]int, 0, len(order.OngoingStatuses()))
		for _, s := range order.OngoingStatuses() {
			statuses = append(statuses, int(s))
		}
		tx = tx.Where("status IN ?", statuses)
	case order.FilterExact:
		tx = tx.Where("status = ?", int(filter.Status()))
	case order.FilterAll:
	}

	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("select orders by tailor", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
