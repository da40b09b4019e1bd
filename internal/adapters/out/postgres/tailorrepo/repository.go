package tailorrepo

import (
	"context"
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"
	"tailoring/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTailorRepository implements TailorRepository using GORM. Its
// WithinRadiusKm method also satisfies the discovery candidate source
// contract, pushing the distance cut to the database.
type GormTailorRepository struct {
	db *gorm.DB
}

// NewGormTailorRepository creates a new GORM tailor repository.
func NewGormTailorRepository(db *gorm.DB) *GormTailorRepository {
	return &GormTailorRepository{
		db: db,
	}
}

// Add saves a new tailor to the database.
func (r *GormTailorRepository) Add(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("insert tailor", err)
	}

	return nil
}

// Update saves an existing tailor to the database.
func (r *GormTailorRepository) Update(ctx context.Context, aggregate *tailor.Tailor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TailorDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update tailor", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tailor", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a tailor by ID.
func (r *GormTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TailorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tailor", id.String())
		}
		return nil, errs.NewStorageError("select tailor", err)
	}

	return toDomain(dto)
}

// WithinRadiusKm retrieves active tailors whose workshop lies within radiusKm
// of origin. The great-circle distance is computed in SQL with the haversine
// formula so only candidate rows leave the database.
func (r *GormTailorRepository) WithinRadiusKm(
	ctx context.Context,
	origin kernel.GeoPoint,
	radiusKm float64,
) ([]*tailor.Tailor, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, "unbounded")
	}

	var dtos []TailorDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status,
			latitude,
			longitude,
			specializations,
			provides_fabric,
			rating
		FROM tailors
		WHERE status = ?
		  AND latitude IS NOT NULL
		  AND longitude IS NOT NULL
		  AND 2 * ? * asin(sqrt(
				power(sin(radians(latitude - ?) / 2), 2) +
				cos(radians(?)) * cos(radians(latitude)) *
				power(sin(radians(longitude - ?) / 2), 2)
		  )) <= ?
	`,
		int(tailor.Active),
		kernel.EarthRadiusKm,
		origin.Lat(), origin.Lat(), origin.Lng(),
		radiusKm,
	).Scan(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("select tailors within radius", err)
	}

	tailors := make([]*tailor.Tailor, 0, len(dtos))
	for _, dto := range dtos {
		t, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		tailors = append(tailors, t)
	}

	return tailors, nil
}
