// Package tailorrepo provides data transfer objects and mapping functions for tailor persistence.
// This package implements the repository pattern for the tailor domain aggregate, handling
// the conversion between domain entities and database representations.
package tailorrepo

import (
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/tailor"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TailorDTO represents the database structure for persisting tailor aggregates.
// The workshop location columns are nullable; a tailor without coordinates is
// registered but never discoverable.
type TailorDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"not null"`
	Status          int       `gorm:"index"`
	Latitude        *float64
	Longitude       *float64
	Specializations pq.StringArray `gorm:"type:text[]"`
	ProvidesFabric  bool
	Rating          float64
}

// TableName specifies the database table name for tailor entities.
// Overrides GORM's default naming convention to use "tailors".
func (TailorDTO) TableName() string {
	return "tailors"
}

// fromDomain converts a tailor domain aggregate to its database representation.
func fromDomain(aggregate *tailor.Tailor) TailorDTO {
	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat, lng := location.Lat(), location.Lng()
		latitude, longitude = &lat, &lng
	}

	return TailorDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Status:          int(aggregate.Status()),
		Latitude:        latitude,
		Longitude:       longitude,
		Specializations: aggregate.Capabilities().Specializations(),
		ProvidesFabric:  aggregate.Capabilities().ProvidesFabric(),
		Rating:          aggregate.Rating(),
	}
}

// toDomain converts a database DTO to a tailor domain aggregate.
func toDomain(dto TailorDTO) (*tailor.Tailor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if geoErr != nil {
			return nil, geoErr
		}
		location = &point
	}

	capabilities := tailor.NewCapabilities(dto.Specializations, dto.ProvidesFabric)

	return tailor.RestoreTailor(
		id,
		dto.Name,
		tailor.Status(dto.Status),
		location,
		capabilities,
		dto.Rating,
	)
}
