// Package settingsrepo implements store settings persistence over GORM.
// The settings table holds a single row that is created lazily with default
// values on first read.
package settingsrepo

import (
	"context"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/kernel"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/settings"

	"gorm.io/gorm"
)

const settingsRowID = 1

// SettingsDTO represents the single store settings row.
type SettingsDTO struct {
	ID                 int `gorm:"primaryKey"`
	MinimumOrder       float64
	DeliveryFeePerKm   float64
	MinimumDeliveryFee float64
	StoreLat           *float64
	StoreLng           *float64
	StoreAddress       string
	Phone              string
	Whatsapp           string
	Email              string
}

// TableName specifies the database table name for the settings record.
func (SettingsDTO) TableName() string {
	return "store_settings"
}

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves the settings record, inserting the defaults if it does not
// exist yet.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.StoreSettings, error) {
	dto := defaultDTO()
	err := r.db.WithContext(ctx).
		Where(SettingsDTO{ID: settingsRowID}).
		Attrs(dto).
		FirstOrCreate(&dto).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the settings record.
func (r *GormSettingsRepository) Update(ctx context.Context, aggregate *settings.StoreSettings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).
		Model(&SettingsDTO{}).
		Where("id = ?", settingsRowID).
		Select("*").Omit("id").
		Updates(&dto).Error
}

func defaultDTO() SettingsDTO {
	lat := settings.DefaultStoreLatitude
	lng := settings.DefaultStoreLongitude
	return SettingsDTO{
		ID:                 settingsRowID,
		MinimumOrder:       settings.DefaultMinimumOrder,
		DeliveryFeePerKm:   settings.DefaultDeliveryFeePerKm,
		MinimumDeliveryFee: settings.DefaultMinimumDeliveryFee,
		StoreLat:           &lat,
		StoreLng:           &lng,
	}
}

func fromDomain(aggregate *settings.StoreSettings) SettingsDTO {
	dto := SettingsDTO{
		ID:                 settingsRowID,
		MinimumOrder:       aggregate.MinimumOrder(),
		DeliveryFeePerKm:   aggregate.DeliveryFeePerKm(),
		MinimumDeliveryFee: aggregate.MinimumDeliveryFee(),
		StoreAddress:       aggregate.StoreAddress(),
		Phone:              aggregate.Phone(),
		Whatsapp:           aggregate.Whatsapp(),
		Email:              aggregate.Email(),
	}

	if location, configured := aggregate.StoreLocation(); configured {
		lat := location.Latitude()
		lng := location.Longitude()
		dto.StoreLat = &lat
		dto.StoreLng = &lng
	}

	return dto
}

func toDomain(dto SettingsDTO) (*settings.StoreSettings, error) {
	var location *kernel.GeoPoint
	if dto.StoreLat != nil && dto.StoreLng != nil {
		built, err := kernel.NewGeoPoint(*dto.StoreLat, *dto.StoreLng)
		if err != nil {
			return nil, err
		}
		location = &built
	}

	return settings.RestoreStoreSettings(
		dto.MinimumOrder, dto.DeliveryFeePerKm, dto.MinimumDeliveryFee,
		location,
		dto.StoreAddress, dto.Phone, dto.Whatsapp, dto.Email,
	)
}
