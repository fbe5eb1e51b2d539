package store

import (
	"context"
	"errors"
	"fmt"

	"team-awesome/internal/model"

	"gorm.io/gorm"
)

func (s *Store) GetAllKPIs(ctx context.Context) []model.KPI {
	return fetch(s, ctx, "kpis.list", fallbackKPIs, func(db *gorm.DB) ([]model.KPI, error) {
		var kpis []model.KPI
		if err := db.Order("id ASC").Find(&kpis).Error; err != nil {
			return nil, fmt.Errorf("query kpis: %w", err)
		}
		if kpis == nil {
			kpis = []model.KPI{}
		}
		return kpis, nil
	})
}

func (s *Store) CreateKPI(ctx context.Context, in model.KPIInput) (*model.KPI, error) {
	if s.db == nil {
		return nil, fmt.Errorf("kpis.create: %w", ErrNoDatabase)
	}
	k := kpiFromInput(in)
	if err := s.db.WithContext(ctx).Create(&k).Error; err != nil {
		return nil, fmt.Errorf("kpis.create: %w", err)
	}
	return &k, nil
}

// UpdateKPI rewrites every column of the row and returns the stored
// result, or nil when the id matches nothing.
func (s *Store) UpdateKPI(ctx context.Context, id int, in model.KPIInput) (*model.KPI, error) {
	if s.db == nil {
		return nil, fmt.Errorf("kpis.update: %w", ErrNoDatabase)
	}
	db := s.db.WithContext(ctx)
	k := kpiFromInput(in)
	res := db.Model(&model.KPI{}).Where("id = ?", id).Updates(map[string]interface{}{
		"category":            k.Category,
		"initiative":          k.Initiative,
		"weight":              k.Weight,
		"indicator_item":      k.IndicatorItem,
		"indicator_weight":    k.IndicatorWeight,
		"unit":                k.Unit,
		"target_2025":         k.Target2025,
		"remarks":             k.Remarks,
		"target_s":            k.TargetS,
		"target_a":            k.TargetA,
		"target_b_plus":       k.TargetBPlus,
		"target_b":            k.TargetB,
		"target_b_minus":      k.TargetBMinus,
		"target_c":            k.TargetC,
		"target_d":            k.TargetD,
		"current_achievement": k.CurrentAchievement,
	})
	if res.Error != nil {
		return nil, fmt.Errorf("kpis.update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	var out model.KPI
	if err := db.First(&out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("kpis.update: %w", err)
	}
	return &out, nil
}

func (s *Store) DeleteKPI(ctx context.Context, id int) error {
	return s.exec(ctx, "kpis.delete", func(db *gorm.DB) error {
		return db.Delete(&model.KPI{}, id).Error
	})
}

func kpiFromInput(in model.KPIInput) model.KPI {
	return model.KPI{
		Category:           in.Category,
		Initiative:         in.Initiative,
		Weight:             in.Weight,
		IndicatorItem:      in.IndicatorItem,
		IndicatorWeight:    in.IndicatorWeight,
		Unit:               in.Unit,
		Target2025:         in.Target2025,
		Remarks:            in.Remarks,
		TargetS:            in.TargetS,
		TargetA:            in.TargetA,
		TargetBPlus:        in.TargetBPlus,
		TargetB:            in.TargetB,
		TargetBMinus:       in.TargetBMinus,
		TargetC:            in.TargetC,
		TargetD:            in.TargetD,
		CurrentAchievement: in.CurrentAchievement,
	}
}
