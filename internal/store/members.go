package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"team-awesome/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetAllMembers returns every member with the stat vector aggregated in
// ascending category sort order, members ordered by COALESCE(display_order, id).
func (s *Store) GetAllMembers(ctx context.Context) []model.MemberView {
	return fetch(s, ctx, "members.list", fallbackMembers, func(db *gorm.DB) ([]model.MemberView, error) {
		return listMembers(db, nil)
	})
}

// GetMemberByID returns one member or nil when the id matches no row.
func (s *Store) GetMemberByID(ctx context.Context, id int) *model.MemberView {
	fallback := func() *model.MemberView {
		for _, m := range fallbackMembers() {
			if m.ID == id {
				m := m
				return &m
			}
		}
		return nil
	}
	return fetch(s, ctx, "members.get", fallback, func(db *gorm.DB) (*model.MemberView, error) {
		var m model.TeamMember
		err := db.First(&m, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query member: %w", err)
		}
		stats, err := statVector(db, id)
		if err != nil {
			return nil, err
		}
		v := memberView(m, stats)
		return &v, nil
	})
}

// Login matches emp_id and password by exact string equality. No match is
// ErrInvalidLogin; an unreachable database is an error, never a fallback,
// so demo data cannot open a way around the login gate.
func (s *Store) Login(ctx context.Context, empID, password string) (*model.LoginUser, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var m model.TeamMember
	err := s.db.WithContext(ctx).
		Where("emp_id = ? AND password = ?", empID, password).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidLogin
	}
	if err != nil {
		return nil, fmt.Errorf("login query: %w", err)
	}
	return &model.LoginUser{
		ID:          m.ID,
		Name:        m.Name,
		EmpID:       m.EmpID,
		Role:        m.Role,
		TeamID:      m.TeamID,
		ImageURL:    m.ImageURL,
		Description: m.Description,
	}, nil
}

// CreateMember inserts the member row, then one stat row per provided
// value; stats index i belongs to category id i+1.
func (s *Store) CreateMember(ctx context.Context, in model.MemberInput) (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("members.create: %w", ErrNoDatabase)
	}
	password := in.Password
	if password == "" {
		password = "0000"
	}
	m := model.TeamMember{
		Name:        in.Name,
		Role:        in.Role,
		TeamID:      in.Team,
		MBTI:        in.MBTI,
		ImageURL:    in.Image,
		Description: in.Description,
		Tags:        in.Tags,
		EmpID:       in.EmpID,
		Password:    password,
	}
	db := s.db.WithContext(ctx)
	if err := db.Create(&m).Error; err != nil {
		return 0, fmt.Errorf("members.create: %w", err)
	}
	for i, v := range in.Stats {
		if err := upsertStat(db, m.ID, i+1, v); err != nil {
			return 0, fmt.Errorf("members.create: %w", err)
		}
	}
	return m.ID, nil
}

// UpdateMember rewrites the member row and upserts the provided stat
// prefix; categories past len(stats) keep their current values. An empty
// password input keeps the stored password.
func (s *Store) UpdateMember(ctx context.Context, id int, in model.MemberInput) error {
	return s.exec(ctx, "members.update", func(db *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        in.Name,
			"role":        in.Role,
			"team_id":     in.Team,
			"mbti":        in.MBTI,
			"image_url":   in.Image,
			"description": in.Description,
			"tags":        in.Tags,
			"emp_id":      in.EmpID,
		}
		if in.Password != "" {
			updates["password"] = in.Password
		}
		if err := db.Model(&model.TeamMember{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		for i, v := range in.Stats {
			if err := upsertStat(db, id, i+1, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) DeleteMember(ctx context.Context, id int) error {
	return s.exec(ctx, "members.delete", func(db *gorm.DB) error {
		return db.Delete(&model.TeamMember{}, id).Error
	})
}

// UpdateOrder assigns display_order := position for each id, issued as
// independent per-row updates with no ordering between them. Partial
// application on failure is accepted; rows already written stay written.
func (s *Store) UpdateOrder(ctx context.Context, ids []int) error {
	if s.db == nil {
		return fmt.Errorf("members.order: %w", ErrNoDatabase)
	}
	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for pos, id := range ids {
		wg.Add(1)
		go func(pos, id int) {
			defer wg.Done()
			errs[pos] = s.db.WithContext(ctx).
				Model(&model.TeamMember{}).
				Where("id = ?", id).
				Update("display_order", pos).Error
		}(pos, id)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("members.order: %w", err)
	}
	return nil
}

func (s *Store) GetStatCategories(ctx context.Context) []model.StatCategory {
	return fetch(s, ctx, "stats.categories", fallbackStatCategories, func(db *gorm.DB) ([]model.StatCategory, error) {
		var cats []model.StatCategory
		if err := db.Order("sort_order").Find(&cats).Error; err != nil {
			return nil, fmt.Errorf("query stat categories: %w", err)
		}
		return cats, nil
	})
}

// --- helpers ---

type statValueRow struct {
	MemberID int
	Value    int
}

func listMembers(db *gorm.DB, teamID *string) ([]model.MemberView, error) {
	q := db.Order("COALESCE(display_order, id) ASC")
	if teamID != nil {
		q = q.Where("team_id = ?", *teamID)
	}
	var rows []model.TeamMember
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}

	var statRows []statValueRow
	err := db.Table("member_stats").
		Select("member_stats.member_id, member_stats.value").
		Joins("JOIN stat_categories ON stat_categories.id = member_stats.stat_category_id").
		Order("stat_categories.sort_order").
		Scan(&statRows).Error
	if err != nil {
		return nil, fmt.Errorf("query member stats: %w", err)
	}
	byMember := make(map[int][]int, len(rows))
	for _, r := range statRows {
		byMember[r.MemberID] = append(byMember[r.MemberID], r.Value)
	}

	views := make([]model.MemberView, 0, len(rows))
	for _, m := range rows {
		views = append(views, memberView(m, byMember[m.ID]))
	}
	return views, nil
}

func statVector(db *gorm.DB, memberID int) ([]int, error) {
	var values []int
	err := db.Table("member_stats").
		Select("member_stats.value").
		Joins("JOIN stat_categories ON stat_categories.id = member_stats.stat_category_id").
		Where("member_stats.member_id = ?", memberID).
		Order("stat_categories.sort_order").
		Scan(&values).Error
	if err != nil {
		return nil, fmt.Errorf("query member stats: %w", err)
	}
	return values, nil
}

func memberView(m model.TeamMember, stats []int) model.MemberView {
	if stats == nil {
		stats = []int{}
	}
	return model.MemberView{
		ID:          m.ID,
		EmpID:       m.EmpID,
		Name:        m.Name,
		Role:        m.Role,
		Team:        m.TeamID,
		MBTI:        m.MBTI,
		Image:       m.ImageURL,
		Description: m.Description,
		Tags:        m.Tags,
		Stats:       stats,
	}
}

func upsertStat(db *gorm.DB, memberID, categoryID, value int) error {
	st := model.MemberStat{MemberID: memberID, StatCategoryID: categoryID, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "member_id"}, {Name: "stat_category_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&st).Error
}
