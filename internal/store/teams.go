package store

import (
	"context"
	"fmt"

	"team-awesome/internal/model"

	"gorm.io/gorm"
)

func (s *Store) GetAllTeams(ctx context.Context) []model.Team {
	return fetch(s, ctx, "teams.list", fallbackTeams, func(db *gorm.DB) ([]model.Team, error) {
		var teams []model.Team
		if err := db.Order("id").Find(&teams).Error; err != nil {
			return nil, fmt.Errorf("query teams: %w", err)
		}
		return teams, nil
	})
}

// GetTeamMembers returns the members of one team with the same stat
// aggregation and ordering as GetAllMembers.
func (s *Store) GetTeamMembers(ctx context.Context, teamID string) []model.MemberView {
	fallback := func() []model.MemberView {
		out := []model.MemberView{}
		for _, m := range fallbackMembers() {
			if m.Team != nil && *m.Team == teamID {
				out = append(out, m)
			}
		}
		return out
	}
	return fetch(s, ctx, "teams.members", fallback, func(db *gorm.DB) ([]model.MemberView, error) {
		return listMembers(db, &teamID)
	})
}
