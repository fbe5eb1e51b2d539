package store

import (
	"context"
	"testing"

	"team-awesome/internal/model"

	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCreateMemberDefaultPassword(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateMember(ctx, model.MemberInput{Name: "이영희", EmpID: strp("2001")})
	require.NoError(t, err)

	var row model.TeamMember
	require.NoError(t, db.First(&row, id).Error)
	require.Equal(t, "0000", row.Password)

	id2, err := s.CreateMember(ctx, model.MemberInput{Name: "박철수", EmpID: strp("2002"), Password: "secret"})
	require.NoError(t, err)
	var row2 model.TeamMember
	require.NoError(t, db.First(&row2, id2).Error)
	require.Equal(t, "secret", row2.Password)
}

func TestStatVectorFollowsCategorySortOrder(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateMember(ctx, model.MemberInput{
		Name:  "이영희",
		Stats: []int{10, 20, 30, 40, 50, 60},
	})
	require.NoError(t, err)

	m := s.GetMemberByID(ctx, id)
	require.NotNil(t, m)
	require.Equal(t, []int{10, 20, 30, 40, 50, 60}, m.Stats)

	// flip two sort orders; the vector must follow, not the category ids
	require.NoError(t, db.Model(&model.StatCategory{}).Where("id = ?", 1).Update("sort_order", 6).Error)
	require.NoError(t, db.Model(&model.StatCategory{}).Where("id = ?", 6).Update("sort_order", 1).Error)

	m = s.GetMemberByID(ctx, id)
	require.Equal(t, []int{60, 20, 30, 40, 50, 10}, m.Stats)
}

func TestMemberWithoutStatsGetsEmptyVector(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateMember(ctx, model.MemberInput{Name: "이영희"})
	require.NoError(t, err)

	m := s.GetMemberByID(ctx, id)
	require.NotNil(t, m)
	require.NotNil(t, m.Stats)
	require.Empty(t, m.Stats)
}

func TestUpdateMemberPartialStats(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateMember(ctx, model.MemberInput{
		Name:  "이영희",
		Stats: []int{10, 20, 30, 40, 50, 60},
	})
	require.NoError(t, err)

	// a one-element stats array only touches the first category
	err = s.UpdateMember(ctx, id, model.MemberInput{Name: "이영희", Stats: []int{80}})
	require.NoError(t, err)

	m := s.GetMemberByID(ctx, id)
	require.Equal(t, []int{80, 20, 30, 40, 50, 60}, m.Stats)
}

func TestUpdateMemberKeepsPasswordWhenEmpty(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateMember(ctx, model.MemberInput{Name: "이영희", Password: "keepme"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateMember(ctx, id, model.MemberInput{Name: "이영희2"}))

	var row model.TeamMember
	require.NoError(t, db.First(&row, id).Error)
	require.Equal(t, "keepme", row.Password)
	require.Equal(t, "이영희2", row.Name)

	require.NoError(t, s.UpdateMember(ctx, id, model.MemberInput{Name: "이영희2", Password: "new"}))
	require.NoError(t, db.First(&row, id).Error)
	require.Equal(t, "new", row.Password)
}

func TestLoginExactMatch(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateMember(ctx, model.MemberInput{Name: "이영희", EmpID: strp("1001"), Password: "abcd"})
	require.NoError(t, err)

	u, err := s.Login(ctx, "1001", "abcd")
	require.NoError(t, err)
	require.Equal(t, "이영희", u.Name)
	require.Equal(t, "1001", *u.EmpID)

	for _, tc := range []struct{ empID, password string }{
		{"1001", "ABCD"},
		{"1001", "abcd "},
		{"1001 ", "abcd"},
		{"1001", ""},
		{"9999", "abcd"},
	} {
		u, err := s.Login(ctx, tc.empID, tc.password)
		require.Nil(t, u, "emp_id=%q password=%q", tc.empID, tc.password)
		require.ErrorIs(t, err, ErrInvalidLogin)
	}
}

func TestUpdateOrderRewritesDisplayOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var ids []int
	for _, name := range []string{"a", "b", "c"} {
		id, err := s.CreateMember(ctx, model.MemberInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	require.NoError(t, s.UpdateOrder(ctx, []int{ids[2], ids[0], ids[1]}))

	members := s.GetAllMembers(ctx)
	require.Len(t, members, 3)
	require.Equal(t, []string{"c", "a", "b"}, []string{members[0].Name, members[1].Name, members[2].Name})
}

// Members never reordered sort by id, interleaved with explicit positions
// through COALESCE(display_order, id).
func TestListOrderFallsBackToID(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	var ids []int
	for _, name := range []string{"a", "b", "c"} {
		id, err := s.CreateMember(ctx, model.MemberInput{Name: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	// only c gets an explicit position, ahead of everyone
	require.NoError(t, db.Model(&model.TeamMember{}).Where("id = ?", ids[2]).
		Update("display_order", 0).Error)

	members := s.GetAllMembers(ctx)
	require.Equal(t, []string{"c", "a", "b"}, []string{members[0].Name, members[1].Name, members[2].Name})
}

func TestDeleteMemberRemovesStats(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateMember(ctx, model.MemberInput{Name: "이영희", Stats: []int{1, 2, 3}})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMember(ctx, id))

	require.Nil(t, s.GetMemberByID(ctx, id))
	var n int64
	require.NoError(t, db.Model(&model.MemberStat{}).Where("member_id = ?", id).Count(&n).Error)
	require.Zero(t, n)
}
