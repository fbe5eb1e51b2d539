package model

import "time"

type Team struct {
	ID          string    `gorm:"primaryKey;size:50" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `json:"description"`
	Color       string    `gorm:"size:7;default:#8b5cf6" json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamMember struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	EmpID        *string `gorm:"column:emp_id;size:50;uniqueIndex" json:"emp_id"`
	Password     string  `gorm:"size:255" json:"-"`
	Name         string  `gorm:"size:100;not null" json:"name"`
	Role         string  `gorm:"size:100" json:"role"`
	TeamID       *string `gorm:"column:team_id;size:50" json:"team"`
	MBTI         string  `gorm:"column:mbti;size:4" json:"mbti"`
	ImageURL     string  `gorm:"column:image_url;size:255" json:"image"`
	Description  string  `json:"description"`
	Tags         string  `json:"tags"`
	DisplayOrder *int    `json:"display_order"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Team *Team `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL" json:"-"`
}

type StatCategory struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"size:50" json:"display_name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
}

// MemberStat holds exactly one value per member per category.
type MemberStat struct {
	ID             int `gorm:"primaryKey" json:"id"`
	MemberID       int `gorm:"uniqueIndex:uk_member_stat;not null" json:"member_id"`
	StatCategoryID int `gorm:"uniqueIndex:uk_member_stat;not null" json:"stat_category_id"`
	Value          int `json:"value"`
	UpdatedAt      time.Time

	Member   *TeamMember   `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"-"`
	Category *StatCategory `gorm:"foreignKey:StatCategoryID" json:"-"`
}

type BoardCategory struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"size:50" json:"display_name"`
	Description string `json:"description"`
	Color       string `gorm:"size:7" json:"color"`
}

type Post struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Content    string `json:"content"`
	AuthorID   *int   `json:"author_id"`
	AuthorName string `gorm:"size:100" json:"author_name"`
	CategoryID int    `json:"category_id"`
	ViewCount  int    `gorm:"default:0" json:"view_count"`
	IsPinned   bool   `gorm:"default:false" json:"is_pinned"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *BoardCategory `gorm:"foreignKey:CategoryID" json:"-"`
}

type Comment struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	PostID     int       `gorm:"not null" json:"post_id"`
	AuthorName string    `gorm:"size:100" json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`

	Post *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// KPI is one line item of the yearly KPI sheet. The sheet is kept
// denormalized on purpose, every tier target is free text.
type KPI struct {
	ID                 int       `gorm:"primaryKey" json:"id"`
	Category           string    `gorm:"not null" json:"category"`
	Initiative         string    `gorm:"not null" json:"initiative"`
	Weight             string    `json:"weight"`
	IndicatorItem      string    `json:"indicator_item"`
	IndicatorWeight    string    `json:"indicator_weight"`
	Unit               string    `json:"unit"`
	Target2025         string    `gorm:"column:target_2025" json:"target_2025"`
	Remarks            string    `json:"remarks"`
	TargetS            string    `json:"target_s"`
	TargetA            string    `json:"target_a"`
	TargetBPlus        string    `gorm:"column:target_b_plus" json:"target_b_plus"`
	TargetB            string    `json:"target_b"`
	TargetBMinus       string    `gorm:"column:target_b_minus" json:"target_b_minus"`
	TargetC            string    `json:"target_c"`
	TargetD            string    `json:"target_d"`
	CurrentAchievement string    `json:"current_achievement"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Team) TableName() string          { return "teams" }
func (TeamMember) TableName() string    { return "team_members" }
func (StatCategory) TableName() string  { return "stat_categories" }
func (MemberStat) TableName() string    { return "member_stats" }
func (BoardCategory) TableName() string { return "board_categories" }
func (Post) TableName() string          { return "posts" }
func (Comment) TableName() string       { return "comments" }
func (KPI) TableName() string           { return "kpis" }
