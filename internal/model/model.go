package model

// MemberView is the flat shape the UI consumes: one card per member with
// the stat vector already aggregated in category sort order.
type MemberView struct {
	ID          int     `json:"id"`
	EmpID       *string `json:"emp_id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Team        *string `json:"team"`
	MBTI        string  `json:"mbti"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Tags        string  `json:"tags"`
	Stats       []int   `json:"stats"`
}

// MemberInput carries create/update payloads. Stats index i maps to stat
// category id i+1; a short array leaves the remaining categories alone.
type MemberInput struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role"`
	Team        *string `json:"team"`
	MBTI        string  `json:"mbti"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Tags        string  `json:"tags"`
	EmpID       *string `json:"emp_id"`
	Password    string  `json:"password"`
	Stats       []int   `json:"stats" binding:"omitempty,dive,gte=0,lte=100"`
}

type LoginRequest struct {
	EmpID    string `json:"emp_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginUser is the public-safe projection returned on successful login.
// It never includes the password column.
type LoginUser struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	EmpID       *string `json:"emp_id"`
	Role        string  `json:"role"`
	TeamID      *string `json:"team_id"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type PostView struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  *int   `json:"author_id"`
	Author    string `json:"author"`
	ViewCount int    `json:"view_count"`
	IsPinned  bool   `json:"is_pinned"`
	Date      string `json:"date"`
	Category  string `json:"category"`
}

type PostInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	AuthorID *int   `json:"author_id"`
	Author   string `json:"author"`
	Category string `json:"category" binding:"required"`
}

type CommentInput struct {
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// OrderRequest carries the full member ordering after a drag, first id is
// display position 0.
type OrderRequest struct {
	Order []int `json:"order" binding:"required,min=1"`
}

// MoveRequest is a single drag-end event: member id plus the index it was
// dropped on.
type MoveRequest struct {
	ID     int `json:"id" binding:"required"`
	Target int `json:"target" binding:"min=0"`
}

type KPIInput struct {
	Category           string `json:"category" binding:"required"`
	Initiative         string `json:"initiative" binding:"required"`
	Weight             string `json:"weight"`
	IndicatorItem      string `json:"indicator_item"`
	IndicatorWeight    string `json:"indicator_weight"`
	Unit               string `json:"unit"`
	Target2025         string `json:"target_2025"`
	Remarks            string `json:"remarks"`
	TargetS            string `json:"target_s"`
	TargetA            string `json:"target_a"`
	TargetBPlus        string `json:"target_b_plus"`
	TargetB            string `json:"target_b"`
	TargetBMinus       string `json:"target_b_minus"`
	TargetC            string `json:"target_c"`
	TargetD            string `json:"target_d"`
	CurrentAchievement string `json:"current_achievement"`
}
