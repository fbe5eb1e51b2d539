package store

import "team-awesome/internal/model"

// Fallback datasets served by read paths when no database is reachable.
// Kept tiny on purpose: just enough for the UI to render a believable page.

func fallbackMembers() []model.MemberView {
	return []model.MemberView{
		{
			ID:          1,
			Name:        "김진성",
			Role:        "팀장",
			MBTI:        "ENFP",
			Image:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Kim&backgroundColor=b6e3f4",
			Description: "누구 밥 사줄까?.",
			Tags:        "#큰형님,#소확행",
			Stats:       []int{90, 80, 80, 95, 75, 95},
		},
		{
			ID:          2,
			Name:        "김윤성",
			Role:        "PM",
			MBTI:        "ISTJ",
			Image:       "https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka3&backgroundColor=b6e3f4",
			Description: "New ITSM 구축.",
			Tags:        "#PM",
			Stats:       []int{70, 88, 70, 92, 75, 85},
		},
	}
}

func fallbackPosts() []model.PostView {
	return []model.PostView{
		{
			ID:       1,
			Title:    "팀 프로젝트 킥오프 미팅",
			Content:  "새로운 프로젝트를 시작합니다! 모든 팀원들의 적극적인 참여 부탁드립니다.",
			Author:   "김진성",
			Date:     "2024-12-26",
			Category: "notice",
		},
	}
}

func fallbackBoardCategories() []model.BoardCategory {
	return []model.BoardCategory{
		{ID: 1, Name: "notice", DisplayName: "공지사항", Color: "#ef4444"},
		{ID: 2, Name: "development", DisplayName: "개발", Color: "#8b5cf6"},
		{ID: 3, Name: "event", DisplayName: "이벤트", Color: "#f59e0b"},
		{ID: 4, Name: "free", DisplayName: "자유", Color: "#10b981"},
	}
}

func fallbackStatCategories() []model.StatCategory {
	return []model.StatCategory{
		{ID: 1, Name: "leadership", DisplayName: "리더십", SortOrder: 1},
		{ID: 2, Name: "communication", DisplayName: "소통력", SortOrder: 2},
		{ID: 3, Name: "technical", DisplayName: "기술력", SortOrder: 3},
		{ID: 4, Name: "creativity", DisplayName: "창의력", SortOrder: 4},
		{ID: 5, Name: "reliability", DisplayName: "신뢰도", SortOrder: 5},
		{ID: 6, Name: "passion", DisplayName: "열정", SortOrder: 6},
	}
}

func fallbackTeams() []model.Team {
	return []model.Team{
		{ID: "dx-headquarters", Name: "DX본부", Description: "DX본부 전체 조직", Color: "#8b5cf6"},
		{ID: "dx-promotion", Name: "DX추진팀", Description: "DX 전략 기획 및 추진", Color: "#06b6d4"},
		{ID: "financial-dx", Name: "금융DX팀", Description: "금융 서비스 디지털 혁신", Color: "#10b981"},
		{ID: "mobile-dx", Name: "모바일DX팀", Description: "모바일 플랫폼 개발 및 운영", Color: "#f59e0b"},
		{ID: "global-dx", Name: "글로벌DX팀", Description: "글로벌 디지털 서비스 확장", Color: "#ef4444"},
	}
}

func fallbackKPIs() []model.KPI {
	return []model.KPI{}
}
