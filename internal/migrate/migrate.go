// Package migrate brings the database from any prior schema state to the
// one the application expects. Every step is idempotent and runs inside
// its own transaction: re-running the whole list against an already
// migrated database is a no-op, and a failing step leaves nothing behind.
package migrate

import (
	"fmt"

	"team-awesome/internal/logger"

	"gorm.io/gorm"
)

type Step struct {
	Name string
	Run  func(tx *gorm.DB) error
}

// Run applies every step in order. The first failure rolls its step back
// and aborts the run.
func Run(db *gorm.DB) error {
	for _, s := range Steps() {
		logger.Info("migrate: step start", "name", s.Name)
		if err := db.Transaction(func(tx *gorm.DB) error { return s.Run(tx) }); err != nil {
			return fmt.Errorf("migrate step %s: %w", s.Name, err)
		}
		logger.Info("migrate: step done", "name", s.Name)
	}
	return nil
}

func Steps() []Step {
	return []Step{
		{Name: "base-schema", Run: baseSchema},
		{Name: "teams", Run: teams},
		{Name: "auth-columns", Run: authColumns},
		{Name: "display-order", Run: displayOrder},
		{Name: "kpis", Run: kpis},
		{Name: "kpi-target-levels", Run: kpiTargetLevels},
		{Name: "kpi-current-achievement", Run: kpiCurrentAchievement},
	}
}

func execAll(tx *gorm.DB, stmts ...string) error {
	for _, stmt := range stmts {
		if err := tx.Exec(stmt).Error; err != nil {
			logger.Error("migrate: statement failed", "sql", stmt, "err", err)
			return err
		}
	}
	return nil
}

func baseSchema(tx *gorm.DB) error {
	return execAll(tx,
		`CREATE TABLE IF NOT EXISTS team_members (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			role VARCHAR(100),
			mbti VARCHAR(4),
			image_url VARCHAR(255),
			description TEXT,
			tags TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS stat_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			display_name VARCHAR(50),
			description TEXT,
			sort_order INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS member_stats (
			id SERIAL PRIMARY KEY,
			member_id INTEGER NOT NULL REFERENCES team_members(id) ON DELETE CASCADE,
			stat_category_id INTEGER NOT NULL REFERENCES stat_categories(id),
			value INTEGER NOT NULL CHECK (value >= 0 AND value <= 100),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT uk_member_stat UNIQUE (member_id, stat_category_id)
		)`,
		`CREATE TABLE IF NOT EXISTS board_categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL UNIQUE,
			display_name VARCHAR(50),
			description TEXT,
			color VARCHAR(7)
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			content TEXT,
			author_id INTEGER,
			author_name VARCHAR(100),
			category_id INTEGER REFERENCES board_categories(id),
			view_count INTEGER DEFAULT 0,
			is_pinned BOOLEAN DEFAULT FALSE,
			is_deleted BOOLEAN DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS comments (
			id SERIAL PRIMARY KEY,
			post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			author_name VARCHAR(100),
			content TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO stat_categories (name, display_name, sort_order) VALUES
			('leadership', '리더십', 1),
			('communication', '소통력', 2),
			('technical', '기술력', 3),
			('creativity', '창의력', 4),
			('reliability', '신뢰도', 5),
			('passion', '열정', 6)
		ON CONFLICT (name) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			sort_order = EXCLUDED.sort_order`,
		`INSERT INTO board_categories (name, display_name, color) VALUES
			('notice', '공지사항', '#ef4444'),
			('development', '개발', '#8b5cf6'),
			('event', '이벤트', '#f59e0b'),
			('free', '자유', '#10b981')
		ON CONFLICT (name) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			color = EXCLUDED.color`,
	)
}

func teams(tx *gorm.DB) error {
	return execAll(tx,
		`CREATE OR REPLACE FUNCTION update_updated_at_column()
		RETURNS TRIGGER AS $$
		BEGIN
			NEW.updated_at = CURRENT_TIMESTAMP;
			RETURN NEW;
		END;
		$$ language 'plpgsql'`,
		`CREATE TABLE IF NOT EXISTS teams (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			color VARCHAR(7) DEFAULT '#8b5cf6',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
		`ALTER TABLE team_members
			ADD COLUMN IF NOT EXISTS team_id VARCHAR(50) REFERENCES teams(id) ON DELETE SET NULL`,
		`INSERT INTO teams (id, name, description, color) VALUES
			('dx-headquarters', 'DX본부', 'DX본부 전체 조직', '#8b5cf6'),
			('dx-promotion', 'DX추진팀', 'DX 전략 기획 및 추진', '#06b6d4'),
			('financial-dx', '금융DX팀', '금융 서비스 디지털 혁신', '#10b981'),
			('mobile-dx', '모바일DX팀', '모바일 플랫폼 개발 및 운영', '#f59e0b'),
			('global-dx', '글로벌DX팀', '글로벌 디지털 서비스 확장', '#ef4444')
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			color = EXCLUDED.color,
			updated_at = CURRENT_TIMESTAMP`,
		`DROP TRIGGER IF EXISTS update_teams_updated_at ON teams`,
		`CREATE TRIGGER update_teams_updated_at
			BEFORE UPDATE ON teams
			FOR EACH ROW
			EXECUTE FUNCTION update_updated_at_column()`,
		`CREATE INDEX IF NOT EXISTS idx_team_members_team_id ON team_members(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_name ON teams(name)`,
	)
}

// authColumns adds the login credentials. The backfill has to run before
// the unique constraint: legacy rows get emp_id = id and the documented
// default password, then the constraint is added only if the catalog does
// not already have it.
func authColumns(tx *gorm.DB) error {
	return execAll(tx,
		`ALTER TABLE team_members ADD COLUMN IF NOT EXISTS emp_id VARCHAR(50)`,
		`ALTER TABLE team_members ADD COLUMN IF NOT EXISTS password VARCHAR(255)`,
		`UPDATE team_members
			SET emp_id = id::text, password = '1234'
			WHERE emp_id IS NULL OR password IS NULL`,
		`DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'team_members_emp_id_key'
			) THEN
				ALTER TABLE team_members ADD CONSTRAINT team_members_emp_id_key UNIQUE (emp_id);
			END IF;
		END
		$$`,
	)
}

func displayOrder(tx *gorm.DB) error {
	var n int64
	err := tx.Raw(`SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = 'team_members' AND column_name = 'display_order'`).Scan(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		logger.Info("migrate: display_order already present, skipping")
		return nil
	}
	return execAll(tx,
		`ALTER TABLE team_members ADD COLUMN display_order INTEGER`,
		`UPDATE team_members SET display_order = id WHERE display_order IS NULL`,
	)
}

func kpis(tx *gorm.DB) error {
	return execAll(tx,
		`CREATE TABLE IF NOT EXISTS kpis (
			id SERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			initiative TEXT NOT NULL,
			weight TEXT,
			indicator_item TEXT,
			indicator_weight TEXT,
			unit TEXT,
			target_2025 TEXT,
			remarks TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		)`,
	)
}

func kpiTargetLevels(tx *gorm.DB) error {
	return execAll(tx,
		`ALTER TABLE kpis
			ADD COLUMN IF NOT EXISTS target_s TEXT,
			ADD COLUMN IF NOT EXISTS target_a TEXT,
			ADD COLUMN IF NOT EXISTS target_b_plus TEXT,
			ADD COLUMN IF NOT EXISTS target_b TEXT,
			ADD COLUMN IF NOT EXISTS target_b_minus TEXT,
			ADD COLUMN IF NOT EXISTS target_c TEXT,
			ADD COLUMN IF NOT EXISTS target_d TEXT`,
	)
}

func kpiCurrentAchievement(tx *gorm.DB) error {
	return execAll(tx,
		`ALTER TABLE kpis ADD COLUMN IF NOT EXISTS current_achievement TEXT`,
	)
}
