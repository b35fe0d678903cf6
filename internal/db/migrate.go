package db

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// migration is one entry in the append-only ledger. IDs must be unique and
// new entries go at the end of the list; applied IDs are recorded in
// schema_migrations and never re-run.
type migration struct {
	ID  string
	SQL string
}

var migrations = []migration{
	{
		ID: "001_users",
		SQL: `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL,
			avatar_url TEXT,
			bio TEXT,
			specialization TEXT,
			role TEXT NOT NULL DEFAULT 'client',
			referral_code TEXT NOT NULL UNIQUE,
			is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			email_verification_token TEXT,
			email_verification_sent_at TIMESTAMPTZ,
			password_reset_token TEXT,
			password_reset_expires_at TIMESTAMPTZ,
			banned_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);`,
	},
	{
		ID: "002_sessions",
		SQL: `
		CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token_hash TEXT NOT NULL UNIQUE,
			user_agent TEXT,
			ip_address TEXT,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			revoked_at TIMESTAMPTZ
		);`,
	},
	{
		ID: "003_cities",
		SQL: `
		CREATE TABLE IF NOT EXISTS cities (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);`,
	},
	{
		ID: "004_articles",
		SQL: `
		CREATE TABLE IF NOT EXISTS articles (
			id UUID PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			cover_image TEXT,
			views BIGINT NOT NULL DEFAULT 0,
			likes_count BIGINT NOT NULL DEFAULT 0,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			archived BOOLEAN NOT NULL DEFAULT FALSE,
			moderation_status TEXT NOT NULL DEFAULT 'draft',
			moderation_reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_articles_author ON articles(author_id);
		CREATE INDEX IF NOT EXISTS idx_articles_moderation ON articles(moderation_status);`,
	},
	{
		ID: "005_events",
		SQL: `
		CREATE TABLE IF NOT EXISTS events (
			id UUID PRIMARY KEY,
			organizer_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			cover_image TEXT,
			event_type TEXT NOT NULL,
			is_online BOOLEAN NOT NULL DEFAULT FALSE,
			city_id BIGINT REFERENCES cities(id),
			event_date TIMESTAMPTZ NOT NULL,
			location TEXT,
			price NUMERIC(10,2),
			registration_link TEXT,
			archived BOOLEAN NOT NULL DEFAULT FALSE,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			moderation_status TEXT NOT NULL DEFAULT 'draft',
			moderation_reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_events_organizer ON events(organizer_id);
		CREATE INDEX IF NOT EXISTS idx_events_date ON events(event_date);`,
	},
	{
		ID: "006_favorites",
		SQL: `
		CREATE TABLE IF NOT EXISTS expert_favorites (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expert_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, expert_id)
		);
		CREATE TABLE IF NOT EXISTS event_favorites (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, event_id)
		);
		CREATE TABLE IF NOT EXISTS article_favorites (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			article_id UUID NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, article_id)
		);
		CREATE TABLE IF NOT EXISTS article_likes (
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			article_id UUID NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, article_id)
		);`,
	},
	{
		ID: "007_bookings",
		SQL: `
		CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			client_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expert_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			time_slot TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			client_message TEXT,
			rejection_reason TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_bookings_client ON bookings(client_id);
		CREATE INDEX IF NOT EXISTS idx_bookings_expert ON bookings(expert_id);`,
	},
	{
		ID: "008_notifications",
		SQL: `
		CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			recipient_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			data JSONB,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			read_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id, is_read);`,
	},
	{
		ID: "009_admin_logs",
		SQL: `
		CREATE TABLE IF NOT EXISTS admin_logs (
			id UUID PRIMARY KEY,
			admin_id UUID NOT NULL REFERENCES users(id),
			action_type TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id UUID NOT NULL,
			entity_title TEXT,
			details JSONB,
			ip_address TEXT,
			user_agent TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_admin_logs_entity ON admin_logs(entity_type, entity_id);`,
	},
	{
		ID: "010_products",
		SQL: `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			expert_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			image_url TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_products_expert ON products(expert_id);`,
	},
	{
		ID: "011_payments",
		SQL: `
		CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			client_id UUID NOT NULL REFERENCES users(id),
			provider_payment_id TEXT NOT NULL UNIQUE,
			amount NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	},
}

// Migrate applies every ledger entry that is not yet recorded in
// schema_migrations. Each entry runs in its own transaction together with
// the ledger insert, so a failed migration leaves no partial record.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := map[string]bool{}
	var ids []string
	if err := db.Select(&ids, `SELECT id FROM schema_migrations`); err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	for _, id := range ids {
		applied[id] = true
	}

	for _, m := range migrations {
		if applied[m.ID] {
			continue
		}

		tx, err := db.Beginx()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %s: %w", m.ID, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (id) VALUES ($1)`, m.ID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", m.ID, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}

		log.Printf("Applied migration %s", m.ID)
	}

	return nil
}
