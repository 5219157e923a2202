package queries

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
)

// The About, Contact and Intro sections live in a single row keyed by
// db.SingletonID. Reads seed the row with ON CONFLICT DO NOTHING so concurrent
// first reads converge on one row; saves upsert the whole row.

const (
	aboutColumns   = `id, full_name, title, specialties, content, photo_url, skills, updated_at`
	contactColumns = `id, email, phone, address, linkedin, github, twitter, facebook, instagram, created_at, updated_at`
	introColumns   = `id, title, subtitle, description, button_text, button_link, created_at, updated_at`
)

// GetOrCreateAbout returns the About row, materializing the defaults on first read.
func (q *Queries) GetOrCreateAbout(ctx context.Context) (*db.About, error) {
	seed := db.DefaultAbout()
	seed.UpdatedAt = now()
	if _, err := q.db.NamedExecContext(ctx, `
		INSERT INTO about (id, full_name, title, specialties, content, photo_url, skills, updated_at)
		VALUES (:id, :full_name, :title, :specialties, :content, :photo_url, :skills, :updated_at)
		ON CONFLICT (id) DO NOTHING`, seed); err != nil {
		log.Errorf("Error seeding about section: %v", err)
		return nil, fmt.Errorf("seed about: %w", err)
	}

	about := &db.About{}
	if _, err := q.getOne(ctx, about, `SELECT `+aboutColumns+` FROM about WHERE id = ?`, db.SingletonID); err != nil {
		log.Errorf("Error reading about section: %v", err)
		return nil, fmt.Errorf("read about: %w", err)
	}
	return about, nil
}

// SaveAbout writes the About row, creating it if needed.
func (q *Queries) SaveAbout(ctx context.Context, about *db.About) error {
	about.ID = db.SingletonID
	about.UpdatedAt = now()
	if _, err := q.db.NamedExecContext(ctx, `
		INSERT INTO about (id, full_name, title, specialties, content, photo_url, skills, updated_at)
		VALUES (:id, :full_name, :title, :specialties, :content, :photo_url, :skills, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			full_name = excluded.full_name, title = excluded.title, specialties = excluded.specialties,
			content = excluded.content, photo_url = excluded.photo_url, skills = excluded.skills,
			updated_at = excluded.updated_at`, about); err != nil {
		log.Errorf("Error saving about section: %v", err)
		return fmt.Errorf("save about: %w", err)
	}
	log.Info("About section updated.")
	return nil
}

// GetOrCreateContactInfo returns the contact card, materializing the defaults on first read.
func (q *Queries) GetOrCreateContactInfo(ctx context.Context) (*db.ContactInfo, error) {
	seed := db.DefaultContactInfo()
	seed.CreatedAt = now()
	seed.UpdatedAt = seed.CreatedAt
	if _, err := q.db.NamedExecContext(ctx, `
		INSERT INTO contact_info (`+contactColumns+`)
		VALUES (:id, :email, :phone, :address, :linkedin, :github, :twitter, :facebook, :instagram, :created_at, :updated_at)
		ON CONFLICT (id) DO NOTHING`, seed); err != nil {
		log.Errorf("Error seeding contact info: %v", err)
		return nil, fmt.Errorf("seed contact info: %w", err)
	}

	info := &db.ContactInfo{}
	if _, err := q.getOne(ctx, info, `SELECT `+contactColumns+` FROM contact_info WHERE id = ?`, db.SingletonID); err != nil {
		log.Errorf("Error reading contact info: %v", err)
		return nil, fmt.Errorf("read contact info: %w", err)
	}
	return info, nil
}

// SaveContactInfo writes the contact card. created_at is kept from the existing row.
func (q *Queries) SaveContactInfo(ctx context.Context, info *db.ContactInfo) error {
	info.ID = db.SingletonID
	info.UpdatedAt = now()
	if info.CreatedAt.IsZero() {
		info.CreatedAt = info.UpdatedAt
	}
	if _, err := q.db.NamedExecContext(ctx, `
		INSERT INTO contact_info (`+contactColumns+`)
		VALUES (:id, :email, :phone, :address, :linkedin, :github, :twitter, :facebook, :instagram, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email, phone = excluded.phone, address = excluded.address,
			linkedin = excluded.linkedin, github = excluded.github, twitter = excluded.twitter,
			facebook = excluded.facebook, instagram = excluded.instagram, updated_at = excluded.updated_at`, info); err != nil {
		log.Errorf("Error saving contact info: %v", err)
		return fmt.Errorf("save contact info: %w", err)
	}
	log.Info("Contact info updated.")
	return nil
}

// GetOrCreateIntro returns the hero block, materializing the defaults on first read.
func (q *Queries) GetOrCreateIntro(ctx context.Context) (*db.Intro, error) {
	seed := db.DefaultIntro()
	seed.CreatedAt = now()
	seed.UpdatedAt = seed.CreatedAt
	if _, err := q.db.NamedExecContext(ctx, `
		INSERT INTO intro (`+introColumns+`)
		VALUES (:id, :title, :subtitle, :description, :button_text, :button_link, :created_at, :updated_at)
		ON CONFLICT (id) DO NOTHING`, seed); err != nil {
		log.Errorf("Error seeding intro: %v", err)
		return nil, fmt.Errorf("seed intro: %w", err)
	}

	intro := &db.Intro{}
	if _, err := q.getOne(ctx, intro, `SELECT `+introColumns+` FROM intro WHERE id = ?`, db.SingletonID); err != nil {
		log.Errorf("Error reading intro: %v", err)
		return nil, fmt.Errorf("read intro: %w", err)
	}
	return intro, nil
}

func (q *Queries) SaveIntro(ctx context.Context, intro *db.Intro) error {
	intro.ID = db.SingletonID
	intro.UpdatedAt = now()
	if intro.CreatedAt.IsZero() {
		intro.CreatedAt = intro.UpdatedAt
	}
	if _, err := q.db.NamedExecContext(ctx, `
		INSERT INTO intro (`+introColumns+`)
		VALUES (:id, :title, :subtitle, :description, :button_text, :button_link, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title, subtitle = excluded.subtitle, description = excluded.description,
			button_text = excluded.button_text, button_link = excluded.button_link,
			updated_at = excluded.updated_at`, intro); err != nil {
		log.Errorf("Error saving intro: %v", err)
		return fmt.Errorf("save intro: %w", err)
	}
	log.Info("Intro updated.")
	return nil
}
