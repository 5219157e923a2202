package queries

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
)

const experienceColumns = `id, title, company, location, start_date, end_date, is_current, description, created_at, updated_at`

// ListExperiences returns every experience, most recent start date first.
func (q *Queries) ListExperiences(ctx context.Context) ([]db.Experience, error) {
	experiences := []db.Experience{}
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY start_date DESC, id DESC`
	if err := q.db.SelectContext(ctx, &experiences, query); err != nil {
		log.Errorf("Error listing experiences: %v", err)
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return experiences, nil
}

func (q *Queries) FindExperienceByID(ctx context.Context, id int64) (*db.Experience, error) {
	experience := &db.Experience{}
	found, err := q.getOne(ctx, experience, `SELECT `+experienceColumns+` FROM experiences WHERE id = ?`, id)
	if err != nil {
		log.Errorf("Error finding experience by ID '%d': %v", id, err)
		return nil, fmt.Errorf("find experience by id: %w", err)
	}
	if !found {
		return nil, nil
	}
	return experience, nil
}

// CreateExperience inserts an experience. A current position never keeps an end date.
func (q *Queries) CreateExperience(ctx context.Context, experience *db.Experience) (*db.Experience, error) {
	if experience.Current {
		experience.EndDate = nil
	}
	experience.CreatedAt = now()
	experience.UpdatedAt = experience.CreatedAt

	id, err := q.insertReturningID(ctx, `
		INSERT INTO experiences (title, company, location, start_date, end_date, is_current, description, created_at, updated_at)
		VALUES (:title, :company, :location, :start_date, :end_date, :is_current, :description, :created_at, :updated_at)`, experience)
	if err != nil {
		log.Errorf("Error creating experience: %v", err)
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}

	created, err := q.FindExperienceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("experience %d vanished after insert", id)
	}

	log.Infof("Experience '%s' at '%s' created (ID: %d)", created.Title, created.Company, created.ID)
	return created, nil
}

func (q *Queries) UpdateExperience(ctx context.Context, experience *db.Experience) error {
	if experience.Current {
		experience.EndDate = nil
	}
	experience.UpdatedAt = now()

	result, err := q.db.NamedExecContext(ctx, `
		UPDATE experiences
		SET title = :title, company = :company, location = :location, start_date = :start_date,
			end_date = :end_date, is_current = :is_current, description = :description, updated_at = :updated_at
		WHERE id = :id`, experience)
	if err != nil {
		log.Errorf("Error updating experience with ID '%d': %v", experience.ID, err)
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No experience found with ID '%d' for update.", experience.ID)
		return err
	}

	log.Infof("Experience with ID '%d' updated.", experience.ID)
	return nil
}

func (q *Queries) DeleteExperience(ctx context.Context, id int64) error {
	result, err := q.db.ExecContext(ctx, q.db.Rebind(`DELETE FROM experiences WHERE id = ?`), id)
	if err != nil {
		log.Errorf("Error deleting experience with ID '%d': %v", id, err)
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No experience found with ID '%d' for deletion.", id)
		return err
	}

	log.Infof("Experience with ID '%d' deleted.", id)
	return nil
}
