package queries

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
)

const skillColumns = `id, name, category, level, sort_order, created_at, updated_at`

// ListSkills returns every skill grouped by category, then by order and name.
func (q *Queries) ListSkills(ctx context.Context) ([]db.Skill, error) {
	skills := []db.Skill{}
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY category ASC, sort_order ASC, name ASC`
	if err := q.db.SelectContext(ctx, &skills, query); err != nil {
		log.Errorf("Error listing skills: %v", err)
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// SkillCategories returns the distinct category names in ascending order.
func (q *Queries) SkillCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if err := q.db.SelectContext(ctx, &categories, `SELECT DISTINCT category FROM skills ORDER BY category ASC`); err != nil {
		log.Errorf("Error listing skill categories: %v", err)
		return nil, fmt.Errorf("list skill categories: %w", err)
	}
	return categories, nil
}

func (q *Queries) FindSkillByID(ctx context.Context, id int64) (*db.Skill, error) {
	skill := &db.Skill{}
	found, err := q.getOne(ctx, skill, `SELECT `+skillColumns+` FROM skills WHERE id = ?`, id)
	if err != nil {
		log.Errorf("Error finding skill by ID '%d': %v", id, err)
		return nil, fmt.Errorf("find skill by id: %w", err)
	}
	if !found {
		return nil, nil
	}
	return skill, nil
}

func (q *Queries) CreateSkill(ctx context.Context, skill *db.Skill) (*db.Skill, error) {
	skill.CreatedAt = now()
	skill.UpdatedAt = skill.CreatedAt

	id, err := q.insertReturningID(ctx, `
		INSERT INTO skills (name, category, level, sort_order, created_at, updated_at)
		VALUES (:name, :category, :level, :sort_order, :created_at, :updated_at)`, skill)
	if err != nil {
		log.Errorf("Error creating skill: %v", err)
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}

	created, err := q.FindSkillByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("skill %d vanished after insert", id)
	}

	log.Infof("Skill '%s' (%s) created (ID: %d)", created.Name, created.Category, created.ID)
	return created, nil
}

func (q *Queries) UpdateSkill(ctx context.Context, skill *db.Skill) error {
	skill.UpdatedAt = now()

	result, err := q.db.NamedExecContext(ctx, `
		UPDATE skills
		SET name = :name, category = :category, level = :level, sort_order = :sort_order, updated_at = :updated_at
		WHERE id = :id`, skill)
	if err != nil {
		log.Errorf("Error updating skill with ID '%d': %v", skill.ID, err)
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No skill found with ID '%d' for update.", skill.ID)
		return err
	}

	log.Infof("Skill with ID '%d' updated.", skill.ID)
	return nil
}

func (q *Queries) DeleteSkill(ctx context.Context, id int64) error {
	result, err := q.db.ExecContext(ctx, q.db.Rebind(`DELETE FROM skills WHERE id = ?`), id)
	if err != nil {
		log.Errorf("Error deleting skill with ID '%d': %v", id, err)
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No skill found with ID '%d' for deletion.", id)
		return err
	}

	log.Infof("Skill with ID '%d' deleted.", id)
	return nil
}
