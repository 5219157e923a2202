package queries

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
)

const projectColumns = `id, title, description, technologies, github_link, live_link, youtube_link, image_urls, created_at, updated_at`

// ListProjects returns every project, newest first.
func (q *Queries) ListProjects(ctx context.Context) ([]db.Project, error) {
	projects := []db.Project{}
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC, id DESC`
	if err := q.db.SelectContext(ctx, &projects, query); err != nil {
		log.Errorf("Error listing projects: %v", err)
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// FindProjectByID retrieves a project by its ID.
func (q *Queries) FindProjectByID(ctx context.Context, id int64) (*db.Project, error) {
	project := &db.Project{}
	found, err := q.getOne(ctx, project, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	if err != nil {
		log.Errorf("Error finding project by ID '%d': %v", id, err)
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	if !found {
		log.Debugf("Project with ID '%d' not found.", id)
		return nil, nil
	}
	return project, nil
}

// CreateProject inserts a project and returns the stored row.
func (q *Queries) CreateProject(ctx context.Context, project *db.Project) (*db.Project, error) {
	project.CreatedAt = now()
	project.UpdatedAt = project.CreatedAt

	id, err := q.insertReturningID(ctx, `
		INSERT INTO projects (title, description, technologies, github_link, live_link, youtube_link, image_urls, created_at, updated_at)
		VALUES (:title, :description, :technologies, :github_link, :live_link, :youtube_link, :image_urls, :created_at, :updated_at)`, project)
	if err != nil {
		log.Errorf("Error creating project: %v", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	created, err := q.FindProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("project %d vanished after insert", id)
	}

	log.Infof("Project '%s' created (ID: %d)", created.Title, created.ID)
	return created, nil
}

// UpdateProject writes every column of project back to its row.
func (q *Queries) UpdateProject(ctx context.Context, project *db.Project) error {
	project.UpdatedAt = now()

	result, err := q.db.NamedExecContext(ctx, `
		UPDATE projects
		SET title = :title, description = :description, technologies = :technologies,
			github_link = :github_link, live_link = :live_link, youtube_link = :youtube_link,
			image_urls = :image_urls, updated_at = :updated_at
		WHERE id = :id`, project)
	if err != nil {
		log.Errorf("Error updating project with ID '%d': %v", project.ID, err)
		return fmt.Errorf("failed to update project: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No project found with ID '%d' for update.", project.ID)
		return err
	}

	log.Infof("Project with ID '%d' updated.", project.ID)
	return nil
}

// DeleteProject removes a project row. Image files are the caller's concern.
func (q *Queries) DeleteProject(ctx context.Context, id int64) error {
	result, err := q.db.ExecContext(ctx, q.db.Rebind(`DELETE FROM projects WHERE id = ?`), id)
	if err != nil {
		log.Errorf("Error deleting project with ID '%d': %v", id, err)
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No project found with ID '%d' for deletion.", id)
		return err
	}

	log.Infof("Project with ID '%d' deleted.", id)
	return nil
}
