package queries

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
)

const adminColumns = `id, username, password_hash, created_at, updated_at`

// CountAdmins returns how many administrator accounts exist.
func (q *Queries) CountAdmins(ctx context.Context) (int, error) {
	var count int
	if err := q.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admin_users`); err != nil {
		log.Errorf("Error counting admin users: %v", err)
		return 0, fmt.Errorf("count admin users: %w", err)
	}
	return count, nil
}

// CreateAdmin inserts an administrator; PasswordHash must already be hashed.
func (q *Queries) CreateAdmin(ctx context.Context, user *db.AdminUser) (*db.AdminUser, error) {
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	id, err := q.insertReturningID(ctx, `
		INSERT INTO admin_users (username, password_hash, created_at, updated_at)
		VALUES (:username, :password_hash, :created_at, :updated_at)`, user)
	if err != nil {
		log.Errorf("Error creating admin user '%s': %v", user.Username, err)
		return nil, fmt.Errorf("create admin user: %w", err)
	}
	user.ID = id

	log.Infof("Admin user %s created with ID: %d", user.Username, user.ID)
	return user, nil
}

// FindAdminByUsername retrieves an administrator by login name.
func (q *Queries) FindAdminByUsername(ctx context.Context, username string) (*db.AdminUser, error) {
	user := &db.AdminUser{}
	found, err := q.getOne(ctx, user, `SELECT `+adminColumns+` FROM admin_users WHERE username = ?`, username)
	if err != nil {
		log.Errorf("Error finding admin user by username '%s': %v", username, err)
		return nil, fmt.Errorf("find admin user by username: %w", err)
	}
	if !found {
		log.Debugf("Admin user '%s' not found.", username)
		return nil, nil
	}
	return user, nil
}

// FindAdminByID retrieves an administrator by primary key.
func (q *Queries) FindAdminByID(ctx context.Context, id int64) (*db.AdminUser, error) {
	user := &db.AdminUser{}
	found, err := q.getOne(ctx, user, `SELECT `+adminColumns+` FROM admin_users WHERE id = ?`, id)
	if err != nil {
		log.Errorf("Error finding admin user by ID '%d': %v", id, err)
		return nil, fmt.Errorf("find admin user by id: %w", err)
	}
	if !found {
		log.Debugf("Admin user with ID '%d' not found.", id)
		return nil, nil
	}
	return user, nil
}

// UpdateAdminPassword stores a new bcrypt hash for the given account.
func (q *Queries) UpdateAdminPassword(ctx context.Context, id int64, passwordHash string) error {
	result, err := q.db.ExecContext(ctx,
		q.db.Rebind(`UPDATE admin_users SET password_hash = ?, updated_at = ? WHERE id = ?`),
		passwordHash, now(), id)
	if err != nil {
		log.Errorf("Error updating password for admin user '%d': %v", id, err)
		return fmt.Errorf("update admin password: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No admin user found with ID '%d' for password update.", id)
		return err
	}

	log.Infof("Password rotated for admin user '%d'.", id)
	return nil
}
