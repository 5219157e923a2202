package queries

import (
	"context"
	"fmt"

	"github.com/ASHISH26940/portfolio-api/pkg/db"
	log "github.com/sirupsen/logrus"
)

const messageColumns = `id, name, email, message, sent_at`

// ListMessages returns every contact message, newest first.
func (q *Queries) ListMessages(ctx context.Context) ([]db.Message, error) {
	messages := []db.Message{}
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY sent_at DESC, id DESC`
	if err := q.db.SelectContext(ctx, &messages, query); err != nil {
		log.Errorf("Error listing messages: %v", err)
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

func (q *Queries) FindMessageByID(ctx context.Context, id int64) (*db.Message, error) {
	message := &db.Message{}
	found, err := q.getOne(ctx, message, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	if err != nil {
		log.Errorf("Error finding message by ID '%d': %v", id, err)
		return nil, fmt.Errorf("find message by id: %w", err)
	}
	if !found {
		return nil, nil
	}
	return message, nil
}

// CreateMessage stores a visitor message and stamps sent_at.
func (q *Queries) CreateMessage(ctx context.Context, message *db.Message) (*db.Message, error) {
	message.SentAt = now()

	id, err := q.insertReturningID(ctx, `
		INSERT INTO messages (name, email, message, sent_at)
		VALUES (:name, :email, :message, :sent_at)`, message)
	if err != nil {
		log.Errorf("Error creating message from '%s': %v", message.Email, err)
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	created, err := q.FindMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("message %d vanished after insert", id)
	}

	log.Infof("Message from '%s' stored (ID: %d)", created.Email, created.ID)
	return created, nil
}

func (q *Queries) DeleteMessage(ctx context.Context, id int64) error {
	result, err := q.db.ExecContext(ctx, q.db.Rebind(`DELETE FROM messages WHERE id = ?`), id)
	if err != nil {
		log.Errorf("Error deleting message with ID '%d': %v", id, err)
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if err := checkAffected(result); err != nil {
		log.Warnf("No message found with ID '%d' for deletion.", id)
		return err
	}

	log.Infof("Message with ID '%d' deleted.", id)
	return nil
}
