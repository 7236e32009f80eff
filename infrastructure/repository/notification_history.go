package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sectorres/vendas-insights-wa/infrastructure/database/postgres"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
)

const notificationHistoryTable = "notification_history"

type NotificationHistoryRepository interface {
	Insert(entry *domain.NotificationHistory) error
	ListRecent(limit int) ([]*domain.NotificationHistory, error)
	DeleteOlderThan(days int) (int64, error)
}

type notificationHistoryRepository struct {
	conn *postgres.Connection
}

func NewNotificationHistoryRepository(conn *postgres.Connection) NotificationHistoryRepository {
	return &notificationHistoryRepository{
		conn: conn,
	}
}

func (r *notificationHistoryRepository) Insert(entry *domain.NotificationHistory) error {
	query, args, err := squirrel.
		Insert(notificationHistoryTable).
		Columns("schedule_id", "phone_number", "report_type", "status", "error_message").
		Values(
			entry.ScheduleID,
			entry.PhoneNumber,
			entry.ReportKind,
			entry.Status,
			entry.ErrorMessage,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir histórico de notificação: %w", err)
	}

	return nil
}

func (r *notificationHistoryRepository) ListRecent(limit int) ([]*domain.NotificationHistory, error) {
	if limit <= 0 {
		limit = 100
	}

	query, args, err := squirrel.
		Select("id, schedule_id, phone_number, report_type, status, error_message, created_at").
		From(notificationHistoryTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.NotificationHistory, 0)
	for rows.Next() {
		entry := &domain.NotificationHistory{}
		var errorMessage sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.ScheduleID,
			&entry.PhoneNumber,
			&entry.ReportKind,
			&entry.Status,
			&errorMessage,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico: %w", err)
		}

		if errorMessage.Valid {
			entry.ErrorMessage = &errorMessage.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *notificationHistoryRepository) DeleteOlderThan(days int) (int64, error) {
	query, args, err := squirrel.
		Delete(notificationHistoryTable).
		Where(fmt.Sprintf("created_at < NOW() - INTERVAL '%d days'", days)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar histórico antigo: %w", err)
	}

	return result.RowsAffected()
}
