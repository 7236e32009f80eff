package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sectorres/vendas-insights-wa/infrastructure/database/postgres"
	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/pkg/utils"
)

const schedulesTable = "notification_schedules"

const scheduleColumns = "id, name, report_type, schedule_time, schedule_days, phone_numbers, empresas_origem, active, created_at, updated_at"

type ScheduleRepository interface {
	ListSchedules() ([]*domain.NotificationSchedule, error)
	ListActiveSchedules() ([]*domain.NotificationSchedule, error)
	GetScheduleByID(id string) (*domain.NotificationSchedule, error)
	CreateSchedule(schedule *domain.NotificationSchedule) (*domain.NotificationSchedule, error)
	UpdateSchedule(schedule *domain.NotificationSchedule) error
	DeleteSchedule(id string) error
	SetScheduleActive(id string, active bool) error
}

type scheduleRepository struct {
	conn *postgres.Connection
}

func NewScheduleRepository(conn *postgres.Connection) ScheduleRepository {
	return &scheduleRepository{
		conn: conn,
	}
}

func (r *scheduleRepository) ListSchedules() ([]*domain.NotificationSchedule, error) {
	return r.listSchedules(nil)
}

func (r *scheduleRepository) ListActiveSchedules() ([]*domain.NotificationSchedule, error) {
	return r.listSchedules(squirrel.Eq{"active": true})
}

func (r *scheduleRepository) listSchedules(where any) ([]*domain.NotificationSchedule, error) {
	builder := squirrel.
		Select(scheduleColumns).
		From(schedulesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	schedules := make([]*domain.NotificationSchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return schedules, nil
}

func (r *scheduleRepository) GetScheduleByID(id string) (*domain.NotificationSchedule, error) {
	query, args, err := squirrel.
		Select(scheduleColumns).
		From(schedulesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	schedule := &domain.NotificationSchedule{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&schedule.ID,
		&schedule.Name,
		&schedule.ReportKind,
		&schedule.ScheduleTime,
		pq.Array(&schedule.ScheduleDays),
		pq.Array(&schedule.PhoneNumbers),
		pq.Array(&schedule.StoreCodes),
		&schedule.Active,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear agendamento: %w", err)
	}

	return schedule, nil
}

func (r *scheduleRepository) CreateSchedule(schedule *domain.NotificationSchedule) (*domain.NotificationSchedule, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o id do agendamento: %w", err)
	}

	now := time.Now()
	schedule.ID = id
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	query, args, err := squirrel.
		Insert(schedulesTable).
		Columns("id", "name", "report_type", "schedule_time", "schedule_days", "phone_numbers", "empresas_origem", "active", "created_at", "updated_at").
		Values(
			schedule.ID,
			schedule.Name,
			schedule.ReportKind,
			schedule.ScheduleTime,
			pq.Array(schedule.ScheduleDays),
			pq.Array(schedule.PhoneNumbers),
			pq.Array(schedule.StoreCodes),
			schedule.Active,
			schedule.CreatedAt,
			schedule.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("erro ao inserir agendamento: %w", err)
	}

	return schedule, nil
}

func (r *scheduleRepository) UpdateSchedule(schedule *domain.NotificationSchedule) error {
	query, args, err := squirrel.
		Update(schedulesTable).
		Set("name", schedule.Name).
		Set("report_type", schedule.ReportKind).
		Set("schedule_time", schedule.ScheduleTime).
		Set("schedule_days", pq.Array(schedule.ScheduleDays)).
		Set("phone_numbers", pq.Array(schedule.PhoneNumbers)).
		Set("empresas_origem", pq.Array(schedule.StoreCodes)).
		Set("active", schedule.Active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": schedule.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar agendamento: %w", err)
	}

	return checkAffected(result, schedule.ID)
}

func (r *scheduleRepository) DeleteSchedule(id string) error {
	query, args, err := squirrel.
		Delete(schedulesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover agendamento: %w", err)
	}

	return checkAffected(result, id)
}

func (r *scheduleRepository) SetScheduleActive(id string, active bool) error {
	query, args, err := squirrel.
		Update(schedulesTable).
		Set("active", active).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao alterar status do agendamento: %w", err)
	}

	return checkAffected(result, id)
}

func checkAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return fmt.Errorf("agendamento não encontrado: %s", id)
	}

	return nil
}

func scanSchedule(rows *sql.Rows) (*domain.NotificationSchedule, error) {
	schedule := &domain.NotificationSchedule{}

	err := rows.Scan(
		&schedule.ID,
		&schedule.Name,
		&schedule.ReportKind,
		&schedule.ScheduleTime,
		pq.Array(&schedule.ScheduleDays),
		pq.Array(&schedule.PhoneNumbers),
		pq.Array(&schedule.StoreCodes),
		&schedule.Active,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return schedule, nil
}
