package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sectorres/vendas-insights-wa/internal/domain"
	"github.com/sectorres/vendas-insights-wa/internal/usecases/scheduling"
	"github.com/sectorres/vendas-insights-wa/pkg/apiErrors"
)

type ToggleScheduleRequest struct {
	Active bool `json:"active"`
}

// ListSchedules devolve todos os agendamentos, mais recentes primeiro
func ListSchedules(service scheduling.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schedules, err := service.ListSchedules()
		if err != nil {
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(schedules); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateSchedule(service scheduling.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var schedule domain.NotificationSchedule
		if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateSchedule(&schedule)
		if err != nil {
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

func UpdateSchedule(service scheduling.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do agendamento não fornecido", nil)
			return
		}

		var schedule domain.NotificationSchedule
		if err := json.NewDecoder(r.Body).Decode(&schedule); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		schedule.ID = id

		updated, err := service.UpdateSchedule(&schedule)
		if err != nil {
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logrus.Error(err)
		}
	}
}

func DeleteSchedule(service scheduling.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do agendamento não fornecido", nil)
			return
		}

		if err := service.DeleteSchedule(id); err != nil {
			handleScheduleError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ToggleSchedule ativa ou desativa um agendamento sem alterar o restante
func ToggleSchedule(service scheduling.Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do agendamento não fornecido", nil)
			return
		}

		var req ToggleScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetScheduleActive(id, req.Active); err != nil {
			handleScheduleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"id":     id,
			"active": req.Active,
		}); err != nil {
			logrus.Error(err)
		}
	}
}

// handleScheduleError traduz os erros do usecase para a resposta da API
func handleScheduleError(w http.ResponseWriter, err error) {
	var scheduleErr *scheduling.ScheduleError
	if errors.As(err, &scheduleErr) {
		var details any
		if scheduleErr.ScheduleID != "" {
			details = map[string]any{"schedule_id": scheduleErr.ScheduleID}
		}
		apiErrors.WriteError(w, scheduleErr.Code, scheduleErr.Error(), details)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar agendamento", nil)
}
