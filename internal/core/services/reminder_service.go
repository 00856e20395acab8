package services

import (
	"context"
	"log"
	"time"

	"taskeasy/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService runs a daily sweep over the todo table and logs items
// whose target date has passed without being marked done
type ReminderService struct {
	todos repositories.TodoRepository
	cron  *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(todos repositories.TodoRepository) *ReminderService {
	return &ReminderService{
		todos: todos,
		cron:  cron.New(),
	}
}

// Start schedules the overdue sweep (08:30 daily)
func (s *ReminderService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.sweepOverdue); err != nil {
		log.Printf("⚠️ Failed to schedule overdue sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("🚀 ReminderService started")
}

// Stop stops the scheduler and waits for a running sweep to finish
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 ReminderService stopped")
}

func (s *ReminderService) sweepOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	overdue, err := s.todos.ListOverdue(ctx, time.Now())
	if err != nil {
		log.Printf("⚠️ Overdue sweep failed: %v", err)
		return
	}
	if len(overdue) == 0 {
		return
	}

	log.Printf("⏰ %d overdue todo(s)", len(overdue))
	for _, t := range overdue {
		log.Printf("⏰ overdue: user=%s id=%d due=%s", t.Username, t.ID, t.TargetDate.Format("2006-01-02"))
	}
}
