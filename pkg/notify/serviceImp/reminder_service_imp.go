package serviceImp

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"farmcare/entities"
	"farmcare/pkg/clock"
	"farmcare/pkg/logger"
	repo "farmcare/pkg/notify/repository"
	"farmcare/pkg/notify/service"
	"farmcare/pkg/schedule"
)

type reminderSvc struct {
	r        repo.NotificationRepository
	tasks    service.TaskSource
	harvests service.HarvestSource
	clk      clock.Clock
	loc      *time.Location
}

func NewReminderService(r repo.NotificationRepository, tasks service.TaskSource, harvests service.HarvestSource, clk clock.Clock, loc *time.Location) service.ReminderService {
	if loc == nil {
		loc = time.UTC
	}
	return &reminderSvc{r: r, tasks: tasks, harvests: harvests, clk: clk, loc: loc}
}

func (s *reminderSvc) Run(day time.Time, dryRun bool) (*service.Report, error) {
	day = clock.Day(day, nil)
	rep := &service.Report{Day: day, DryRun: dryRun, Notifications: []entities.Notification{}}

	open, err := s.tasks.ListOpenOn(day)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	byUser := map[string][]entities.CareTask{}
	for _, t := range open {
		byUser[t.UserID] = append(byUser[t.UserID], t)
	}
	for _, uid := range sortedKeys(byUser) {
		ts := byUser[uid]
		n := entities.Notification{
			UserID:      uid,
			Title:       "Care tasks for today",
			Message:     fmt.Sprintf("You have %d care %s today, including %s.", len(ts), plural(len(ts), "task", "tasks"), Describe(ts[0].Activity)),
			Category:    entities.NotificationTask,
			ActionURL:   "/tasks",
			ActionLabel: "Open tasks",
		}
		sent, err := s.send(&n, day, dryRun)
		if err != nil {
			return nil, err
		}
		if !sent {
			rep.Skipped++
			continue
		}
		rep.TaskUsers++
		rep.Notifications = append(rep.Notifications, n)
	}

	ready, err := s.harvests.ListHarvestOn(day)
	if err != nil {
		return nil, fmt.Errorf("list harvests: %w", err)
	}
	plants := map[string][]string{}
	for _, p := range ready {
		name := p.PlantName
		if name == "" {
			name = fmt.Sprintf("planting #%d", p.ID)
		}
		plants[p.UserID] = append(plants[p.UserID], name)
	}
	for _, uid := range sortedKeys(plants) {
		names := plants[uid]
		n := entities.Notification{
			UserID:      uid,
			Title:       "Harvest day",
			Message:     fmt.Sprintf("%s %s ready to harvest today.", strings.Join(names, ", "), plural(len(names), "is", "are")),
			Category:    entities.NotificationReminder,
			ActionURL:   "/plantings",
			ActionLabel: "View plantings",
		}
		sent, err := s.send(&n, day, dryRun)
		if err != nil {
			return nil, err
		}
		if !sent {
			rep.Skipped++
			continue
		}
		rep.HarvestUsers++
		rep.Notifications = append(rep.Notifications, n)
	}

	logger.Info().
		Str("day", day.Format(clock.DateLayout)).
		Bool("dry_run", dryRun).
		Int("task_users", rep.TaskUsers).
		Int("harvest_users", rep.HarvestUsers).
		Int("skipped", rep.Skipped).
		Msg("reminders composed")
	return rep, nil
}

// send stores n unless the user already got a notification of the same
// category on day. It reports whether n counts as sent.
func (s *reminderSvc) send(n *entities.Notification, day time.Time, dryRun bool) (bool, error) {
	since := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.loc)
	dup, err := s.r.ExistsSince(n.UserID, n.Category, since)
	if err != nil {
		return false, err
	}
	if dup {
		return false, nil
	}
	if dryRun {
		return true, nil
	}
	n.CreatedAt = s.clk.Now().UTC()
	if err := s.r.Create(n); err != nil {
		return false, fmt.Errorf("store reminder for %s: %w", n.UserID, err)
	}
	return true, nil
}

// Describe renders an activity label for people.
func Describe(activity string) string {
	if schedule.IsFertilizing(activity) {
		if _, fert, ok := strings.Cut(activity, ":"); ok && fert != "" {
			return "fertilizing (" + fert + ")"
		}
		return "fertilizing"
	}
	return activity
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
