package service

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"github.com/seed-planner/seed-planner-api/internal/pkg/seeding"
	"go.uber.org/zap"
)

const (
	calendarCacheKey = "seedplanner:calendar:events"
	calendarCacheTTL = 5 * time.Minute
)

// CalendarInvalidator is the slice of CalendarService the mutating
// services need: drop the cached event list after any write that can
// change it.
type CalendarInvalidator interface {
	Invalidate(ctx context.Context) error
}

type CalendarService interface {
	CalendarInvalidator
	Events(ctx context.Context) ([]seeding.Event, error)
}

type calendarService struct {
	r   repo.CellRepo
	rdb *redis.Client
	log *zap.Logger
}

// NewCalendarService builds the calendar service. rdb may be nil when
// redis is disabled; every read then recomputes from storage.
func NewCalendarService(r repo.CellRepo, rdb *redis.Client, log *zap.Logger) CalendarService {
	return &calendarService{r: r, rdb: rdb, log: log}
}

func (s *calendarService) Events(ctx context.Context) ([]seeding.Event, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, calendarCacheKey).Bytes()
		if err == nil {
			var events []seeding.Event
			if err := sonic.Unmarshal(raw, &events); err == nil {
				return events, nil
			}
			// Corrupt cache entry: fall through and recompute.
		} else if !errors.Is(err, redis.Nil) {
			s.log.Sugar().Warnw("calendar cache read failed", "err", err)
		}
	}

	rows, err := s.r.ListPlanted(ctx)
	if err != nil {
		return nil, err
	}

	cells := make([]seeding.PlantedCell, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, seeding.PlantedCell{
			TrayName:        row.TrayName,
			PlantName:       row.PlantName,
			PlantedDate:     time.Time(row.PlantedDate),
			DaysToGerminate: row.DaysToGerminate,
			DaysToHarvest:   row.DaysToHarvest,
		})
	}
	events := seeding.BuildEvents(cells)

	if s.rdb != nil {
		if raw, err := sonic.Marshal(events); err == nil {
			if err := s.rdb.Set(ctx, calendarCacheKey, raw, calendarCacheTTL).Err(); err != nil {
				s.log.Sugar().Warnw("calendar cache write failed", "err", err)
			}
		}
	}
	return events, nil
}

func (s *calendarService) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, calendarCacheKey).Err()
}
