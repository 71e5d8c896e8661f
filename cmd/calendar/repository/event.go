package repository

import (
	"calendar-backend/cmd/calendar/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

// Migrate creates the events table when it does not exist yet.
func (r *EventRepo) Migrate(ctx context.Context) error {
	return r.db.
		WithContext(ctx).
		AutoMigrate(&model.Event{})
}

func (r *EventRepo) CreateEvent(ctx context.Context, name string, date time.Time) (model.Event, error) {

	event := model.Event{
		Name: name,
		Date: date,
	}

	result := r.db.
		WithContext(ctx).
		Create(&event)

	if result.Error != nil {
		return model.Event{}, result.Error
	}

	return event, nil
}

// CreateEvents stores every event or none of them.
func (r *EventRepo) CreateEvents(ctx context.Context, events []model.Event) ([]model.Event, error) {

	if len(events) == 0 {
		return []model.Event{}, nil
	}

	err := r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			return tx.Create(&events).Error
		})

	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Order("id").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) GetEventByID(ctx context.Context, id uint) (model.Event, error) {

	var event model.Event

	result := r.db.
		WithContext(ctx).
		Take(&event, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return model.Event{}, model.ErrEventNotFound
	}
	if result.Error != nil {
		return model.Event{}, result.Error
	}

	return event, nil
}

// ListEventsByDateRange returns events with start <= date <= end.
func (r *EventRepo) ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("date >= ? AND date <= ?", start, end).
		Order("id").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) ListEventsByDate(ctx context.Context, date time.Time) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("date = ?", date).
		Order("id").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) UpdateEvent(ctx context.Context, id uint, name string, date time.Time) (model.Event, error) {

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"event": name,
			"date":  date,
		})

	if result.Error != nil {
		return model.Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return model.Event{}, model.ErrEventNotFound
	}

	return model.Event{
		ID:   id,
		Name: name,
		Date: date,
	}, nil
}

func (r *EventRepo) DeleteEvent(ctx context.Context, id uint) error {

	result := r.db.
		WithContext(ctx).
		Delete(&model.Event{}, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrEventNotFound
	}

	return nil
}
