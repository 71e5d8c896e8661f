package model

import "time"

type Event struct {
	ID   uint      `gorm:"column:id;primaryKey" json:"id"`
	Name string    `gorm:"column:event;not null" json:"event"`
	Date time.Time `gorm:"column:date;type:date;not null" json:"date"`
}

func (m *Event) TableName() string {
	return "events"
}

// EventInput is a validated create/update payload.
type EventInput struct {
	Name string
	Date time.Time
}
