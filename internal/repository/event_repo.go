package repository

import (
	"context"
	"time"

	"eventhub/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Date        string    `gorm:"column:date"`
	Time        *string   `gorm:"column:time"`
	Location    string    `gorm:"column:location"`
	Venue       *string   `gorm:"column:venue"`
	Description *string   `gorm:"column:description;type:text"`
	ImageURL    *string   `gorm:"column:image_url"`
	Category    *string   `gorm:"column:category"`
	TicketPrice int64     `gorm:"column:ticket_price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (eventModel) TableName() string { return "events" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainEvent(m eventModel) *domain.Event {
	return &domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Time:        strOrEmpty(m.Time),
		Location:    m.Location,
		Venue:       strOrEmpty(m.Venue),
		Description: strOrEmpty(m.Description),
		ImageURL:    strOrEmpty(m.ImageURL),
		Category:    strOrEmpty(m.Category),
		TicketPrice: domain.Paise(m.TicketPrice),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toEventModel(e *domain.Event) eventModel {
	return eventModel{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        strOrNil(e.Time),
		Location:    e.Location,
		Venue:       strOrNil(e.Venue),
		Description: strOrNil(e.Description),
		ImageURL:    strOrNil(e.ImageURL),
		Category:    strOrNil(e.Category),
		TicketPrice: int64(e.TicketPrice),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEvent(m)
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) List(ctx context.Context, category string, limit, offset int) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&eventModel{}).Order("date, id")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var rows []eventModel
	tx := q.Limit(limit).Offset(offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEvent(m))
	}
	return out, nil
}
