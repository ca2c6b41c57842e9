package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// FindOverlapping espelha em SQL o predicado de overlap do domínio
// (start_time < fim AND end_time > início, intervalo semiaberto).
//
// O lock FOR UPDATE nas linhas do profissional é o que impede duas
// criações concorrentes de passarem as duas pela checagem — a query
// precisa rodar dentro da transação que também faz o insert.
func (r *AppointmentGormRepository) FindOverlapping(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{})

	// sqlite (usado nos testes) não aceita FOR UPDATE.
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	q = q.Where(
		"professional_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
		professionalID,
		end,
		start,
	)

	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var conflicts []models.Appointment
	if err := q.Find(&conflicts).Error; err != nil {
		return nil, err
	}

	return conflicts, nil
}

func (r *AppointmentGormRepository) FindManyByProfessionalID(
	ctx context.Context,
	professionalID uint,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("professional_id = ?", professionalID).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentGormRepository) FindManyByClientID(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentGormRepository) FindManyByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("start_time ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentGormRepository) Save(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}
