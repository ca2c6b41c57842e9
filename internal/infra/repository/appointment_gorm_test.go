package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/care-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Banco em memória vive na conexão; o pool precisa ficar em uma só.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Professional{},
		&models.Client{},
		&models.CancellationPolicy{},
		&models.Appointment{},
		&models.Transaction{},
		&models.AuditLog{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedAppointment(t *testing.T, db *gorm.DB, professionalID uint, start, end time.Time, status domain.Status) *models.Appointment {
	t.Helper()

	client := &models.Client{Name: "Maria Souza", Email: "maria@exemplo.com"}
	require.NoError(t, db.Create(client).Error)

	ap := &models.Appointment{
		ClientID:       client.ID,
		ProfessionalID: professionalID,
		StartTime:      start,
		EndTime:        end,
		Modality:       string(domain.ModalityOnline),
		Status:         string(status),
		Price:          200,
		MeetLink:       models.NoMeetLink,
	}
	require.NoError(t, db.Create(ap).Error)
	return ap
}

func TestFindOverlapping(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	seedAppointment(t, db, 1, base, base.Add(time.Hour), domain.StatusScheduled)

	// Janela parcialmente sobreposta conflita.
	got, err := repo.FindOverlapping(ctx, 1, base.Add(30*time.Minute), base.Add(90*time.Minute), nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Janela contida conflita.
	got, err = repo.FindOverlapping(ctx, 1, base.Add(15*time.Minute), base.Add(45*time.Minute), nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Extremos encostados não conflitam: [11:00, 12:00) após [10:00, 11:00).
	got, err = repo.FindOverlapping(ctx, 1, base.Add(time.Hour), base.Add(2*time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	// Outro profissional não conflita.
	got, err = repo.FindOverlapping(ctx, 2, base, base.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindOverlapping_IgnoresCancelled(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	seedAppointment(t, db, 1, base, base.Add(time.Hour), domain.StatusCancelled)

	got, err := repo.FindOverlapping(context.Background(), 1, base, base.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindOverlapping_ExcludesGivenID(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	ap := seedAppointment(t, db, 1, base, base.Add(time.Hour), domain.StatusScheduled)

	// Sem exclusão, a própria consulta conflita com a janela deslocada.
	got, err := repo.FindOverlapping(context.Background(), 1, base.Add(30*time.Minute), base.Add(90*time.Minute), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.FindOverlapping(context.Background(), 1, base.Add(30*time.Minute), base.Add(90*time.Minute), &ap.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindManyByStatusAndSave(t *testing.T) {
	db := setupDB(t)
	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	ap := seedAppointment(t, db, 1, base, base.Add(time.Hour), domain.StatusScheduled)
	seedAppointment(t, db, 1, base.Add(2*time.Hour), base.Add(3*time.Hour), domain.StatusCompleted)

	scheduled, err := repo.FindManyByStatus(ctx, domain.StatusScheduled)
	require.NoError(t, err)
	require.Len(t, scheduled, 1)

	ap.Status = string(domain.StatusConfirmed)
	require.NoError(t, repo.Save(ctx, ap))

	reloaded, err := repo.FindByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), reloaded.Status)
	assert.Equal(t, "Maria Souza", reloaded.Client.Name)
}
