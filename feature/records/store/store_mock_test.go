package store_test

import (
	"testing"

	"shaktool/feature/records/models"
	"shaktool/feature/records/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return store.New(gormDB), mock
}

func TestTopRecordsQueryShape(t *testing.T) {
	s, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "dt_id", "src_id", "runner_id", "category", "region", "realtime", "gametime", "comment", "video", "active"})
	rows.AddRow(1, 101, "y4o0l9vz", 7, 0, 0, 2483, 1680, "", "", 1)
	rows.AddRow(2, 102, "", 8, 0, 0, 2530, 0, "", "", 1)

	mock.ExpectQuery("SELECT \\* FROM `records` WHERE category = \\? AND active = 1 AND realtime != 0").
		WillReturnRows(rows)

	records, err := s.TopRecords(models.AnyPercent, 10)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, models.AnyPercent, records[0].Category)
	assert.Equal(t, 2483, records[0].Realtime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountAtOrBelowQueryShape(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `records`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(3))

	rank, err := s.CountAtOrBelow(models.AnyPercent, models.NTSC, 3000)
	assert.NoError(t, err)
	assert.Equal(t, 3, rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLookupErrorsPropagate(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `runners`").WillReturnError(assert.AnError)

	_, err := s.RunnerByName("anyone")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestStoredCodesDecodeThroughScanner(t *testing.T) {
	s, mock := setupMockDB(t)

	// A legacy row with an out-of-range category code decodes to Unknown
	// instead of failing the whole query.
	rows := sqlmock.NewRows([]string{"id", "runner_id", "category", "region", "realtime", "active"}).
		AddRow(1, 7, 42, 1, 2483, 1)
	mock.ExpectQuery("SELECT \\* FROM `records`").WillReturnRows(rows)

	record, err := s.RecordByID(1)
	assert.NoError(t, err)
	assert.Equal(t, models.CategoryUnknown, record.Category)
	assert.Equal(t, models.PAL, record.Region)
}
