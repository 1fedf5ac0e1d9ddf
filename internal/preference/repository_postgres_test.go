package preference

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresStore_GetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectQuery("SELECT value FROM visitor_preferences").
		WithArgs("v1", KeyClickCount).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok, err := store.Get(context.Background(), "v1", KeyClickCount)
	if err != nil {
		t.Fatalf("expected nil err for missing row, got %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false for missing row")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_GetManyAndSet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	store := NewPostgresStore(db)

	mock.ExpectExec("INSERT INTO visitor_preferences").
		WithArgs("v1", KeyClickCount, "7").
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(KeyClickCount, "7").
		AddRow(KeyThemeEnabled, "true")
	mock.ExpectQuery("FROM visitor_preferences").
		WithArgs("v1", sqlmock.AnyArg()).
		WillReturnRows(rows)

	svc := NewService(store, nil)
	svc.SaveClickCounter(context.Background(), "v1", 7)
	p := svc.Load(context.Background(), "v1")
	if p.ClickCount != 7 || !p.ThemeEnabled {
		t.Fatalf("unexpected preferences %+v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_QueryErrorDegrades(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM visitor_preferences").
		WithArgs("v1", KeyThemeEnabled).
		WillReturnError(errors.New("relation does not exist"))

	svc := NewService(NewPostgresStore(db), nil)
	if svc.LoadThemeFlag(context.Background(), "v1") {
		t.Fatalf("expected default light theme on query error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresStore_Increment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO visitor_preferences .* RETURNING value").
		WithArgs("v1", KeyClickCount).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("8"))

	svc := NewService(NewPostgresStore(db), nil)
	if got := svc.IncrementClickCounter(context.Background(), "v1"); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
