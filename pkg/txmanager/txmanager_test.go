package txmanager

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

func TestDoSerializable_RetriesCountedOnSerializationFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("txmanager_test")
	manager := NewTransactionManager(dbmetrics.Wrap(db, m, "txmanager_test"))
	retries := func() float64 {
		return testutil.ToFloat64(m.TxRetriesTotal.WithLabelValues("serializable"))
	}

	// Конфликт сериализации на первой попытке, успех на второй
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1.0, retries())

	// Конфликт на всех попытках: исчерпание лимита, две повторных попытки
	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40001"}
	})
	require.Error(t, err)
	assert.Equal(t, 3.0, retries())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_NonSerializationErrorNotRetried(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("txmanager_test_no_retry")
	manager := NewTransactionManager(dbmetrics.Wrap(db, m, "txmanager_test_no_retry"))

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err = manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return &pq.Error{Code: "23505"}
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.TxRetriesTotal.WithLabelValues("serializable")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
