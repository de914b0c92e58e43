package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
)

func TestTxRunner_Commit(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Cuenta_Valida")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := NewTxRunner(mock).Run(context.Background(), func(q Querier) error {
		return NewAccountRepository(q).Save(context.Background(), &entity.Account{Email: "a@b.co", Password: "x"})
	})
	require.NoError(t, err)
}

func TestTxRunner_RollbackSiFnFalla(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewTxRunner(mock).Run(context.Background(), func(Querier) error { return boom })
	assert.ErrorIs(t, err, boom)
}
