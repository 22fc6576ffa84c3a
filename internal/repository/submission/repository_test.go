package submission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameypusalkar001/EPMATest/internal/dto"
)

func record(first, last string) dto.EmployeeRecord {
	r := dto.DefaultRecord()
	r.FirstName = first
	r.LastName = last
	return r
}

func TestRepository_SubmitPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	a := record("Ada", "Lovelace")
	b := record("Grace", "Hopper")

	i, err := repo.Submit(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = repo.Submit(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.EmployeeRecord{a, b}, got)
}

func TestRepository_KeepsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	a := record("Ada", "Lovelace")
	for i := 0; i < 3; i++ {
		_, err := repo.Submit(ctx, a)
		require.NoError(t, err)
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRepository_StoresValueCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	a := record("Ada", "Lovelace")
	_, err := repo.Submit(ctx, a)
	require.NoError(t, err)

	a.FirstName = "changed"

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	listed[0].LastName = "changed too"

	got, err := repo.Get(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
}

func TestRepository_GetOutOfRange(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Get(ctx, 0)
	assert.ErrorIs(t, err, dto.ErrNotFound)

	_, err = repo.Submit(ctx, record("Ada", "Lovelace"))
	require.NoError(t, err)

	_, err = repo.Get(ctx, -1)
	assert.ErrorIs(t, err, dto.ErrNotFound)
	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, dto.ErrNotFound)
}

func TestRepository_EmptyList(t *testing.T) {
	got, err := NewRepository().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewRepository()
	_, err := repo.Submit(ctx, record("Ada", "Lovelace"))
	assert.ErrorIs(t, err, context.Canceled)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
