package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVaccination(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("valid vaccination", func(t *testing.T) {
		v, err := NewVaccination(" John Doe ", " tet-001 ", 0.5, date)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, v.ID)
		assert.Equal(t, "John Doe", v.Name)
		assert.Equal(t, "tet-001", v.DrugID)
	})

	t.Run("empty name or drug reference", func(t *testing.T) {
		_, err := NewVaccination("", "tet-001", 0.5, date)
		require.ErrorIs(t, err, ErrEmptyName)

		_, err = NewVaccination("John Doe", "  ", 0.5, date)
		require.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("negative dose", func(t *testing.T) {
		_, err := NewVaccination("John Doe", "tet-001", -0.5, date)
		require.ErrorIs(t, err, ErrNegativeDose)
	})

	t.Run("zero dose is allowed", func(t *testing.T) {
		_, err := NewVaccination("John Doe", "tet-001", 0, date)
		require.NoError(t, err)
	})
}

func TestVaccinationIsEmpty(t *testing.T) {
	assert.True(t, (&Vaccination{ID: uuid.New()}).IsEmpty())

	v, err := NewVaccination("John Doe", "tet-001", 0.5, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, v.IsEmpty())
}
