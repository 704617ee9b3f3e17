package crm_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Negocio-api/internal/application/crm"
	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (r *fakeReviewRepo) Append(rev *entity.Review) error {
	r.reviews = append(r.reviews, rev)
	return nil
}

func (r *fakeReviewRepo) List() ([]*entity.Review, error) { return r.reviews, nil }

func rating(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func buildUseCase() (*crm.UseCase, *fakeReviewRepo) {
	repo := &fakeReviewRepo{}
	return crm.NewUseCase(repo, crm.DefaultBounds()), repo
}

func TestSubmit_AgregaResenaConFechaDeHoy(t *testing.T) {
	uc, repo := buildUseCase()

	err := uc.Submit(dto.SubmitReviewRequest{
		CustomerName: "María",
		Feedback:     "Excelente atención",
		Rating:       rating(4.5),
	})
	require.NoError(t, err)
	require.Len(t, repo.reviews, 1)
	assert.Equal(t, "María", repo.reviews[0].CustomerName)
	assert.True(t, repo.reviews[0].Rating.Equal(rating(4.5)))
}

func TestSubmit_NombreVacio(t *testing.T) {
	uc, repo := buildUseCase()

	err := uc.Submit(dto.SubmitReviewRequest{CustomerName: "  ", Rating: rating(4)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.reviews)
}

// La calificación debe caer en la escala configurada (1–5 inclusive).
func TestSubmit_CalificacionFueraDeRango(t *testing.T) {
	uc, repo := buildUseCase()

	assert.ErrorIs(t, uc.Submit(dto.SubmitReviewRequest{CustomerName: "Ana", Rating: rating(0.5)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.Submit(dto.SubmitReviewRequest{CustomerName: "Ana", Rating: rating(5.5)}), domain.ErrInvalidInput)
	assert.Empty(t, repo.reviews)
}

func TestSubmit_ExtremosDeLaEscalaSonValidos(t *testing.T) {
	uc, repo := buildUseCase()

	require.NoError(t, uc.Submit(dto.SubmitReviewRequest{CustomerName: "Ana", Rating: rating(1)}))
	require.NoError(t, uc.Submit(dto.SubmitReviewRequest{CustomerName: "Ana", Rating: rating(5)}))
	assert.Len(t, repo.reviews, 2)
}

func TestAverageRating_LibroVacioEsCero(t *testing.T) {
	uc, _ := buildUseCase()

	avg, err := uc.AverageRating()
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

// Calificaciones [4, 5, 3] promedian 4.
func TestAverageRating_PromedioExacto(t *testing.T) {
	uc, _ := buildUseCase()
	for _, v := range []float64{4, 5, 3} {
		require.NoError(t, uc.Submit(dto.SubmitReviewRequest{CustomerName: "Ana", Rating: rating(v)}))
	}

	avg, err := uc.AverageRating()
	require.NoError(t, err)
	assert.Equal(t, "4", avg.String())
}

func TestAverageRating_RedondeaADosDecimales(t *testing.T) {
	uc, _ := buildUseCase()
	for _, v := range []float64{4, 4, 5} {
		require.NoError(t, uc.Submit(dto.SubmitReviewRequest{CustomerName: "Ana", Rating: rating(v)}))
	}

	avg, err := uc.AverageRating()
	require.NoError(t, err)
	assert.Equal(t, "4.33", avg.String(), "13/3 = 4.333... → 4.33")
}
