package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	avaliacaoModel "editalize_backend/internals/features/editais/avaliacoes/model"
	projetoModel "editalize_backend/internals/features/editais/projetos/model"
)

// ProjetoNotas agrega um projeto e as pontuações das suas avaliações
// finalizadas (pode ser vazio).
type ProjetoNotas struct {
	ProjetoID uuid.UUID
	Notas     []float64
}

// RankingStore é a interface de persistência do serviço de consolidação.
type RankingStore interface {
	// Todos os projetos do edital, cada um com as notas das avaliações
	// finalizadas de pontuação não nula.
	ListProjetosComNotas(ctx context.Context, editalID uuid.UUID) ([]ProjetoNotas, error)

	UpdateProjetoNotaFinal(ctx context.Context, projetoID uuid.UUID, nota float64) error
}

type GormRankingStore struct {
	DB *gorm.DB
}

func NewGormRankingStore(db *gorm.DB) *GormRankingStore {
	return &GormRankingStore{DB: db}
}

func (s *GormRankingStore) ListProjetosComNotas(ctx context.Context, editalID uuid.UUID) ([]ProjetoNotas, error) {
	var projetos []projetoModel.ProjetoModel
	if err := s.DB.WithContext(ctx).
		Select("projeto_id").
		Where("projeto_edital_id = ?", editalID).
		Find(&projetos).Error; err != nil {
		return nil, err
	}
	if len(projetos) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(projetos))
	notasPorProjeto := make(map[uuid.UUID][]float64, len(projetos))
	for _, p := range projetos {
		ids = append(ids, p.ProjetoID)
		notasPorProjeto[p.ProjetoID] = nil
	}

	var avaliacoes []avaliacaoModel.AvaliacaoModel
	if err := s.DB.WithContext(ctx).
		Select("avaliacao_projeto_id", "avaliacao_pontuacao_total").
		Where("avaliacao_projeto_id IN ? AND avaliacao_status = ? AND avaliacao_pontuacao_total IS NOT NULL",
			ids, avaliacaoModel.AvaliacaoFinalizada).
		Find(&avaliacoes).Error; err != nil {
		return nil, err
	}
	for _, a := range avaliacoes {
		notasPorProjeto[a.AvaliacaoProjetoID] = append(notasPorProjeto[a.AvaliacaoProjetoID], *a.AvaliacaoPontuacaoTotal)
	}

	out := make([]ProjetoNotas, 0, len(ids))
	for _, id := range ids {
		out = append(out, ProjetoNotas{ProjetoID: id, Notas: notasPorProjeto[id]})
	}
	return out, nil
}

func (s *GormRankingStore) UpdateProjetoNotaFinal(ctx context.Context, projetoID uuid.UUID, nota float64) error {
	return s.DB.WithContext(ctx).
		Model(&projetoModel.ProjetoModel{}).
		Where("projeto_id = ?", projetoID).
		Update("projeto_nota_final", nota).Error
}
