package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/model"
)

// EditalStore é a interface de persistência consumida pelos serviços de
// transição de fase e pelos jobs. Implementada por GormEditalStore; os testes
// usam o mock gerado em mocks/.
type EditalStore interface {
	// Leitura interativa: SEMPRE filtrada por tenant.
	GetEdital(ctx context.Context, id, prefeituraID uuid.UUID) (*model.EditalModel, error)

	// Leitura dos jobs: autoridade de sistema, sem filtro de tenant.
	GetEditalSistema(ctx context.Context, id uuid.UUID) (*model.EditalModel, error)

	// Avanço condicional de fase (CAS no valor observado). Retorna o número
	// de linhas afetadas: 0 indica corrida perdida ou edital inexistente.
	UpdateEditalStatusFrom(ctx context.Context, id uuid.UUID, statusAtual, novoStatus string) (int64, error)

	ListExpiredPhaseWindows(ctx context.Context, now time.Time) ([]model.EditalFaseModel, error)
	LockPhaseWindows(ctx context.Context, ids []uuid.UUID) (int64, error)

	ListEditaisComInscricaoExpirada(ctx context.Context, now time.Time) ([]model.EditalModel, error)
	// Encerramento em lote, guardado no status observado: linhas que já
	// saíram de statusAtual ficam fora do update (nunca anda para trás).
	BatchUpdateStatusFrom(ctx context.Context, ids []uuid.UUID, statusAtual, novoStatus string) (int64, error)
}

type GormEditalStore struct {
	DB *gorm.DB
}

func NewGormEditalStore(db *gorm.DB) *GormEditalStore {
	return &GormEditalStore{DB: db}
}

func (s *GormEditalStore) GetEdital(ctx context.Context, id, prefeituraID uuid.UUID) (*model.EditalModel, error) {
	var edital model.EditalModel
	err := s.DB.WithContext(ctx).
		Where("edital_id = ? AND edital_prefeitura_id = ? AND edital_ativo = true", id, prefeituraID).
		First(&edital).Error
	if err != nil {
		return nil, err
	}
	return &edital, nil
}

func (s *GormEditalStore) GetEditalSistema(ctx context.Context, id uuid.UUID) (*model.EditalModel, error) {
	var edital model.EditalModel
	err := s.DB.WithContext(ctx).
		Where("edital_id = ? AND edital_ativo = true", id).
		First(&edital).Error
	if err != nil {
		return nil, err
	}
	return &edital, nil
}

func (s *GormEditalStore) UpdateEditalStatusFrom(ctx context.Context, id uuid.UUID, statusAtual, novoStatus string) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.EditalModel{}).
		Where("edital_id = ? AND edital_status = ?", id, statusAtual).
		Updates(map[string]interface{}{
			"edital_status": novoStatus,
			"edital_versao": gorm.Expr("edital_versao + 1"),
		})
	return res.RowsAffected, res.Error
}

func (s *GormEditalStore) ListExpiredPhaseWindows(ctx context.Context, now time.Time) ([]model.EditalFaseModel, error) {
	var janelas []model.EditalFaseModel
	err := s.DB.WithContext(ctx).
		Where("edital_fase_bloqueada = false AND edital_fase_data_fim IS NOT NULL AND edital_fase_data_fim < ?", now).
		Find(&janelas).Error
	return janelas, err
}

func (s *GormEditalStore) LockPhaseWindows(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.DB.WithContext(ctx).
		Model(&model.EditalFaseModel{}).
		Where("edital_fase_id IN ?", ids).
		Update("edital_fase_bloqueada", true)
	return res.RowsAffected, res.Error
}

func (s *GormEditalStore) ListEditaisComInscricaoExpirada(ctx context.Context, now time.Time) ([]model.EditalModel, error) {
	var editais []model.EditalModel
	err := s.DB.WithContext(ctx).
		Where("edital_status = ? AND edital_inscricao_data_fim IS NOT NULL AND edital_inscricao_data_fim < ? AND edital_ativo = true",
			FaseInscricao, now).
		Find(&editais).Error
	return editais, err
}

func (s *GormEditalStore) BatchUpdateStatusFrom(ctx context.Context, ids []uuid.UUID, statusAtual, novoStatus string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := s.DB.WithContext(ctx).
		Model(&model.EditalModel{}).
		Where("edital_id IN ? AND edital_status = ?", ids, statusAtual).
		Updates(map[string]interface{}{
			"edital_status": novoStatus,
			"edital_versao": gorm.Expr("edital_versao + 1"),
		})
	return res.RowsAffected, res.Error
}
