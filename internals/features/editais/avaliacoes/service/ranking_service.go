package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

var ErrSemProjetos = errors.New("edital não possui projetos")

// Resultado agregado de uma consolidação.
type ResultadoConsolidacao struct {
	Atualizados int `json:"atualizados"`
	Falhas      int `json:"falhas"`
}

// RankingService recalcula a nota final de cada projeto como a média
// aritmética das avaliações finalizadas. A operação é idempotente e
// totalmente re-derivável dos dados de avaliação: depois de uma falha
// parcial, o procedimento de recuperação é simplesmente rodar de novo.
type RankingService struct {
	Store RankingStore
}

func NewRankingService(store RankingStore) *RankingService {
	return &RankingService{Store: store}
}

func (s *RankingService) Consolidar(ctx context.Context, editalID uuid.UUID) (ResultadoConsolidacao, error) {
	projetos, err := s.Store.ListProjetosComNotas(ctx, editalID)
	if err != nil {
		return ResultadoConsolidacao{}, fmt.Errorf("falha ao carregar projetos e notas: %w", err)
	}
	if len(projetos) == 0 {
		return ResultadoConsolidacao{}, ErrSemProjetos
	}

	// Projetos sem avaliação finalizada ficam fora do lote: a nota final
	// anterior (normalmente null) permanece intocada.
	type notaCalculada struct {
		projetoID uuid.UUID
		media     float64
	}
	lote := make([]notaCalculada, 0, len(projetos))
	for _, p := range projetos {
		if len(p.Notas) == 0 {
			continue
		}
		soma := 0.0
		for _, n := range p.Notas {
			soma += n
		}
		lote = append(lote, notaCalculada{projetoID: p.ProjetoID, media: soma / float64(len(p.Notas))})
	}

	// Updates independentes despachados em paralelo; cada falha é contada,
	// nada é revertido.
	var wg sync.WaitGroup
	falhas := make(chan uuid.UUID, len(lote))
	for _, item := range lote {
		wg.Add(1)
		go func(item notaCalculada) {
			defer wg.Done()
			if err := s.Store.UpdateProjetoNotaFinal(ctx, item.projetoID, item.media); err != nil {
				log.Printf("[ERROR] falha ao gravar nota final do projeto %s: %v", item.projetoID, err)
				falhas <- item.projetoID
			}
		}(item)
	}
	wg.Wait()
	close(falhas)

	numFalhas := len(falhas)
	return ResultadoConsolidacao{
		Atualizados: len(lote) - numFalhas,
		Falhas:      numFalhas,
	}, nil
}
