package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	editalModel "editalize_backend/internals/features/editais/editais/model"
	editalService "editalize_backend/internals/features/editais/editais/service"
	"editalize_backend/internals/features/editais/notificacoes/model"
	projetoModel "editalize_backend/internals/features/editais/projetos/model"
)

// NotificationService implementa o Notifier do serviço de transição: grava
// uma notificação in-app para cada proponente com projeto no edital.
// Qualquer erro fica só no log — a transição de fase nunca depende disto.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) NotificarMudancaFase(editalID uuid.UUID, novaFase string) {
	var edital editalModel.EditalModel
	if err := s.DB.Where("edital_id = ?", editalID).First(&edital).Error; err != nil {
		log.Printf("[NOTIF ERROR] edital %s: %v", editalID, err)
		return
	}

	var proponentes []uuid.UUID
	if err := s.DB.Model(&projetoModel.ProjetoModel{}).
		Distinct("projeto_proponente_id").
		Where("projeto_edital_id = ?", editalID).
		Pluck("projeto_proponente_id", &proponentes).Error; err != nil {
		log.Printf("[NOTIF ERROR] proponentes do edital %s: %v", editalID, err)
		return
	}
	if len(proponentes) == 0 {
		return
	}

	label := editalService.FaseLabels[novaFase]
	if label == "" {
		label = novaFase
	}

	notificacoes := make([]model.NotificacaoModel, 0, len(proponentes))
	for _, userID := range proponentes {
		notificacoes = append(notificacoes, model.NotificacaoModel{
			NotificacaoUserID:       userID,
			NotificacaoPrefeituraID: edital.EditalPrefeituraID,
			NotificacaoTitulo:       fmt.Sprintf("Edital %s mudou de fase", edital.EditalNumero),
			NotificacaoMensagem:     fmt.Sprintf("O edital \"%s\" entrou na fase: %s.", edital.EditalTitulo, label),
		})
	}

	if err := s.DB.Create(&notificacoes).Error; err != nil {
		log.Printf("[NOTIF ERROR] falha ao gravar notificações do edital %s: %v", editalID, err)
		return
	}
	log.Printf("[NOTIF] edital %s: %d proponentes notificados (%s)", editalID, len(notificacoes), novaFase)
}
