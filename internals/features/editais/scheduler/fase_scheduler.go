package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"editalize_backend/internals/features/editais/editais/service"
	notifService "editalize_backend/internals/features/editais/notificacoes/service"
)

// StartFaseLockerScheduler roda o locker de fases dentro do processo, como
// fallback do trigger externo de cron. Ambos os caminhos usam o mesmo
// serviço, então execuções sobrepostas são seguras.
func StartFaseLockerScheduler(db *gorm.DB) {
	go func() {
		intervalMin := 5
		if val := os.Getenv("FASE_LOCKER_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		store := service.NewGormEditalStore(db)
		transition := service.NewTransitionService(store, notifService.NewNotificationService(db))
		locker := service.NewFaseLockerService(store, transition)

		for {
			time.Sleep(time.Duration(intervalMin) * time.Minute)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			resultado, err := locker.Executar(ctx)
			cancel()
			if err != nil {
				log.Printf("[CRON ERROR] locker de fases (scheduler interno): %v", err)
				continue
			}
			if resultado.Bloqueadas > 0 || resultado.Avancadas > 0 {
				log.Printf("[CRON] scheduler interno: janelas bloqueadas=%d, editais avançados=%d",
					resultado.Bloqueadas, resultado.Avancadas)
			}
		}
	}()
}
