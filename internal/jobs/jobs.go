package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/arjunrn/binge-go/internal/config"
	"github.com/arjunrn/binge-go/internal/store"
)

// Start starts the background job scheduler and returns it so callers can
// stop it on shutdown.
func Start(cfg *config.Config, st *store.Store) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	scheduleHistoryPrune(s, cfg, st)

	log.Println("Starting background job scheduler...")
	s.StartAsync()
	return s
}

// scheduleHistoryPrune registers the retention job that deletes old watch
// history. A retention of 0 days disables it.
func scheduleHistoryPrune(s *gocron.Scheduler, cfg *config.Config, st *store.Store) {
	retention := cfg.History.RetentionDays
	if retention == 0 {
		log.Println("History retention is 0, scheduled pruning is disabled.")
		return
	}

	interval := cfg.History.PruneIntervalMinutes
	if interval <= 0 {
		interval = 720
	}
	log.Printf("Scheduling job: 'history-prune' to run every %d minutes.", interval)

	_, err := s.Every(interval).Minutes().Do(func() {
		cutoff := time.Now().AddDate(0, 0, -retention)
		pruned, err := st.PruneHistory(cutoff)
		if err != nil {
			log.Printf("History prune failed: %v", err)
			return
		}
		if pruned > 0 {
			log.Printf("Pruned %d history entries older than %d days.", pruned, retention)
		}
	})
	if err != nil {
		log.Printf("Error scheduling 'history-prune' job: %v", err)
	}
}
