package boot

import (
	"context"
	"log"

	"sbs/src/config"
	"sbs/src/lib"
	"sbs/src/services"
)

// Init warms process-wide collaborators and seeds the settings collection on
// first run.
func Init(ctx context.Context, settings *services.SettingService) {
	if rdb := lib.GetRedisClient(); rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("[redis] Ping failed: %s\n", err.Error())
		}
	}
	if len(settings.GetAll(ctx)) > 0 {
		return
	}
	settings.Upsert(ctx, "studio.name", "general", "The Studio")
	settings.Upsert(ctx, "studio.currency", "billing", config.Currency())
	log.Println("[boot] seeded default settings")
}
