package migration

import "github.com/nexus-desk/nexus/internal/infrastructure/persistence/models"

// Models lists the tables the gorm strategy creates. Keep in step with
// scripts/.
func Models() []any {
	return []any{&models.KVEntryModel{}}
}
