package queries

const (
	GetAllArenas = `
		SELECT id, name, interval_minutes, start_time, end_time, is_default, status, created_at
		FROM arenas
		WHERE status = 1
		ORDER BY is_default DESC, id ASC
	`

	GetArenaByID = `
		SELECT id, name, interval_minutes, start_time, end_time, is_default, status, created_at
		FROM arenas
		WHERE id = $1
	`
)
