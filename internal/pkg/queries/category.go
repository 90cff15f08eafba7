package queries

const (
	GetAllCategories = `
		SELECT id, name, color, text_color, is_default, status, created_at
		FROM arena_categories
		WHERE status = 1
		ORDER BY is_default DESC, id ASC
	`

	GetCategoryByID = `
		SELECT id, name, color, text_color, is_default, status, created_at
		FROM arena_categories
		WHERE id = $1
	`
)
