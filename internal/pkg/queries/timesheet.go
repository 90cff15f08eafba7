package queries

const (
	GetTimesheetByNaturalKey = `
		SELECT id, arena_id, timeslot_id, category_id, comment, scheduled_date, created_at, updated_at
		FROM arena_scheduled_timesheets
		WHERE arena_id = $1 AND timeslot_id = $2
	`

	GetTimesheetByNaturalKeyAndDate = `
		SELECT id, arena_id, timeslot_id, category_id, comment, scheduled_date, created_at, updated_at
		FROM arena_scheduled_timesheets
		WHERE arena_id = $1 AND timeslot_id = $2 AND scheduled_date = $3
		ORDER BY id ASC
		LIMIT 1
	`

	GetTimesheetsByDateRange = `
		SELECT id, arena_id, timeslot_id, category_id, comment, scheduled_date, created_at, updated_at
		FROM arena_scheduled_timesheets
		WHERE arena_id = $1 AND scheduled_date BETWEEN $2 AND $3
		ORDER BY scheduled_date ASC, timeslot_id ASC
	`

	InsertTimesheet = `
		INSERT INTO arena_scheduled_timesheets (arena_id, timeslot_id, category_id, comment, scheduled_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	UpdateTimesheetCategory = `
		UPDATE arena_scheduled_timesheets
		SET category_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	UpdateTimesheetComment = `
		UPDATE arena_scheduled_timesheets
		SET comment = $1, updated_at = NOW()
		WHERE id = $2
	`

	UpdateTimesheetCategoryAndComment = `
		UPDATE arena_scheduled_timesheets
		SET category_id = $1, comment = $2, updated_at = NOW()
		WHERE id = $3
	`

	selectTimesheetDetail = `
		SELECT t.id, t.arena_id, t.timeslot_id, t.category_id, t.comment, t.scheduled_date, t.created_at, t.updated_at,
			c.name, c.color, c.text_color
		FROM arena_scheduled_timesheets AS t
		INNER JOIN arena_categories AS c ON t.category_id = c.id
	`

	GetTimesheetDetailByID = selectTimesheetDetail + `
		WHERE t.id = $1
	`

	GetTimesheetDetailsByDateRange = selectTimesheetDetail + `
		WHERE t.arena_id = $1 AND t.scheduled_date BETWEEN $2 AND $3
		ORDER BY t.scheduled_date ASC, t.timeslot_id ASC
	`

	GetTimesheetDetailsByDateAndCategory = selectTimesheetDetail + `
		WHERE t.arena_id = $1 AND t.scheduled_date = $2 AND t.category_id = $3
		ORDER BY t.timeslot_id ASC
	`
)
