// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for exercises, schedule, progression, changes, and history.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		muscle_group TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS schedule (
		day TEXT PRIMARY KEY,
		t1_role TEXT NOT NULL,
		t2_role TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS progression_state (
		key TEXT PRIMARY KEY,
		exercise_id TEXT NOT NULL,
		weight REAL NOT NULL,
		stage INTEGER NOT NULL,
		base_weight REAL NOT NULL,
		last_workout_id TEXT,
		last_workout_at DATETIME,
		best_amrap INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS pending_changes (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		tier TEXT NOT NULL,
		change_type TEXT NOT NULL,
		old_weight REAL NOT NULL,
		new_weight REAL NOT NULL,
		old_stage INTEGER NOT NULL,
		new_stage INTEGER NOT NULL,
		reason TEXT NOT NULL,
		workout_id TEXT NOT NULL,
		workout_date DATETIME NOT NULL,
		created_at DATETIME NOT NULL,
		success INTEGER NOT NULL,
		amrap_reps INTEGER,
		new_record INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending'
	);

	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		progression_key TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		tier TEXT NOT NULL,
		role TEXT NOT NULL,
		date DATETIME NOT NULL,
		workout_id TEXT NOT NULL,
		weight REAL NOT NULL,
		stage INTEGER NOT NULL,
		success INTEGER NOT NULL,
		amrap_reps INTEGER,
		change_type TEXT NOT NULL,
		UNIQUE(progression_key, workout_id)
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_template ON exercises(template_id);
	CREATE INDEX IF NOT EXISTS idx_exercises_role ON exercises(role);
	CREATE INDEX IF NOT EXISTS idx_changes_status ON pending_changes(status);
	CREATE INDEX IF NOT EXISTS idx_changes_key ON pending_changes(key);
	CREATE INDEX IF NOT EXISTS idx_history_key_date ON history(progression_key, date);
	`

	_, err := d.db.Exec(schema)
	return err
}
