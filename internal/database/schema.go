package database

const schema = `
CREATE TABLE IF NOT EXISTS plants (
	id                        TEXT PRIMARY KEY,
	user_id                   TEXT NOT NULL,
	name                      TEXT NOT NULL,
	type_name                 TEXT NOT NULL DEFAULT '',
	watering_interval_days    INTEGER NOT NULL DEFAULT 0,
	fertilizing_interval_days INTEGER NOT NULL DEFAULT 0,
	is_active                 INTEGER NOT NULL DEFAULT 1,
	created_at                TIMESTAMP NOT NULL,
	updated_at                TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_plants_user ON plants (user_id, is_active);

CREATE TABLE IF NOT EXISTS care_events (
	id           TEXT PRIMARY KEY,
	plant_id     TEXT NOT NULL REFERENCES plants (id),
	user_id      TEXT NOT NULL,
	kind         TEXT NOT NULL,
	performed_at TIMESTAMP NOT NULL,
	note         TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_care_events_plant ON care_events (user_id, plant_id, kind, performed_at);

CREATE TABLE IF NOT EXISTS schedule_suggestions (
	id                      TEXT PRIMARY KEY,
	plant_id                TEXT NOT NULL REFERENCES plants (id),
	user_id                 TEXT NOT NULL,
	care_kind               TEXT NOT NULL,
	current_interval_days   INTEGER NOT NULL,
	suggested_interval_days INTEGER NOT NULL,
	confidence_score        REAL,
	state                   TEXT NOT NULL DEFAULT 'pending',
	detected_at             TIMESTAMP NOT NULL,
	resolved_at             TIMESTAMP,
	created_at              TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_suggestions_pending ON schedule_suggestions (user_id, state, detected_at);
CREATE INDEX IF NOT EXISTS idx_suggestions_cooldown ON schedule_suggestions (user_id, plant_id, care_kind, suggested_interval_days, state);
`
