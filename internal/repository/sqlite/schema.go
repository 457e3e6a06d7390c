package sqlite

// Timestamps are stored as unix milliseconds so range scans use the index.
const schema = `
CREATE TABLE IF NOT EXISTS thermal_readings (
	id          TEXT PRIMARY KEY,
	recorded_at INTEGER NOT NULL,
	lat         REAL NOT NULL,
	lng         REAL NOT NULL,
	temperature REAL NOT NULL,
	device_id   TEXT NOT NULL,
	route_id    TEXT
);
CREATE INDEX IF NOT EXISTS thermal_readings_by_timestamp ON thermal_readings (recorded_at);
CREATE INDEX IF NOT EXISTS thermal_readings_by_route ON thermal_readings (route_id);
CREATE INDEX IF NOT EXISTS thermal_readings_by_device ON thermal_readings (device_id, recorded_at);

CREATE TABLE IF NOT EXISTS hotspots (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	lat              REAL NOT NULL,
	lng              REAL NOT NULL,
	max_temp         REAL NOT NULL,
	duration_minutes INTEGER NOT NULL,
	population       INTEGER NOT NULL,
	risk_level       TEXT NOT NULL,
	date             TEXT NOT NULL,
	start_time       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS hotspots_by_date ON hotspots (date);

CREATE TABLE IF NOT EXISTS routes (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	coordinates TEXT NOT NULL,
	active      INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS routes_by_active ON routes (active);

CREATE TABLE IF NOT EXISTS bus_stops (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	lat       REAL NOT NULL,
	lng       REAL NOT NULL,
	route_ids TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS neighborhoods (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	boundaries TEXT NOT NULL,
	priority   TEXT NOT NULL,
	status     TEXT NOT NULL,
	active     INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS neighborhoods_by_active ON neighborhoods (active);
`
