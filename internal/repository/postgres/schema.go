package postgres

const schema = `
CREATE TABLE IF NOT EXISTS thermal_readings (
	id          UUID PRIMARY KEY,
	recorded_at TIMESTAMPTZ NOT NULL,
	lat         DOUBLE PRECISION NOT NULL,
	lng         DOUBLE PRECISION NOT NULL,
	temperature DOUBLE PRECISION NOT NULL,
	device_id   TEXT NOT NULL,
	route_id    TEXT
);
CREATE INDEX IF NOT EXISTS thermal_readings_by_timestamp ON thermal_readings (recorded_at);
CREATE INDEX IF NOT EXISTS thermal_readings_by_route ON thermal_readings (route_id);
CREATE INDEX IF NOT EXISTS thermal_readings_by_device ON thermal_readings (device_id, recorded_at);

CREATE TABLE IF NOT EXISTS hotspots (
	id               UUID PRIMARY KEY,
	name             TEXT NOT NULL,
	lat              DOUBLE PRECISION NOT NULL,
	lng              DOUBLE PRECISION NOT NULL,
	max_temp         DOUBLE PRECISION NOT NULL,
	duration_minutes INTEGER NOT NULL,
	population       INTEGER NOT NULL,
	risk_level       TEXT NOT NULL CHECK (risk_level IN ('Emergency', 'Danger', 'Caution')),
	date             TEXT NOT NULL,
	start_time       TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS hotspots_by_date ON hotspots (date);

CREATE TABLE IF NOT EXISTS routes (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	coordinates JSONB NOT NULL,
	active      BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS routes_by_active ON routes (active);

CREATE TABLE IF NOT EXISTS bus_stops (
	id        TEXT PRIMARY KEY,
	name      TEXT NOT NULL,
	lat       DOUBLE PRECISION NOT NULL,
	lng       DOUBLE PRECISION NOT NULL,
	route_ids TEXT[] NOT NULL
);
CREATE INDEX IF NOT EXISTS bus_stops_by_route ON bus_stops USING GIN (route_ids);

CREATE TABLE IF NOT EXISTS neighborhoods (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	boundaries JSONB NOT NULL,
	priority   TEXT NOT NULL CHECK (priority IN ('high', 'medium', 'low')),
	status     TEXT NOT NULL CHECK (status IN ('online', 'offline')),
	active     BOOLEAN NOT NULL DEFAULT TRUE
);
CREATE INDEX IF NOT EXISTS neighborhoods_by_active ON neighborhoods (active);
`
