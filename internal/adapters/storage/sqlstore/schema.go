package sqlstore

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS refugio (
		id        BIGSERIAL PRIMARY KEY,
		nombre    TEXT    NOT NULL,
		ubicacion TEXT    NOT NULL,
		estado    BOOLEAN NOT NULL DEFAULT TRUE,
		foto_url  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS mascota (
		id         BIGSERIAL PRIMARY KEY,
		nombre     TEXT    NOT NULL,
		especie    TEXT    NOT NULL,
		raza       TEXT,
		edad       INTEGER NOT NULL,
		sexo       TEXT    NOT NULL,
		estado     BOOLEAN NOT NULL DEFAULT TRUE,
		foto_url   TEXT,
		refugio_id BIGINT  NOT NULL REFERENCES refugio(id)
	)`,
	`CREATE INDEX IF NOT EXISTS mascota_refugio_idx ON mascota (refugio_id)`,
	`CREATE TABLE IF NOT EXISTS adopcion (
		id             BIGSERIAL PRIMARY KEY,
		adoptante      TEXT   NOT NULL,
		fecha_adopcion DATE   NOT NULL,
		mascota_id     BIGINT NOT NULL REFERENCES mascota(id),
		refugio_id     BIGINT NOT NULL REFERENCES refugio(id)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS adopcion_mascota_uq ON adopcion (mascota_id)`,
	`CREATE INDEX IF NOT EXISTS adopcion_fecha_idx ON adopcion (fecha_adopcion)`,
	`CREATE TABLE IF NOT EXISTS historialcuidado (
		id         BIGSERIAL PRIMARY KEY,
		tipo       TEXT             NOT NULL,
		costo      DOUBLE PRECISION NOT NULL CHECK (costo >= 0),
		fecha      DATE             NOT NULL,
		mascota_id BIGINT           NOT NULL REFERENCES mascota(id)
	)`,
	`CREATE INDEX IF NOT EXISTS historial_mascota_fecha_idx ON historialcuidado (mascota_id, fecha DESC, id DESC)`,
}

// En SQLite las fechas se guardan como TEXT YYYY-MM-DD y los booleanos como 0/1.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS refugio (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre    TEXT    NOT NULL,
		ubicacion TEXT    NOT NULL,
		estado    BOOLEAN NOT NULL DEFAULT 1,
		foto_url  TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS mascota (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre     TEXT    NOT NULL,
		especie    TEXT    NOT NULL,
		raza       TEXT,
		edad       INTEGER NOT NULL,
		sexo       TEXT    NOT NULL,
		estado     BOOLEAN NOT NULL DEFAULT 1,
		foto_url   TEXT,
		refugio_id INTEGER NOT NULL REFERENCES refugio(id)
	)`,
	`CREATE INDEX IF NOT EXISTS mascota_refugio_idx ON mascota (refugio_id)`,
	`CREATE TABLE IF NOT EXISTS adopcion (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		adoptante      TEXT    NOT NULL,
		fecha_adopcion TEXT    NOT NULL,
		mascota_id     INTEGER NOT NULL REFERENCES mascota(id),
		refugio_id     INTEGER NOT NULL REFERENCES refugio(id)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS adopcion_mascota_uq ON adopcion (mascota_id)`,
	`CREATE INDEX IF NOT EXISTS adopcion_fecha_idx ON adopcion (fecha_adopcion)`,
	`CREATE TABLE IF NOT EXISTS historialcuidado (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		tipo       TEXT    NOT NULL,
		costo      REAL    NOT NULL CHECK (costo >= 0),
		fecha      TEXT    NOT NULL,
		mascota_id INTEGER NOT NULL REFERENCES mascota(id)
	)`,
	`CREATE INDEX IF NOT EXISTS historial_mascota_fecha_idx ON historialcuidado (mascota_id, fecha DESC, id DESC)`,
}
