package history

const schemaSQL = `
CREATE TABLE IF NOT EXISTS alerts (
	id        TEXT PRIMARY KEY,
	fired_at  TEXT NOT NULL,
	source    TEXT NOT NULL DEFAULT '',
	muted     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_alerts_fired_at ON alerts(fired_at);
`
