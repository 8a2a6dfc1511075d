// Package sqlinline holds the SQL statements used by the repositories as
// named constants, so queries are greppable and testable by identity.
package sqlinline

// QCreateSimulationsTable bootstraps the append-only simulations table.
// created_at is stored in the server's local timezone because the daily
// usage bucket is defined over the local calendar day.
const QCreateSimulationsTable = `
CREATE TABLE IF NOT EXISTS simulations (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL DEFAULT 'guest',
	decision TEXT NOT NULL,
	category TEXT NOT NULL,
	horizon TEXT NOT NULL,
	risk_tolerance TEXT NOT NULL,
	answers_json TEXT NOT NULL,
	scenarios_json TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now', 'localtime'))
);
`

const QInsertSimulation = `
INSERT INTO simulations (id, user_id, decision, category, horizon, risk_tolerance, answers_json, scenarios_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`

const QCountSimulationsToday = `
SELECT COUNT(*)
FROM simulations
WHERE user_id = ?
  AND date(created_at) = date('now', 'localtime');
`

const QListSimulations = `
SELECT id, user_id, decision, category, horizon, risk_tolerance, created_at
FROM simulations
WHERE user_id = ?
ORDER BY created_at DESC, rowid DESC
LIMIT ?;
`
